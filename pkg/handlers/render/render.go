package render

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	"github.com/rs/zerolog"
)

func JSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

// Err maps service errors to the API surface: validation -> 400 with the
// message, unknown record -> 404, everything else -> 500 with a generic
// message and a logged cause.
func Err(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		JSON(ctx, w, http.StatusBadRequest, api.Error{Message: vErr.Message})
	case errors.Is(err, sqlite.ErrNotFound):
		JSON(ctx, w, http.StatusNotFound, api.Error{Message: "not found"})
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("request failed")
		JSON(ctx, w, http.StatusInternalServerError, api.Error{Message: "server error"})
	}
}
