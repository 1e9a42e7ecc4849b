package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/focus-atlas/pkg/handlers/render"
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	authsvc "github.com/de-tools/focus-atlas/pkg/services/auth"
)

type Handler struct {
	auth authsvc.Service
}

func NewHandler(auth authsvc.Service) *Handler {
	return &Handler{auth: auth}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body api.Register
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	user, token, err := h.auth.Register(ctx, body.Username, body.Email, body.Password)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusCreated, authResponse(user, token))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body api.Login
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	user, token, err := h.auth.Login(ctx, body.Username, body.Password)
	if errors.Is(err, authsvc.ErrInvalidCredentials) {
		render.JSON(ctx, w, http.StatusUnauthorized, api.Error{Message: "invalid credentials"})
		return
	}
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, authResponse(user, token))
}

func authResponse(user *domain.User, token string) api.AuthResponse {
	return api.AuthResponse{
		Token: token,
		User: api.User{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}
}
