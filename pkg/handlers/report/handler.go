package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/handlers/render"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/server/middleware"
	reportsvc "github.com/de-tools/focus-atlas/pkg/services/report"
)

type Handler struct {
	engine reportsvc.Engine
}

func NewHandler(engine reportsvc.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	period := reportsvc.Normalize(r.URL.Query().Get("period"))
	rep, err := h.engine.Summary(ctx, user.ID, period)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(*rep))
}

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	filter, err := parseDetailFilter(r)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}

	page, err := h.engine.Detail(ctx, user.ID, filter)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapSessionPageDomainToApi(*page))
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := middleware.UserFromContext(ctx); !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	period := reportsvc.NormalizeRanking(r.URL.Query().Get("period"))
	entries, err := h.engine.Ranking(ctx, period)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapRankingDomainToApi(string(period), entries))
}

func parseDetailFilter(r *http.Request) (reportsvc.DetailFilter, error) {
	q := r.URL.Query()
	filter := reportsvc.DetailFilter{Type: q.Get("type")}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.Validationf("invalid page %q", raw)
		}
		filter.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.Validationf("invalid limit %q", raw)
		}
		filter.Limit = limit
	}

	var err error
	if filter.StartDate, err = parseDateParam(q.Get("startDate"), "startDate"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDateParam(q.Get("endDate"), "endDate"); err != nil {
		return filter, err
	}
	return filter, nil
}

// parseDateParam accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDateParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, domain.Validationf("invalid '%s' date format. Expected format: YYYY-MM-DD", name)
}
