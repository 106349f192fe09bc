package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/render"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=dashboard
type Service interface {
	Get(ctx context.Context, id account.Identity) (*dashboard.Metrics, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		render.Unauthorized(w)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to build dashboard", "user_id", id.UserID, "error", err)
		render.Failure(w, http.StatusInternalServerError, "Failed to fetch dashboard data")

		return
	}

	render.JSON(w, http.StatusOK, toResponse(m))
}
