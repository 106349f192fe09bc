package activity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/render"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=activity
type Service interface {
	Feed(ctx context.Context, id account.Identity) ([]activity.Item, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.feed)
}

type feedResponse struct {
	Success    bool           `json:"success"`
	Activities []ItemResponse `json:"activities"`
	Empty      bool           `json:"empty"`
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		render.Unauthorized(w)
		return
	}

	items, err := h.svc.Feed(r.Context(), id)
	if err != nil {
		slog.Error("failed to load recent activity", "user_id", id.UserID, "error", err)
		render.Failure(w, http.StatusInternalServerError, "Failed to fetch recent activity")

		return
	}

	render.JSON(w, http.StatusOK, feedResponse{
		Success:    true,
		Activities: ToResponseList(items),
		Empty:      isEmpty(items),
	})
}
