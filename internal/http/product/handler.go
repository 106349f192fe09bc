package product

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/render"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=product
type Service interface {
	Create(ctx context.Context, id account.Identity, params product.CreateParams, img *product.Image) (*product.Product, error)
	ListBySeller(ctx context.Context, id account.Identity) ([]*product.Product, error)
	Catalog(ctx context.Context, category string) ([]*product.Product, error)
}

// multipartOverhead leaves room for the text fields next to the image.
const multipartOverhead = 1 << 20

type Handler struct {
	svc          Service
	maxImageSize int64
}

func NewHandler(svc Service, maxImageSize int64) *Handler {
	return &Handler{svc: svc, maxImageSize: maxImageSize}
}

// PublicRoutes serves the catalog without authentication.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/", h.catalog)
}

// Routes must be mounted behind auth.Required.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/mine", h.mine)
}

type listResponse struct {
	Success  bool       `json:"success"`
	Products []Response `json:"products"`
}

type createResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Product Response `json:"product"`
}

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		slog.Error("failed to list catalog", "error", err)
		render.Error(w, http.StatusInternalServerError, "Failed to fetch products")

		return
	}

	render.JSON(w, http.StatusOK, listResponse{Success: true, Products: ToResponseList(products)})
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		render.Unauthorized(w)
		return
	}

	products, err := h.svc.ListBySeller(r.Context(), id)
	if err != nil {
		slog.Error("failed to list seller products", "user_id", id.UserID, "error", err)
		render.Failure(w, http.StatusInternalServerError, "Failed to fetch products")

		return
	}

	render.JSON(w, http.StatusOK, listResponse{Success: true, Products: ToResponseList(products)})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		render.Unauthorized(w)
		return
	}

	if !id.Role.CanSell() {
		render.Error(w, http.StatusForbidden, "Unauthorized - Only individuals and collectors can create products")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxImageSize + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			render.Error(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}

		render.Error(w, http.StatusBadRequest, "Invalid multipart form")

		return
	}

	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	var img *product.Image

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()

		if header.Size > h.maxImageSize {
			render.Error(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}

		img = &product.Image{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	case !errors.Is(err, http.ErrMissingFile):
		render.Error(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	p, err := h.svc.Create(r.Context(), id, product.CreateParams{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Quantity:    r.FormValue("quantity"),
		Unit:        r.FormValue("unit"),
		PlasticType: r.FormValue("plasticType"),
		Discount:    r.FormValue("discount"),
	}, img)
	if err != nil {
		var verr *product.ValidationError

		switch {
		case errors.As(err, &verr):
			render.Error(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, product.ErrForbidden):
			render.Error(w, http.StatusForbidden, "Unauthorized - Only individuals and collectors can create products")
		default:
			slog.Error("failed to create product", "user_id", id.UserID, "error", err)
			render.Failure(w, http.StatusInternalServerError, "Failed to create product")
		}

		return
	}

	render.JSON(w, http.StatusCreated, createResponse{
		Success: true,
		Message: "Product created successfully",
		Product: ToResponse(p),
	})
}
