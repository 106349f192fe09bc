package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	apphttp "github.com/MrJamesThe3rd/ecocycle/internal/http"
	httpactivity "github.com/MrJamesThe3rd/ecocycle/internal/http/activity"
	httpdashboard "github.com/MrJamesThe3rd/ecocycle/internal/http/dashboard"
	httpproduct "github.com/MrJamesThe3rd/ecocycle/internal/http/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type fixture struct {
	router    http.Handler
	tokens    *auth.Tokens
	dashboard *httpdashboard.MockService
	activity  *httpactivity.MockService
	products  *httpproduct.MockService
}

func newFixture(t *testing.T, db pinger, uploadDir string) fixture {
	ctrl := gomock.NewController(t)
	tokens := auth.NewTokens("0123456789abcdef0123456789abcdef", "ecocycle-identity")

	f := fixture{
		tokens:    tokens,
		dashboard: httpdashboard.NewMockService(ctrl),
		activity:  httpactivity.NewMockService(ctrl),
		products:  httpproduct.NewMockService(ctrl),
	}

	f.router = apphttp.New(
		apphttp.Config{
			AllowedOrigins: []string{"https://app.example.com"},
			Timeout:        5 * time.Second,
			UploadDir:      uploadDir,
			UploadPrefix:   "/uploads",
		},
		auth.Required(tokens),
		db,
		httpdashboard.NewHandler(f.dashboard),
		httpactivity.NewHandler(f.activity),
		httpproduct.NewHandler(f.products, 1<<20),
	)

	return f
}

func (f fixture) token(t *testing.T, id account.Identity) string {
	token, err := f.tokens.Issue(id, time.Hour)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t, pinger{}, "")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodGet, "/api/v1/recent-activity"},
		{http.MethodGet, "/api/v1/products/mine"},
		{http.MethodPost, "/api/v1/products"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestRouter_AuthenticatedRoutes(t *testing.T) {
	f := newFixture(t, pinger{}, "")
	id := account.Identity{UserID: "u1", Email: "u1@example.com", Role: account.RoleIndividual}

	f.dashboard.EXPECT().Get(gomock.Any(), id).Return(dashboard.Build(id.Role, dashboard.Input{}), nil)
	f.activity.EXPECT().Feed(gomock.Any(), id).Return([]activity.Item{}, nil)

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/recent-activity"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", f.token(t, id))

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("Content-Type"))
	}
}

func TestRouter_CatalogIsPublic(t *testing.T) {
	f := newFixture(t, pinger{}, "")
	f.products.EXPECT().Catalog(gomock.Any(), "all").Return([]*product.Product{}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?category=all", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"products":[]}`, rec.Body.String())
}

func TestRouter_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		db         pinger
		wantStatus int
	}{
		{name: "Up", db: pinger{}, wantStatus: http.StatusOK},
		{name: "Down", db: pinger{err: errors.New("refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.db, "")

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products", "a.png"), []byte("png"), 0o644))

	f := newFixture(t, pinger{}, dir)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/products/a.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	f := newFixture(t, pinger{}, "")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
