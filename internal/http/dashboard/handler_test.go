package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	httpdashboard "github.com/MrJamesThe3rd/ecocycle/internal/http/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
)

func TestHandler_Get(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	caller := account.Identity{UserID: "u1", Role: account.RoleBusiness}

	type testCase struct {
		name       string
		identity   *account.Identity
		setupMock  func(m *httpdashboard.MockService)
		wantStatus int
		wantBody   string
	}

	tests := []testCase{
		{
			name:     "EmptyBusiness",
			identity: &caller,
			setupMock: func(m *httpdashboard.MockService) {
				m.EXPECT().Get(gomock.Any(), caller).Return(dashboard.Build(account.RoleBusiness, dashboard.Input{}), nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,"collections":[],"products":[],"points":0,"totalCollections":0,"totalProducts":0,
				"totalOrders":0,"totalWeightKg":0,"recentActivity":[],"totalSpent":0,"totalRevenue":0,"orders":[]}`,
		},
		{
			name:     "WithRecords",
			identity: &caller,
			setupMock: func(m *httpdashboard.MockService) {
				o := &order.Order{
					ID: "o1", BuyerID: "u1", Status: order.StatusPaid, Quantity: 2, CreatedAt: &ts,
					TotalPrice: decimal.RequireFromString("7.5"),
				}

				c := &collection.Collection{ID: "c1", Type: "PICKUP", WasteType: "PET", Quantity: "3", Status: collection.StatusScheduled, Date: &ts, CreatedAt: &ts}

				m.EXPECT().Get(gomock.Any(), caller).Return(dashboard.Build(account.RoleBusiness, dashboard.Input{
					Collections: []*collection.Collection{c},
					Orders:      []*order.Order{o},
					Points:      40,
					Activity:    activity.Aggregate([]*collection.Collection{c}, []*order.Order{o}, 5, ts),
				}), nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,
				"collections":[{"id":"c1","type":"PICKUP","wasteType":"PET","quantity":"3","status":"SCHEDULED",
					"date":"2024-06-01T12:00:00Z","createdAt":"2024-06-01T12:00:00Z"}],
				"products":[],"points":40,"totalCollections":1,"totalProducts":0,"totalOrders":1,"totalWeightKg":3,
				"recentActivity":[
					{"type":"collection","title":"Collection scheduled","description":"PET - 3kg","date":"2024-06-01T12:00:00Z",
						"status":"SCHEDULED","collectionId":"c1"},
					{"type":"order","title":"Order paid","description":"Order #o1 - Payment received","date":"2024-06-01T12:00:00Z",
						"status":"PAID","quantity":2,"orderId":"o1"}],
				"totalSpent":7.5,"totalRevenue":0,
				"orders":[{"id":"o1","buyerId":"u1","status":"PAID","totalPrice":7.5,"quantity":2,"createdAt":"2024-06-01T12:00:00Z"}]}`,
		},
		{
			name:     "StoreFailure",
			identity: &caller,
			setupMock: func(m *httpdashboard.MockService) {
				m.EXPECT().Get(gomock.Any(), caller).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Failed to fetch dashboard data"}`,
		},
		{
			name:       "NoIdentity",
			setupMock:  func(m *httpdashboard.MockService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := httpdashboard.NewMockService(ctrl)
			tt.setupMock(svc)

			r := chi.NewRouter()
			httpdashboard.NewHandler(svc).Routes(r)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				req = req.WithContext(auth.WithIdentity(req.Context(), *tt.identity))
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
