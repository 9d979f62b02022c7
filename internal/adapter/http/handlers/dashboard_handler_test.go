package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealcost/internal/adapter/http/handlers/mocks"
	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().GetDashboard(gomock.Any(), "").Return(entities.DashboardMetrics{}, usecase.ErrInvalidUsername)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().GetDashboard(gomock.Any(), "dealer1").Return(entities.DashboardMetrics{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?username=dealer1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		m := entities.DashboardMetrics{
			TotalVehicles:       2,
			TotalInventoryValue: decimal.NewFromInt(17500),
			CurrentMonthProfit:  decimal.NewFromInt(4500),
			CurrentMonthName:    "June",
			TotalFloorPlan:      1,
		}
		uc.EXPECT().GetDashboard(gomock.Any(), "dealer1").Return(m, nil)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?username=dealer1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_vehicles"].(float64) != 2 {
			t.Fatalf("unexpected total_vehicles: %v", body["total_vehicles"])
		}
		if body["current_month_name"].(string) != "June" {
			t.Fatalf("unexpected month: %v", body["current_month_name"])
		}
	})
}

func TestDashboardHandler_GetMonthlyProfits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/monthly-profits", h.GetMonthlyProfits)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-profits?username=dealer1&month=June&year=twothousand", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid month name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().MonthlyProfits(gomock.Any(), "dealer1", "Juneuary", 2024).
			Return(entities.MonthlyProfits{}, usecase.ErrInvalidMonth)

		r := gin.New()
		r.GET("/v1/reports/monthly-profits", h.GetMonthlyProfits)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-profits?username=dealer1&month=Juneuary&year=2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		res := entities.MonthlyProfits{
			Month: "June",
			Year:  2024,
			Vehicles: []entities.SoldVehicleProfit{{
				Vehicle: entities.Vehicle{
					VIN: "V1", Make: "Honda", Model: "Accord",
					PurchasePrice: decimal.NewFromInt(10000),
					SalePrice:     decimal.NewFromInt(15000),
					DateSold:      entities.ParseDate("06/15/2024"),
				},
				ReconditioningCost: decimal.NewFromInt(500),
				Profit:             decimal.NewFromInt(4500),
			}},
			TotalProfit: decimal.NewFromInt(4500),
		}
		uc.EXPECT().MonthlyProfits(gomock.Any(), "dealer1", "June", 2024).Return(res, nil)

		r := gin.New()
		r.GET("/v1/reports/monthly-profits", h.GetMonthlyProfits)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-profits?username=dealer1&month=June&year=2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["month"].(string) != "June" {
			t.Fatalf("unexpected month: %v", body["month"])
		}
		rows := body["vehicles"].([]any)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		row := rows[0].(map[string]any)
		if row["vin"].(string) != "V1" || row["date_sold"].(string) != "06/15/2024" {
			t.Fatalf("unexpected row: %+v", row)
		}
	})
}
