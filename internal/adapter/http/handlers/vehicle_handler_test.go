package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

func TestVehicleHandler_AddVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.AddVehicle)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate vin maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().AddVehicle(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, usecase.ErrVehicleAlreadyExists)

		r := gin.New()
		r.POST("/v1/vehicles", h.AddVehicle)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"username":"dealer1","vin":"VIN1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().AddVehicle(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Username != "dealer1" || v.VIN != "VIN1" || v.Make != "Honda" {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				v.SaleStatus = entities.SaleStatusAvailable
				return v, nil
			},
		)

		r := gin.New()
		r.POST("/v1/vehicles", h.AddVehicle)

		body := `{"username":"dealer1","vin":"VIN1","make":"Honda","model":"Accord","purchase_price":"10000"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res["vin"].(string) != "VIN1" || res["sale_status"].(string) != "available" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestVehicleHandler_ListInventory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().ListInventory(gomock.Any(), "dealer1").Return([]entities.Vehicle{
			{VIN: "V1", PurchasePrice: decimal.NewFromInt(10000)},
			{VIN: "V2", PurchasePrice: decimal.NewFromInt(8000)},
		}, nil)

		r := gin.New()
		r.GET("/v1/vehicles", h.ListInventory)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?username=dealer1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 vehicles, got %d", len(res))
		}
	})

	t.Run("missing username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().ListInventory(gomock.Any(), "").Return(nil, usecase.ErrInvalidUsername)

		r := gin.New()
		r.GET("/v1/vehicles", h.ListInventory)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_UpdateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("merges provided fields into the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		existing := entities.Vehicle{
			Username: "dealer1", VIN: "VIN1", Make: "Honda", Model: "Accord",
			PurchasePrice: decimal.NewFromInt(10000),
			SaleStatus:    entities.SaleStatusAvailable,
		}
		uc.EXPECT().GetByVIN(gomock.Any(), "dealer1", "VIN1").Return(existing, nil)
		uc.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Make != "Honda" {
					t.Fatalf("absent field must keep stored value, got %q", v.Make)
				}
				if !v.SalePrice.Equal(decimal.NewFromInt(15000)) {
					t.Fatalf("expected merged sale_price, got %s", v.SalePrice)
				}
				if v.SaleStatus != entities.SaleStatusSold {
					t.Fatalf("expected merged sale_status, got %q", v.SaleStatus)
				}
				return v, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/vehicles/:vin", h.UpdateVehicle)

		body := `{"username":"dealer1","sale_price":"15000","sale_status":"sold","date_sold":"06/15/2024"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/VIN1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown vin maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().GetByVIN(gomock.Any(), "dealer1", "NOPE").Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		r := gin.New()
		r.PUT("/v1/vehicles/:vin", h.UpdateVehicle)

		req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/NOPE", bytes.NewBufferString(`{"username":"dealer1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_DeleteVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().DeleteVehicle(gomock.Any(), "dealer1", "VIN1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/vehicles/:vin", h.DeleteVehicle)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/VIN1?username=dealer1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
