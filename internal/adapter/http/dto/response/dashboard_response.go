package response

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	TotalVehicles       int             `json:"total_vehicles"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`

	CurrentMonthReconditioningCost decimal.Decimal `json:"current_month_reconditioning_cost"`
	CurrentMonthProfit             decimal.Decimal `json:"current_month_profit"`
	CurrentMonthName               string          `json:"current_month_name"`

	TotalFloorPlan   int `json:"total_floor_plan"`
	TotalDealership  int `json:"total_dealership"`
	TotalConsignment int `json:"total_consignment"`

	UnsoldReconditioningCost decimal.Decimal `json:"unsold_reconditioning_cost"`

	Inventory []VehicleResponse `json:"inventory"`
	Reports   []ReportResponse  `json:"reports"`
}

func FromDashboardMetrics(m entities.DashboardMetrics) DashboardResponse {
	return DashboardResponse{
		TotalVehicles:                  m.TotalVehicles,
		TotalInventoryValue:            m.TotalInventoryValue,
		CurrentMonthReconditioningCost: m.CurrentMonthReconditioningCost,
		CurrentMonthProfit:             m.CurrentMonthProfit,
		CurrentMonthName:               m.CurrentMonthName,
		TotalFloorPlan:                 m.TotalFloorPlan,
		TotalDealership:                m.TotalDealership,
		TotalConsignment:               m.TotalConsignment,
		UnsoldReconditioningCost:       m.UnsoldReconditioningCost,
		Inventory:                      FromVehicles(m.Inventory),
		Reports:                        FromReports(m.Reports),
	}
}

// MonthlyProfitRow is flattened to the shape the dashboard UI tables expect.
type MonthlyProfitRow struct {
	VIN                string          `json:"vin"`
	Year               int             `json:"year"`
	Make               string          `json:"make"`
	Model              string          `json:"model"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SalePrice          decimal.Decimal `json:"sale_price"`
	ReconditioningCost decimal.Decimal `json:"reconditioning_cost"`
	Profit             decimal.Decimal `json:"profit"`
	SaleType           string          `json:"sale_type"`
	Purchaser          string          `json:"purchaser"`
	DateSold           string          `json:"date_sold"`
}

type MonthlyProfitsResponse struct {
	Month       string             `json:"month"`
	Year        int                `json:"year"`
	Vehicles    []MonthlyProfitRow `json:"vehicles"`
	TotalProfit decimal.Decimal    `json:"total_profit"`
}

func FromMonthlyProfits(m entities.MonthlyProfits) MonthlyProfitsResponse {
	rows := make([]MonthlyProfitRow, 0, len(m.Vehicles))
	for _, v := range m.Vehicles {
		rows = append(rows, MonthlyProfitRow{
			VIN:                v.Vehicle.VIN,
			Year:               v.Vehicle.Year,
			Make:               v.Vehicle.Make,
			Model:              v.Vehicle.Model,
			PurchasePrice:      v.Vehicle.PurchasePrice,
			SalePrice:          v.Vehicle.SalePrice,
			ReconditioningCost: v.ReconditioningCost,
			Profit:             v.Profit,
			SaleType:           string(v.Vehicle.SaleType),
			Purchaser:          v.Vehicle.Purchaser,
			DateSold:           v.Vehicle.DateSold.String(),
		})
	}
	return MonthlyProfitsResponse{
		Month:       m.Month,
		Year:        m.Year,
		Vehicles:    rows,
		TotalProfit: m.TotalProfit,
	}
}
