package entities

import "github.com/shopspring/decimal"

// DashboardMetrics summarizes current inventory and the reference month's
// financial activity for one account.
//
// All monetary fields accumulate over decimal.Decimal; binary floating point
// drifts at the cent level across thousands of additions.
//
// Note the asymmetry: CurrentMonthReconditioningCost filters reports by date,
// UnsoldReconditioningCost does not. These are distinct metrics, not a bug.
type DashboardMetrics struct {
	TotalVehicles       int             `json:"total_vehicles"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`

	CurrentMonthReconditioningCost decimal.Decimal `json:"current_month_reconditioning_cost"`
	CurrentMonthProfit             decimal.Decimal `json:"current_month_profit"`
	CurrentMonthName               string          `json:"current_month_name"`

	TotalFloorPlan   int `json:"total_floor_plan"`
	TotalDealership  int `json:"total_dealership"`
	TotalConsignment int `json:"total_consignment"`

	UnsoldReconditioningCost decimal.Decimal `json:"unsold_reconditioning_cost"`

	// Raw snapshots for client-side display.
	Inventory []Vehicle `json:"inventory"`
	Reports   []Report  `json:"reports"`
}

// SoldVehicleProfit is one row of the monthly-profits query: a vehicle sold
// in the requested month with its full historical reconditioning cost
// attributed to the sale.
type SoldVehicleProfit struct {
	Vehicle            Vehicle         `json:"vehicle"`
	ReconditioningCost decimal.Decimal `json:"reconditioning_cost"`
	Profit             decimal.Decimal `json:"profit"`
}

// MonthlyProfits is the result of the explicit (month, year) aggregation.
type MonthlyProfits struct {
	Month       string              `json:"month"`
	Year        int                 `json:"year"`
	Vehicles    []SoldVehicleProfit `json:"vehicles"`
	TotalProfit decimal.Decimal     `json:"total_profit"`
}

// DocumentScan is the OCR gateway's output: the raw extracted lines plus a
// best-effort VIN candidate when one of the lines looks like a VIN.
type DocumentScan struct {
	Lines []string `json:"lines"`
	VIN   string   `json:"vin"`
}
