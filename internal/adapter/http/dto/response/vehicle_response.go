package response

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type VehicleResponse struct {
	Username string `json:"username"`
	VIN      string `json:"vin"`

	Make    string `json:"make"`
	Model   string `json:"model"`
	Trim    string `json:"trim"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
	Color   string `json:"color"`

	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	SaleStatus    string          `json:"sale_status"`
	SaleType      string          `json:"sale_type"`

	DateAdded    string `json:"date_added"`
	PurchaseDate string `json:"purchase_date"`
	DateSold     string `json:"date_sold"`

	FinanceType      string `json:"finance_type"`
	TitleStatus      string `json:"title_status"`
	InspectionStatus string `json:"inspection_status"`
	PendingIssues    string `json:"pending_issues"`
	Purchaser        string `json:"purchaser"`
	PostedOnline     bool   `json:"posted_online"`
	ClosingStatement string `json:"closing_statement"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		Username:         v.Username,
		VIN:              v.VIN,
		Make:             v.Make,
		Model:            v.Model,
		Trim:             v.Trim,
		Year:             v.Year,
		Mileage:          v.Mileage,
		Color:            v.Color,
		PurchasePrice:    v.PurchasePrice,
		SalePrice:        v.SalePrice,
		SaleStatus:       string(v.SaleStatus),
		SaleType:         string(v.SaleType),
		DateAdded:        v.DateAdded.String(),
		PurchaseDate:     v.PurchaseDate.String(),
		DateSold:         v.DateSold.String(),
		FinanceType:      v.FinanceType,
		TitleStatus:      v.TitleStatus,
		InspectionStatus: v.InspectionStatus,
		PendingIssues:    v.PendingIssues,
		Purchaser:        v.Purchaser,
		PostedOnline:     v.PostedOnline,
		ClosingStatement: v.ClosingStatement,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
