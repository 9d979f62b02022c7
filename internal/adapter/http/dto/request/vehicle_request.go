package request

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// VehicleRequest is shared by the create and update endpoints. For updates
// every field is optional: nil pointers leave the stored value untouched
// (field-set semantics), which is why scalars are pointers here.
type VehicleRequest struct {
	Username string `json:"username"`
	VIN      string `json:"vin"`

	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Trim    *string `json:"trim"`
	Year    *int    `json:"year"`
	Mileage *int    `json:"mileage"`
	Color   *string `json:"color"`

	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	SaleStatus    *string          `json:"sale_status"`
	SaleType      *string          `json:"sale_type"`

	DateAdded    *string `json:"date_added"`
	PurchaseDate *string `json:"purchase_date"`
	DateSold     *string `json:"date_sold"`

	FinanceType      *string `json:"finance_type"`
	TitleStatus      *string `json:"title_status"`
	InspectionStatus *string `json:"inspection_status"`
	PendingIssues    *string `json:"pending_issues"`
	Purchaser        *string `json:"purchaser"`
	PostedOnline     *bool   `json:"posted_online"`
	ClosingStatement *string `json:"closing_statement"`
}

// ApplyTo merges the provided fields into v.
func (r VehicleRequest) ApplyTo(v *entities.Vehicle) {
	setString(r.Make, &v.Make)
	setString(r.Model, &v.Model)
	setString(r.Trim, &v.Trim)
	setInt(r.Year, &v.Year)
	setInt(r.Mileage, &v.Mileage)
	setString(r.Color, &v.Color)

	if r.PurchasePrice != nil {
		v.PurchasePrice = *r.PurchasePrice
	}
	if r.SalePrice != nil {
		v.SalePrice = *r.SalePrice
	}
	if r.SaleStatus != nil {
		v.SaleStatus = entities.SaleStatus(*r.SaleStatus)
	}
	if r.SaleType != nil {
		v.SaleType = entities.SaleType(*r.SaleType)
	}

	setDate(r.DateAdded, &v.DateAdded)
	setDate(r.PurchaseDate, &v.PurchaseDate)
	setDate(r.DateSold, &v.DateSold)

	setString(r.FinanceType, &v.FinanceType)
	setString(r.TitleStatus, &v.TitleStatus)
	setString(r.InspectionStatus, &v.InspectionStatus)
	setString(r.PendingIssues, &v.PendingIssues)
	setString(r.Purchaser, &v.Purchaser)
	if r.PostedOnline != nil {
		v.PostedOnline = *r.PostedOnline
	}
	setString(r.ClosingStatement, &v.ClosingStatement)
}

// ToVehicle builds a new entity for the create endpoint.
func (r VehicleRequest) ToVehicle() entities.Vehicle {
	v := entities.Vehicle{
		Username:      r.Username,
		VIN:           r.VIN,
		PurchasePrice: decimal.Zero,
		SalePrice:     decimal.Zero,
	}
	r.ApplyTo(&v)
	return v
}

func setString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(src *int, dst *int) {
	if src != nil {
		*dst = *src
	}
}

func setDate(src *string, dst *entities.Date) {
	if src != nil {
		*dst = entities.ParseDate(*src)
	}
}
