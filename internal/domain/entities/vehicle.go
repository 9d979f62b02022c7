package entities

import "github.com/shopspring/decimal"

// SaleStatus gates which date fields are meaningful and which dashboard
// bucket a vehicle falls into.

type SaleStatus string

const (
	SaleStatusAvailable SaleStatus = "available"
	SaleStatusSold      SaleStatus = "sold"
)

// SaleType buckets unsold inventory on the dashboard. Values outside the
// three known ones count toward none of the buckets.

type SaleType string

const (
	SaleTypeFloor       SaleType = "floor"
	SaleTypeDealer      SaleType = "dealer"
	SaleTypeConsignment SaleType = "consignment"
)

// Vehicle is an inventory row owned by exactly one account.
//
// Storage model (DynamoDB):
//   - PK: username
//   - SK: vin
//
// The composite key makes the VIN unique per account and keeps every read
// tenant-scoped by construction.
//
// Invariant: DateSold is set if and only if SaleStatus is sold.
type Vehicle struct {
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
	SaleStatus    SaleStatus      `json:"sale_status"`
	SaleType      SaleType        `json:"sale_type"`

	DateAdded    Date `json:"date_added"`
	PurchaseDate Date `json:"purchase_date"`
	DateSold     Date `json:"date_sold"`

	// Free-form descriptive fields; the dashboard ignores them.
	FinanceType      string `json:"finance_type"`
	TitleStatus      string `json:"title_status"`
	InspectionStatus string `json:"inspection_status"`
	PendingIssues    string `json:"pending_issues"`
	Purchaser        string `json:"purchaser"`
	PostedOnline     bool   `json:"posted_online"`
	ClosingStatement string `json:"closing_statement"`
}

func (v Vehicle) Sold() bool {
	return v.SaleStatus == SaleStatusSold
}
