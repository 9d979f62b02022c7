package entities

import "github.com/shopspring/decimal"

// Report is a reconditioning/expense event tied to a VIN.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: username-index (PK: username)
//   - GSI: vin-index (PK: vin)
//
// The VIN is a soft reference: a report may outlive or precede its vehicle's
// presence in storage, and nothing enforces the join.
type Report struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	VIN      string `json:"vin"`

	DateOccurred Date            `json:"date_occurred"`
	Cost         decimal.Decimal `json:"cost"`
	Category     string          `json:"category"`
	Vendor       string          `json:"vendor"`
	Description  string          `json:"description"`
}
