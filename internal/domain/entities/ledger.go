package entities

import "github.com/shopspring/decimal"

// Expense and Deposit are independent ledger entries scoped by account.
// The dashboard does not consume them.
//
// Storage model (DynamoDB, both):
//   - PK: id
//   - GSI: username-index (PK: username)

type Expense struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ItemNumber  string          `json:"item_number"`
}

type Deposit struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	Date            Date            `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	Account         string          `json:"account"`
}
