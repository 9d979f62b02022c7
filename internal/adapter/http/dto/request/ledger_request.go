package request

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ExpenseRequest struct {
	Username string `json:"username"`

	Date        *string          `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	ItemNumber  *string          `json:"item_number"`
}

func (r ExpenseRequest) ApplyTo(e *entities.Expense) {
	setDate(r.Date, &e.Date)
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	setString(r.Description, &e.Description)
	setString(r.ItemNumber, &e.ItemNumber)
}

func (r ExpenseRequest) ToExpense() entities.Expense {
	e := entities.Expense{Username: r.Username, Amount: decimal.Zero}
	r.ApplyTo(&e)
	return e
}

type DepositRequest struct {
	Username string `json:"username"`

	Date            *string          `json:"date"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	ReferenceNumber *string          `json:"reference_number"`
	Account         *string          `json:"account"`
}

func (r DepositRequest) ApplyTo(d *entities.Deposit) {
	setDate(r.Date, &d.Date)
	if r.Amount != nil {
		d.Amount = *r.Amount
	}
	setString(r.Description, &d.Description)
	setString(r.ReferenceNumber, &d.ReferenceNumber)
	setString(r.Account, &d.Account)
}

func (r DepositRequest) ToDeposit() entities.Deposit {
	d := entities.Deposit{Username: r.Username, Amount: decimal.Zero}
	r.ApplyTo(&d)
	return d
}
