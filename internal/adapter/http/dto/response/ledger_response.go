package response

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ItemNumber  string          `json:"item_number"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Username:    e.Username,
		Date:        e.Date.String(),
		Amount:      e.Amount,
		Description: e.Description,
		ItemNumber:  e.ItemNumber,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

type DepositResponse struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	Account         string          `json:"account"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		ID:              d.ID,
		Username:        d.Username,
		Date:            d.Date.String(),
		Amount:          d.Amount,
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		Account:         d.Account,
	}
}

func FromDeposits(deposits []entities.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}
