package response

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ReportResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	VIN      string `json:"vin"`

	DateOccurred string          `json:"date_occurred"`
	Cost         decimal.Decimal `json:"cost"`
	Category     string          `json:"category"`
	Vendor       string          `json:"vendor"`
	Description  string          `json:"description"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse{
		ID:           r.ID,
		Username:     r.Username,
		VIN:          r.VIN,
		DateOccurred: r.DateOccurred.String(),
		Cost:         r.Cost,
		Category:     r.Category,
		Vendor:       r.Vendor,
		Description:  r.Description,
	}
}

func FromReports(reports []entities.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromReport(r))
	}
	return out
}
