package request

import (
	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ReportRequest covers create and update of reconditioning reports. A nil
// Cost means "not provided" and, on create, stores zero.
type ReportRequest struct {
	Username string `json:"username"`
	VIN      string `json:"vin"`

	DateOccurred *string          `json:"date_occurred"`
	Cost         *decimal.Decimal `json:"cost"`
	Category     *string          `json:"category"`
	Vendor       *string          `json:"vendor"`
	Description  *string          `json:"description"`
}

func (r ReportRequest) ApplyTo(rep *entities.Report) {
	setDate(r.DateOccurred, &rep.DateOccurred)
	if r.Cost != nil {
		rep.Cost = *r.Cost
	}
	setString(r.Category, &rep.Category)
	setString(r.Vendor, &rep.Vendor)
	setString(r.Description, &rep.Description)
}

func (r ReportRequest) ToReport() entities.Report {
	rep := entities.Report{
		Username: r.Username,
		VIN:      r.VIN,
		Cost:     decimal.Zero,
	}
	r.ApplyTo(&rep)
	return rep
}
