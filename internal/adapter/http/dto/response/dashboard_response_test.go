package response

import (
	"testing"

	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromMonthlyProfits(t *testing.T) {
	m := entities.MonthlyProfits{
		Month: "June",
		Year:  2024,
		Vehicles: []entities.SoldVehicleProfit{{
			Vehicle: entities.Vehicle{
				VIN: "V1", Year: 2019, Make: "Honda", Model: "Accord",
				PurchasePrice: decimal.NewFromInt(10000),
				SalePrice:     decimal.NewFromInt(15000),
				SaleType:      entities.SaleTypeFloor,
				Purchaser:     "J. Smith",
				DateSold:      entities.ParseDate("06/15/2024"),
			},
			ReconditioningCost: decimal.NewFromInt(500),
			Profit:             decimal.NewFromInt(4500),
		}},
		TotalProfit: decimal.NewFromInt(4500),
	}

	res := FromMonthlyProfits(m)

	if res.Month != "June" || res.Year != 2024 {
		t.Fatalf("unexpected header: %s %d", res.Month, res.Year)
	}
	if len(res.Vehicles) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Vehicles))
	}
	row := res.Vehicles[0]
	if row.VIN != "V1" || row.Make != "Honda" || row.SaleType != "floor" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.DateSold != "06/15/2024" {
		t.Fatalf("expected formatted date, got %q", row.DateSold)
	}
	if !row.Profit.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("unexpected profit: %s", row.Profit)
	}
}

func TestFromMonthlyProfits_Empty(t *testing.T) {
	res := FromMonthlyProfits(entities.MonthlyProfits{Month: "June", Year: 2024})
	if res.Vehicles == nil {
		t.Fatalf("rows must be an empty slice, not nil")
	}
	if len(res.Vehicles) != 0 {
		t.Fatalf("expected no rows, got %d", len(res.Vehicles))
	}
}

func TestFromVehicle_DatesRenderAsStrings(t *testing.T) {
	v := entities.Vehicle{
		VIN:       "V1",
		DateAdded: entities.ParseDate("01/02/2024"),
	}
	res := FromVehicle(v)
	if res.DateAdded != "01/02/2024" {
		t.Fatalf("unexpected date_added: %q", res.DateAdded)
	}
	if res.DateSold != "" {
		t.Fatalf("absent date must render empty, got %q", res.DateSold)
	}
}
