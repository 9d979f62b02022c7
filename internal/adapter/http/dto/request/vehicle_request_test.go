package request

import (
	"testing"

	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string                   { return &s }
func intPtr(i int) *int                         { return &i }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestVehicleRequest_ApplyTo(t *testing.T) {
	t.Run("nil fields keep stored values", func(t *testing.T) {
		v := entities.Vehicle{
			Username: "dealer1", VIN: "VIN1",
			Make: "Honda", Model: "Accord", Year: 2019,
			PurchasePrice: decimal.NewFromInt(10000),
			SaleStatus:    entities.SaleStatusAvailable,
			PurchaseDate:  entities.ParseDate("01/10/2024"),
		}

		VehicleRequest{}.ApplyTo(&v)

		if v.Make != "Honda" || v.Year != 2019 {
			t.Fatalf("stored fields were clobbered: %+v", v)
		}
		if !v.PurchasePrice.Equal(decimal.NewFromInt(10000)) {
			t.Fatalf("purchase price was clobbered: %s", v.PurchasePrice)
		}
		if v.PurchaseDate.String() != "01/10/2024" {
			t.Fatalf("purchase date was clobbered: %q", v.PurchaseDate.String())
		}
	})

	t.Run("provided fields overwrite", func(t *testing.T) {
		v := entities.Vehicle{Username: "dealer1", VIN: "VIN1", Make: "Honda", Mileage: 80000}

		r := VehicleRequest{
			Make:       strPtr("Toyota"),
			Mileage:    intPtr(81500),
			SalePrice:  decPtr(decimal.NewFromInt(15000)),
			SaleStatus: strPtr("sold"),
			DateSold:   strPtr("06/15/2024"),
		}
		r.ApplyTo(&v)

		if v.Make != "Toyota" || v.Mileage != 81500 {
			t.Fatalf("fields not applied: %+v", v)
		}
		if v.SaleStatus != entities.SaleStatusSold {
			t.Fatalf("expected sold status, got %q", v.SaleStatus)
		}
		if v.DateSold.String() != "06/15/2024" {
			t.Fatalf("expected parsed date_sold, got %q", v.DateSold.String())
		}
	})

	t.Run("unparseable date becomes absent", func(t *testing.T) {
		v := entities.Vehicle{DateSold: entities.ParseDate("06/15/2024")}
		VehicleRequest{DateSold: strPtr("garbage")}.ApplyTo(&v)
		if v.DateSold.Valid() {
			t.Fatalf("expected absent date, got %q", v.DateSold.String())
		}
	})
}

func TestVehicleRequest_ToVehicle(t *testing.T) {
	r := VehicleRequest{
		Username:      "dealer1",
		VIN:           "VIN1",
		Make:          strPtr("Honda"),
		PurchasePrice: decPtr(decimal.NewFromInt(10000)),
	}
	v := r.ToVehicle()
	if v.Username != "dealer1" || v.VIN != "VIN1" || v.Make != "Honda" {
		t.Fatalf("unexpected vehicle: %+v", v)
	}
	if !v.PurchasePrice.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("unexpected purchase price: %s", v.PurchasePrice)
	}
	// monetary fields default to zero, not the decimal zero value
	if !v.SalePrice.Equal(decimal.Zero) {
		t.Fatalf("expected zero sale price, got %s", v.SalePrice)
	}
}
