package repository

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want decimal.Decimal
	}{
		{"10000", decimal.NewFromInt(10000)},
		{" 7500.50 ", decimal.RequireFromString("7500.50")},
		{"-250", decimal.NewFromInt(-250)},
		{"", decimal.Zero},
		{"abc", decimal.Zero},
		{"$100", decimal.Zero},
	}
	for _, tc := range cases {
		if got := parseMoney(tc.in); !got.Equal(tc.want) {
			t.Fatalf("parseMoney(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("1234.56")
	if got := parseMoney(moneyString(d)); !got.Equal(d) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestMergeNames(t *testing.T) {
	a := map[string]string{"#status": "status"}
	b := map[string]string{"#completed_date": "completed_date"}

	out := mergeNames(a, b)
	if len(out) != 2 || out["#status"] != "status" || out["#completed_date"] != "completed_date" {
		t.Fatalf("unexpected merge: %v", out)
	}

	if got := mergeNames(nil, b); len(got) != 1 {
		t.Fatalf("expected b back, got %v", got)
	}
	if got := mergeNames(a, nil); len(got) != 1 {
		t.Fatalf("expected a back, got %v", got)
	}
}

func TestGetenvDefault(t *testing.T) {
	t.Setenv("VEHICLES_TABLE", "")
	if got := getenvDefault("VEHICLES_TABLE", "vehicles"); got != "vehicles" {
		t.Fatalf("expected default, got %q", got)
	}
	t.Setenv("VEHICLES_TABLE", "vehicles_staging")
	if got := getenvDefault("VEHICLES_TABLE", "vehicles"); got != "vehicles_staging" {
		t.Fatalf("expected override, got %q", got)
	}
}
