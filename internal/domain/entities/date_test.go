package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d := ParseDate("06/15/2024")
		if !d.Valid() {
			t.Fatalf("expected valid date")
		}
		if d.String() != "06/15/2024" {
			t.Fatalf("round trip mismatch: %q", d.String())
		}
		if d.Time().Month() != time.June || d.Time().Day() != 15 || d.Time().Year() != 2024 {
			t.Fatalf("unexpected components: %v", d.Time())
		}
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		if !ParseDate("  06/15/2024 ").Valid() {
			t.Fatalf("expected valid date")
		}
	})

	t.Run("absent forms", func(t *testing.T) {
		for _, s := range []string{"", "   ", "not-a-date", "2024-06-15", "13/45/2024"} {
			if ParseDate(s).Valid() {
				t.Fatalf("expected %q to be absent", s)
			}
		}
	})

	t.Run("absent renders empty", func(t *testing.T) {
		if got := ParseDate("garbage").String(); got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}

func TestDateInMonth(t *testing.T) {
	d := ParseDate("06/15/2024")
	if !d.InMonth(time.June, 2024) {
		t.Fatalf("expected in June 2024")
	}
	if d.InMonth(time.June, 2023) || d.InMonth(time.July, 2024) {
		t.Fatalf("wrong month/year matched")
	}
	if (Date{}).InMonth(time.June, 2024) {
		t.Fatalf("absent date must never match a month")
	}
}

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(ParseDate("06/15/2024"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `"06/15/2024"` {
			t.Fatalf("unexpected json: %s", b)
		}
	})

	t.Run("unmarshal bad value becomes absent", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"17/99/20"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Valid() {
			t.Fatalf("expected absent date")
		}
	})
}

func TestMonthByName(t *testing.T) {
	m, ok := MonthByName("june")
	if !ok || m != time.June {
		t.Fatalf("expected June, got %v %v", m, ok)
	}
	m, ok = MonthByName(" December ")
	if !ok || m != time.December {
		t.Fatalf("expected December, got %v %v", m, ok)
	}
	if _, ok := MonthByName("Juneuary"); ok {
		t.Fatalf("expected unrecognized month")
	}
}
