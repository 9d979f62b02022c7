package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// dateLayout is the storage format inherited from the data already in the
// tables (MM/DD/YYYY).
const dateLayout = "01/02/2006"

// Date is a calendar date parsed from its stored string form.
//
// The zero value means "absent": either the field was never set or the stored
// string did not parse. Aggregations skip absent dates per record instead of
// failing the whole computation.
type Date struct {
	t     time.Time
	valid bool
}

func NewDate(t time.Time) Date {
	return Date{t: t, valid: true}
}

// ParseDate parses an MM/DD/YYYY string. Anything unparseable, including the
// empty string, yields the absent Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}
	}
	return Date{t: t, valid: true}
}

func (d Date) Valid() bool {
	return d.valid
}

// InMonth reports whether the date falls in the given calendar month and year.
// Absent dates are never in any month.
func (d Date) InMonth(month time.Month, year int) bool {
	return d.valid && d.t.Month() == month && d.t.Year() == year
}

func (d Date) Time() time.Time {
	return d.t
}

// String renders the stored MM/DD/YYYY form, or "" when absent.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = ParseDate(s)
	return nil
}

// MonthByName resolves an English month name ("June", case-insensitive) to its
// time.Month. The second return is false for unrecognized names.
func MonthByName(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}
