package repository

import (
	"os"
	"strings"

	"dealcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// parseMoney decodes a stored decimal string. Missing or malformed amounts
// read as zero so aggregation never fails on data quality.
func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func moneyString(d decimal.Decimal) string {
	return d.String()
}

// parseDate decodes a stored MM/DD/YYYY string; malformed values read as the
// absent date and are excluded from date-filtered aggregation.
func parseDate(s string) entities.Date {
	return entities.ParseDate(s)
}

func dateString(d entities.Date) string {
	return d.String()
}
