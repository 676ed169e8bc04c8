// Package money normalizes loosely formatted monetary values coming from
// user text, model output and marketplace listings.
package money

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Package-level compiled regex patterns for performance
var (
	budgetNumberRegex = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
	nonPriceCharRegex = regexp.MustCompile(`[^\d.]`)
)

// NormalizeBudget parses a loosely formatted budget value into a canonical
// two-decimal string ("RM 1,200.5" -> "1200.50"), rounding half up. It
// accepts raw JSON scalars, so numbers arrive as float64 and absent values
// as nil. Returns nil when no numeric value can be found.
func NormalizeBudget(v any) *string {
	switch b := v.(type) {
	case nil:
		return nil
	case float64:
		s := decimal.NewFromFloat(b).StringFixed(2)
		return &s
	case int:
		s := decimal.NewFromInt(int64(b)).StringFixed(2)
		return &s
	case string:
		trimmed := strings.TrimSpace(b)
		if trimmed == "" {
			return nil
		}
		m := budgetNumberRegex.FindString(trimmed)
		if m == "" {
			return nil
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
		if err != nil {
			return nil
		}
		s := d.StringFixed(2)
		return &s
	default:
		return nil
	}
}

// ToMoney parses a listing price into a float. Strings are stripped down to
// digits and decimal points before parsing, which discards currency symbols
// and separators wholesale. Unlike NormalizeBudget it is not comma-aware:
// "1,23" becomes 123, where NormalizeBudget would read 1.00. The divergence
// is deliberate; listing prices go through this cheaper path.
func ToMoney(v any) *float64 {
	switch p := v.(type) {
	case nil:
		return nil
	case float64:
		return &p
	case int:
		f := float64(p)
		return &f
	case string:
		s := nonPriceCharRegex.ReplaceAllString(p, "")
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// RowTotal computes unit price times quantity with decimal arithmetic to
// avoid float drift on the displayed totals.
func RowTotal(unitPrice float64, quantity int) float64 {
	if quantity <= 0 {
		quantity = 1
	}
	total, _ := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		Float64()
	return total
}
