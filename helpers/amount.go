package helpers

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// A bare ".50" counts only when the dot does not end a prefix like "Rs.".
	amountNumber = regexp.MustCompile(`(^|[^A-Za-z0-9.])\.\d+|\d+(\.\d+)?`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// ParseAmount turns a stored money value into a decimal. Display strings such
// as "Rs. 1,000.00" lose their currency prefix and grouping commas; anything
// unparseable counts as zero.
func ParseAmount(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case string:
		cleaned := strings.ReplaceAll(n, ",", "")
		if m := amountNumber.FindString(cleaned); m != "" {
			if i := strings.IndexAny(m, ".0123456789"); i > 0 {
				m = m[i:]
			}
			if strings.HasPrefix(m, ".") {
				m = "0" + m
			}
			if d, err := decimal.NewFromString(m); err == nil {
				return d
			}
		}
		return decimal.Zero
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case decimal.Decimal:
		return n
	default:
		return decimal.Zero
	}
}

// ParsePrice reads a form price the way a browser parseFloat would: the
// longest numeric prefix wins and non-numeric input yields 0.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(f)
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

// FormatAmount renders d with thousands separators and two decimals,
// e.g. FormatAmount("Rs.", 1750) == "Rs. 1,750.00".
func FormatAmount(prefix string, d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	out := sign + b.String() + frac
	if prefix == "" {
		return out
	}
	return prefix + " " + out
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
