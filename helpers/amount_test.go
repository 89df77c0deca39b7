package helpers

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"rupee display string", "Rs. 1,000.00", "1000"},
		{"lkr display string", "LKR 400", "400"},
		{"leading dot fraction", "LKR .50", "0.5"},
		{"bare fraction", ".75", "0.75"},
		{"prefix dot is not a decimal point", "Rs.500", "500"},
		{"plain number string", "250.5", "250.5"},
		{"int", 500, "500"},
		{"int32", int32(42), "42"},
		{"int64", int64(7), "7"},
		{"float", 99.95, "99.95"},
		{"garbage", "free", "0"},
		{"nil", nil, "0"},
		{"nan", math.NaN(), "0"},
		{"unsupported", []string{"1"}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in).String())
		})
	}
}

func TestParseAmountSumsMixedShapes(t *testing.T) {
	total := ParseAmount("Rs. 1,000.00").Add(ParseAmount(500)).Add(ParseAmount(250))
	assert.True(t, total.Equal(decimal.NewFromInt(1750)))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 0.0, ParsePrice("abc"))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 450.0, ParsePrice(" 450 "))
	assert.Equal(t, 12.5, ParsePrice("12.5 rupees"))
	assert.Equal(t, 0.0, ParsePrice("Infinity"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Rs. 1,750.00", FormatAmount("Rs.", decimal.NewFromInt(1750)))
	assert.Equal(t, "LKR 550.00", FormatAmount("LKR", decimal.NewFromInt(550)))
	assert.Equal(t, "1,234,567.50", FormatAmount("", decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "Rs. -10.00", FormatAmount("Rs.", decimal.NewFromInt(-10)))
}
