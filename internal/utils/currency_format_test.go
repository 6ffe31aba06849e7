package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12.35", FormatMoney(decimal.RequireFromString("12.3456"), "USD"))
	assert.Equal(t, "12", FormatMoney(decimal.RequireFromString("12.3456"), "jpy"))
	assert.Equal(t, "100.00", FormatMoney(decimal.NewFromInt(100), "EUR"))
	assert.Equal(t, "0.5000", FormatWithPrecision(decimal.RequireFromString("0.5"), 4))
}
