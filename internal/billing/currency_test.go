package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_INR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{123.4, "₹123.40"},
		{1234.56, "₹1,234.56"},
		{123456.78, "₹1,23,456.78"},
		{12345678.9, "₹1,23,45,678.90"},
		{-9999.5, "-₹9,999.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount, "INR"))
	}
}

func TestFormatCurrency_Other(t *testing.T) {
	assert.Equal(t, "USD 1,234,567.89", FormatCurrency(1234567.89, "USD"))
	assert.Equal(t, "EUR 12.00", FormatCurrency(12, "eur"))
}
