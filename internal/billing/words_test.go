package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"single digit", 7, "Seven Rupees Only"},
		{"teens", 14, "Fourteen Rupees Only"},
		{"tens", 40, "Forty Rupees Only"},
		{"compound tens", 86, "Eighty Six Rupees Only"},
		{"hundreds", 300, "Three Hundred Rupees Only"},
		{"full three digits", 999, "Nine Hundred Ninety Nine Rupees Only"},
		{"thousand", 1500.50, "One Thousand Five Hundred Rupees and Fifty Paise Only"},
		{"lakh", 100000, "One Lakh Rupees Only"},
		{"crore", 10000000, "One Crore Rupees Only"},
		{"mixed scales", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"paise only", 0.50, "Zero Rupees and Fifty Paise Only"},
		{"one paisa", 0.01, "Zero Rupees and One Paise Only"},
		{"negative", -250, "Minus Two Hundred Fifty Rupees Only"},
		{"above hundred crore", 1000000000, "One Hundred Crore Rupees Only"},
		{"thousand crore", 25000000000, "Two Thousand Five Hundred Crore Rupees Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(tt.amount))
		})
	}
}

func TestAmountInWords_PaiseCarry(t *testing.T) {
	// 99.999 rounds its paise component to 100, which carries into rupees.
	assert.Equal(t, "One Hundred Rupees Only", AmountInWords(99.999))
}

func TestAmountInWords_Idempotent(t *testing.T) {
	first := AmountInWords(98765.43)
	second := AmountInWords(98765.43)
	assert.Equal(t, first, second)
}
