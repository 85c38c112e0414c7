package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() LineItem {
	return LineItem{Description: "Room charge", Quantity: 1, UnitPrice: 4500, TaxRate: 12}
}

func TestValidateLineItem_Valid(t *testing.T) {
	assert.Empty(t, ValidateLineItem(validItem()))
}

func TestValidateLineItem_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LineItem)
		want   string
	}{
		{"blank description", func(li *LineItem) { li.Description = "  " }, "description is required"},
		{"zero quantity", func(li *LineItem) { li.Quantity = 0 }, "quantity must be greater than zero"},
		{"negative quantity", func(li *LineItem) { li.Quantity = -1 }, "quantity must be greater than zero"},
		{"negative price", func(li *LineItem) { li.UnitPrice = -10 }, "unit price cannot be negative"},
		{"tax rate over 100", func(li *LineItem) { li.TaxRate = 101 }, "tax rate must be between 0 and 100"},
		{"negative tax rate", func(li *LineItem) { li.TaxRate = -5 }, "tax rate must be between 0 and 100"},
		{"discount over 100", func(li *LineItem) { li.DiscountRate = 150 }, "discount rate must be between 0 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)
			assert.Contains(t, ValidateLineItem(item), tt.want)
		})
	}
}

// The calculator does not reject what the validator flags; it computes
// through bad input and the caller decides.
func TestCalculatorComputesDespiteViolations(t *testing.T) {
	item := LineItem{Quantity: -2, UnitPrice: 100}
	require.NotEmpty(t, ValidateLineItem(item))

	got := CalculateLineItem(item)
	assert.InDelta(t, -200.0, got.FinalAmount, 0.001)
}

func TestValidateInvoice(t *testing.T) {
	valid := InvoiceInput{
		CustomerName: "Asha Rao",
		InvoiceDate:  time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		LineItems:    []LineItem{validItem()},
	}
	assert.Empty(t, ValidateInvoice(valid))

	empty := ValidateInvoice(InvoiceInput{})
	assert.Contains(t, empty, "customer name is required")
	assert.Contains(t, empty, "invoice date is required")
	assert.Contains(t, empty, "at least one line item is required")
}

func TestValidateInvoice_LineIndexPrefix(t *testing.T) {
	input := InvoiceInput{
		CustomerName: "Asha Rao",
		InvoiceDate:  time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		LineItems: []LineItem{
			validItem(),
			{Description: "", Quantity: 0, UnitPrice: 100},
		},
	}

	got := ValidateInvoice(input)
	assert.Contains(t, got, "line 2: description is required")
	assert.Contains(t, got, "line 2: quantity must be greater than zero")
	for _, v := range got {
		assert.NotContains(t, v, "line 1:")
	}
}
