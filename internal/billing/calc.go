// Package billing implements the invoice calculation engine: per-line GST
// arithmetic, invoice aggregation, the statutory GST breakdown, the Indian
// amount-in-words renderer and the advisory validators.
//
// Every function in this package is pure and stateless: no I/O, no shared
// mutable state, safe for concurrent use. Calculators never validate their
// input; out-of-range values flow through arithmetically (see validate.go).
package billing

import "math"

// LineItem is the calculation input for one billable row. Display metadata
// (description, item type, date, sort order) is carried by the caller and
// has no bearing on the arithmetic except Description, which the advisory
// validator checks.
type LineItem struct {
	Description  string
	Quantity     float64
	UnitPrice    float64
	TaxRate      float64 // percent, 0-100
	TaxInclusive bool    // unit price already contains tax
	DiscountRate float64 // percent, 0-100, applied to the pre-tax base
}

// LineItemCalculation is the derived result for one line, every field
// rounded to 2 decimals.
type LineItemCalculation struct {
	LineTotal      float64 `json:"line_total"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// InvoiceCalculation aggregates per-line calculations. Each total is rounded
// to 2 decimals independently, after accumulation.
type InvoiceCalculation struct {
	Subtotal      float64               `json:"subtotal"`
	TotalTax      float64               `json:"total_tax"`
	TotalDiscount float64               `json:"total_discount"`
	TotalAmount   float64               `json:"total_amount"`
	LineItems     []LineItemCalculation `json:"line_items"`
}

// GSTBucket accumulates taxable and tax amounts for one tax rate.
type GSTBucket struct {
	TaxableAmount float64 `json:"taxable_amount"`
	TaxAmount     float64 `json:"tax_amount"`
}

// Round2 rounds to 2 decimal places, half away from zero. Statutory GST
// figures must reproduce bit-for-bit across line and aggregate passes, so
// all rounding in this package goes through here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateLineItem computes tax, discount and totals for a single line.
func CalculateLineItem(item LineItem) LineItemCalculation {
	base := item.Quantity * item.UnitPrice

	var discount float64
	if item.DiscountRate > 0 {
		discount = base * item.DiscountRate / 100
	}

	var tax, lineTotal float64
	switch {
	case item.TaxRate > 0 && item.TaxInclusive:
		// Inclusive pricing: tax is backed out of the price and the line
		// total stays at base. The discount is computed but not subtracted
		// on this branch. Changing that would reprice every previously
		// issued tax-inclusive invoice, so the behavior is kept as is and
		// pinned by a test.
		tax = base * item.TaxRate / (100 + item.TaxRate)
		lineTotal = base
	case item.TaxRate > 0:
		taxable := base - discount
		tax = taxable * item.TaxRate / 100
		lineTotal = base + tax - discount
	default:
		lineTotal = base - discount
	}

	return LineItemCalculation{
		LineTotal:      Round2(lineTotal),
		TaxAmount:      Round2(tax),
		DiscountAmount: Round2(discount),
		FinalAmount:    Round2(lineTotal),
	}
}

// CalculateInvoiceTotal maps CalculateLineItem over the items in order and
// sums the per-line results. Empty input yields all-zero totals and an
// empty line item slice.
func CalculateInvoiceTotal(items []LineItem) InvoiceCalculation {
	calc := InvoiceCalculation{
		LineItems: make([]LineItemCalculation, 0, len(items)),
	}

	var subtotal, tax, discount, total float64
	for _, item := range items {
		lc := CalculateLineItem(item)
		calc.LineItems = append(calc.LineItems, lc)
		subtotal += lc.LineTotal
		tax += lc.TaxAmount
		discount += lc.DiscountAmount
		total += lc.FinalAmount
	}

	calc.Subtotal = Round2(subtotal)
	calc.TotalTax = Round2(tax)
	calc.TotalDiscount = Round2(discount)
	calc.TotalAmount = Round2(total)
	return calc
}

// CalculateGSTBreakdown groups taxable and tax amounts by tax rate for the
// statutory reporting table. Rates key the map exactly as given; two items
// whose rates differ by even 0.01 land in separate buckets. Zero-rated
// lines are excluded entirely.
func CalculateGSTBreakdown(items []LineItem) map[float64]GSTBucket {
	breakdown := make(map[float64]GSTBucket)

	for _, item := range items {
		if item.TaxRate <= 0 {
			continue
		}
		lc := CalculateLineItem(item)
		base := item.Quantity * item.UnitPrice

		var taxable float64
		if item.TaxInclusive {
			taxable = base - lc.TaxAmount - lc.DiscountAmount
		} else {
			taxable = base - lc.DiscountAmount
		}

		bucket := breakdown[item.TaxRate]
		bucket.TaxableAmount += taxable
		bucket.TaxAmount += lc.TaxAmount
		breakdown[item.TaxRate] = bucket
	}

	for rate, bucket := range breakdown {
		breakdown[rate] = GSTBucket{
			TaxableAmount: Round2(bucket.TaxableAmount),
			TaxAmount:     Round2(bucket.TaxAmount),
		}
	}
	return breakdown
}
