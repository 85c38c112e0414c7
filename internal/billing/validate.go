package billing

import (
	"fmt"
	"strings"
	"time"
)

// InvoiceInput is the validator's view of an invoice payload.
type InvoiceInput struct {
	CustomerName string
	InvoiceDate  time.Time
	LineItems    []LineItem
}

// ValidateLineItem returns human-readable violations for one line item.
// Advisory only: the calculators compute regardless, so previews keep
// working on momentarily invalid form state. Callers must check this
// before trusting calculator output on untrusted input.
func ValidateLineItem(item LineItem) []string {
	var violations []string
	if strings.TrimSpace(item.Description) == "" {
		violations = append(violations, "description is required")
	}
	if item.Quantity <= 0 {
		violations = append(violations, "quantity must be greater than zero")
	}
	if item.UnitPrice < 0 {
		violations = append(violations, "unit price cannot be negative")
	}
	if item.TaxRate < 0 || item.TaxRate > 100 {
		violations = append(violations, "tax rate must be between 0 and 100")
	}
	if item.DiscountRate < 0 || item.DiscountRate > 100 {
		violations = append(violations, "discount rate must be between 0 and 100")
	}
	return violations
}

// ValidateInvoice runs required-field checks plus per-line validation,
// prefixing line violations with a 1-based line index.
func ValidateInvoice(input InvoiceInput) []string {
	var violations []string
	if strings.TrimSpace(input.CustomerName) == "" {
		violations = append(violations, "customer name is required")
	}
	if input.InvoiceDate.IsZero() {
		violations = append(violations, "invoice date is required")
	}
	if len(input.LineItems) == 0 {
		violations = append(violations, "at least one line item is required")
	}
	for i, item := range input.LineItems {
		for _, v := range ValidateLineItem(item) {
			violations = append(violations, fmt.Sprintf("line %d: %s", i+1, v))
		}
	}
	return violations
}
