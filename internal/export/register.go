// Package export renders the GST invoice register as an Excel workbook.
// Accountants file monthly returns from this sheet, so the tax columns are
// grouped per GST rate the way the statutory summary tables are.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"hotelpride/internal/billing"
	"hotelpride/internal/domain"
)

const sheetName = "Invoice Register"

// fixedColumns precede the per-rate taxable/tax column pairs.
var fixedColumns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer",
	"GSTIN",
	"Status",
	"Subtotal",
	"Discount",
}

// trailingColumns follow the per-rate pairs.
var trailingColumns = []string{
	"Total Tax",
	"Total Amount",
}

// RegisterRow is one invoice with the context the register needs.
type RegisterRow struct {
	Invoice       domain.Invoice
	CustomerName  string
	CustomerGSTIN string
	Items         []domain.InvoiceLineItem
}

// WriteRegister writes the invoice register workbook to w. Tax rate columns
// cover every rate appearing anywhere in rows, in ascending order, so all
// rows share one column layout.
func WriteRegister(w io.Writer, rows []RegisterRow) error {
	rates := collectRates(rows)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := writeHeader(f, rates); err != nil {
		return err
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row, rates); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// collectRates returns the distinct non-zero tax rates across all rows,
// ascending.
func collectRates(rows []RegisterRow) []float64 {
	seen := make(map[float64]bool)
	for _, row := range rows {
		for _, item := range row.Items {
			if item.TaxRate > 0 {
				seen[item.TaxRate] = true
			}
		}
	}
	rates := make([]float64, 0, len(seen))
	for rate := range seen {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)
	return rates
}

func writeHeader(f *excelize.File, rates []float64) error {
	headers := make([]string, 0, len(fixedColumns)+2*len(rates)+len(trailingColumns))
	headers = append(headers, fixedColumns...)
	for _, rate := range rates {
		headers = append(headers,
			fmt.Sprintf("Taxable @ %g%%", rate),
			fmt.Sprintf("GST @ %g%%", rate),
		)
	}
	headers = append(headers, trailingColumns...)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, row RegisterRow, rates []float64) error {
	breakdown := billing.CalculateGSTBreakdown(billingItems(row.Items))

	values := []interface{}{
		row.Invoice.InvoiceNumber,
		row.Invoice.InvoiceDate.Format("02-01-2006"),
		row.CustomerName,
		row.CustomerGSTIN,
		string(row.Invoice.Status),
		row.Invoice.Subtotal,
		row.Invoice.TotalDiscount,
	}
	for _, rate := range rates {
		bucket := breakdown[rate]
		values = append(values, bucket.TaxableAmount, bucket.TaxAmount)
	}
	values = append(values, row.Invoice.TotalTax, row.Invoice.TotalAmount)

	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func billingItems(items []domain.InvoiceLineItem) []billing.LineItem {
	out := make([]billing.LineItem, 0, len(items))
	for _, in := range items {
		out = append(out, billing.LineItem{
			Description:  in.Description,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			TaxRate:      in.TaxRate,
			TaxInclusive: in.TaxInclusive,
			DiscountRate: in.DiscountRate,
		})
	}
	return out
}
