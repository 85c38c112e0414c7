package billing

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount for display. INR uses the rupee symbol
// with Indian digit grouping (12,34,567.89); other currencies get the code
// as prefix with western grouping. Display only, not part of the
// calculation contract.
func FormatCurrency(amount float64, currency string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(whole, ".")

	var grouped string
	if strings.EqualFold(currency, "INR") {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupThousands(intPart)
	}

	out := grouped + "." + fracPart
	if strings.EqualFold(currency, "INR") {
		out = "₹" + out
	} else {
		out = strings.ToUpper(currency) + " " + out
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas Indian-style: last three digits, then pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	out := digits[len(digits)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	return groupThousands(digits[:len(digits)-3]) + "," + digits[len(digits)-3:]
}
