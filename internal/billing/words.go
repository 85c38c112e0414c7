package billing

import (
	"math"
	"strings"
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a currency amount as English words using the Indian
// numbering system (Thousand, Lakh, Crore). The rupee part above one crore
// recurses through the crore bucket, so amounts past 10^9 render as e.g.
// "One Hundred Crore" rather than being clamped. Negative amounts get a
// "Minus" prefix.
func AmountInWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - math.Floor(amount)) * 100))
	if paise == 100 {
		// 0.999...5 rounds up into the next rupee.
		rupees++
		paise = 0
	}

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	rupeeWords := "Zero"
	if rupees > 0 {
		rupeeWords = indianWords(rupees)
	}

	out := rupeeWords + " Rupees"
	if paise > 0 {
		out += " and " + twoDigitWords(paise) + " Paise"
	}
	return out + " Only"
}

// indianWords converts a positive integer to words with Indian scale units.
func indianWords(n int64) string {
	switch {
	case n >= crore:
		out := indianWords(n/crore) + " Crore"
		if rem := n % crore; rem > 0 {
			out += " " + indianWords(rem)
		}
		return out
	case n >= lakh:
		out := twoDigitWords(n/lakh) + " Lakh"
		if rem := n % lakh; rem > 0 {
			out += " " + indianWords(rem)
		}
		return out
	case n >= 1000:
		out := twoDigitWords(n/1000) + " Thousand"
		if rem := n % 1000; rem > 0 {
			out += " " + indianWords(rem)
		}
		return out
	default:
		return threeDigitWords(n)
	}
}

func threeDigitWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}
	return strings.Join(parts, " ")
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	out := tensWords[n/10]
	if n%10 > 0 {
		out += " " + onesWords[n%10]
	}
	return out
}
