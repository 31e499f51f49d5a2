package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currency symbols stripped before numeric parsing.
const currencyRunes = "₹$€£¥"

// ParseAmount coerces a cell's string content to a decimal amount. It strips
// surrounding whitespace, currency symbols and thousands separators, and
// accepts accounting-style parentheses for negatives. The second return is
// false for blank or non-numeric content.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyRunes, r) || r == ',' || r == ' ' {
			return -1
		}
		return r
	}, s)

	if s == "" || s == "-" || s == "+" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
