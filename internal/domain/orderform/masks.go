package orderform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	phoneDigits = 11
	cpfDigits   = 11
	// keeps cents well inside int64 and exact in a decimal
	currencyMaxDigits = 13
)

var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func capDigits(s string, max int) string {
	d := Digits(s)
	if len(d) > max {
		return d[:max]
	}
	return d
}

// MaskPhone formats up to 11 digits progressively as (DD) D DDDD-DDDD, so a
// partially typed number is always a valid prefix of the full mask.
func MaskPhone(raw string) string {
	d := capDigits(raw, phoneDigits)
	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + d
	case n <= 3:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 7:
		return "(" + d[:2] + ") " + d[2:3] + " " + d[3:]
	default:
		return "(" + d[:2] + ") " + d[2:3] + " " + d[3:7] + "-" + d[7:]
	}
}

// MaskCPF formats up to 11 digits progressively as DDD.DDD.DDD-DD.
func MaskCPF(raw string) string {
	d := capDigits(raw, cpfDigits)
	switch n := len(d); {
	case n <= 3:
		return d
	case n <= 6:
		return d[:3] + "." + d[3:]
	case n <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// MaskCurrency reads the typed digits as cents and formats them with two
// decimals in Brazilian notation ("123456" -> "1.234,56").
func MaskCurrency(raw string) string {
	cents, ok := currencyCents(raw)
	if !ok {
		return ""
	}
	return FormatCurrency(decimal.New(cents, -2))
}

// FormatCurrency prints v with thousands grouping and two decimals.
func FormatCurrency(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	whole := v.IntPart()
	frac := v.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	return sign + currencyPrinter.Sprintf("%d", whole) + fmt.Sprintf(",%02d", frac)
}

// ParseCurrency is the numeric reading of a masked value: digits / 100.
func ParseCurrency(masked string) (decimal.Decimal, bool) {
	cents, ok := currencyCents(masked)
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.New(cents, -2), true
}

// currencyCents reads the typed digits as cents. Leading zeros do not count
// toward the cap and digits past currencyMaxDigits are refused, as the phone
// mask refuses a twelfth digit.
func currencyCents(raw string) (int64, bool) {
	d := Digits(raw)
	if d == "" {
		return 0, false
	}
	d = capDigits(strings.TrimLeft(d, "0"), currencyMaxDigits)
	var cents int64
	for _, r := range d {
		cents = cents*10 + int64(r-'0')
	}
	return cents, true
}
