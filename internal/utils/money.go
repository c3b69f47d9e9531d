package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MinorDigits is the number of fractional digits of the dinar (millimes).
const MinorDigits = 3

var ErrTooManyDecimals = errors.New("amount has more than 3 decimal places")

// ParseAmount reads an amount as typed in the forms: "1234.5", "1 234,500".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !HasMillimePrecision(d) {
		return decimal.Zero, ErrTooManyDecimals
	}
	return d, nil
}

// ParseDecimal accepts the same notations as ParseAmount without the
// millime check.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// HasMillimePrecision reports whether d is an exact number of millimes.
func HasMillimePrecision(d decimal.Decimal) bool {
	return d.Round(MinorDigits).Equal(d)
}

// FormatAmount renders d with exactly three decimals and the integer part
// grouped by thousands with a space: 12 345.670
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(MinorDigits)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(' ')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatDate is the date format printed on the drafts.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
