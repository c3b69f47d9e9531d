// Package words spells dinar amounts out in French, as printed on the
// "montant en lettres" line of a traite.
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var units = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

// 70 and 90 reuse the tens below them and count on into the teens.
var tens = [...]string{
	"", "", "vingt", "trente", "quarante", "cinquante",
	"soixante", "soixante", "quatre-vingt", "quatre-vingt",
}

const (
	thousand = 1_000
	million  = 1_000_000
	milliard = 1_000_000_000
	// amounts at or above this many dinars are printed as figures
	maxDinars = 1_000_000_000_000_000
)

var thousandDec = decimal.NewFromInt(thousand)

// ToWords spells amount as "<dinars> et <millimes>". The fractional part is
// rounded to the nearest millime before spelling; zero is "zéro".
func ToWords(amount decimal.Decimal) string {
	prefix := ""
	if amount.IsNegative() {
		prefix = "moins "
		amount = amount.Neg()
	}

	total := amount.Mul(thousandDec).Round(0)
	if total.GreaterThanOrEqual(decimal.NewFromInt(maxDinars).Mul(thousandDec)) {
		return prefix + amount.StringFixed(3)
	}
	m := total.IntPart()
	dinars, millimes := m/thousand, m%thousand

	if dinars == 0 && millimes == 0 {
		return "zéro"
	}

	var parts []string
	if dinars > 0 {
		parts = append(parts, currency(dinars, "dinar"))
	}
	if millimes > 0 {
		parts = append(parts, currency(millimes, "millime"))
	}
	return prefix + strings.Join(parts, " et ")
}

// Integer spells a non-negative integer.
func Integer(n int64) string {
	if n <= 0 {
		return units[0]
	}
	var parts []string
	if g := n / milliard; g > 0 {
		parts = append(parts, scaled(g, "milliard"))
	}
	if g := n / million % thousand; g > 0 {
		parts = append(parts, scaled(g, "million"))
	}
	if g := n / thousand % thousand; g > 0 {
		if g == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, hundreds(int(g))+" mille")
		}
	}
	if g := n % thousand; g > 0 {
		parts = append(parts, hundreds(int(g)))
	}
	return strings.Join(parts, " ")
}

func currency(n int64, unit string) string {
	s := Integer(n)
	// "un million de dinars", "deux milliards de dinars"
	if n >= million && n%million == 0 {
		s += " de"
	}
	if n > 1 {
		unit += "s"
	}
	return s + " " + unit
}

func scaled(n int64, noun string) string {
	if n == 1 {
		return "un " + noun
	}
	return Integer(n) + " " + noun + "s"
}

// hundreds handles 1..999. "cent" is left unpluralized.
func hundreds(n int) string {
	h, r := n/100, n%100
	var head string
	switch h {
	case 0:
		return tensAndUnits(r)
	case 1:
		head = "cent"
	default:
		head = units[h] + " cent"
	}
	if r == 0 {
		return head
	}
	return head + " " + tensAndUnits(r)
}

func tensAndUnits(n int) string {
	if n < len(units) {
		return units[n]
	}
	t, u := n/10, n%10
	switch {
	case t == 7 && u == 1:
		return "soixante et onze"
	case t == 7 || t == 9:
		return tens[t] + "-" + units[10+u]
	case u == 0:
		return tens[t]
	case u == 1 && t != 8:
		return tens[t] + " et un"
	}
	return tens[t] + "-" + units[u]
}
