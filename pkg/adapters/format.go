package adapters

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders whole dollars with thousands separators: $905,707.
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + printer.Sprint(number.Decimal(-v, number.Scale(0)))
	}
	return "$" + printer.Sprint(number.Decimal(v, number.Scale(0)))
}

func FormatCount(v int) string {
	if v < 0 {
		return "-" + printer.Sprint(number.Decimal(-v))
	}
	return printer.Sprint(number.Decimal(v))
}

// FormatPercent renders a percentage with the given number of decimals.
func FormatPercent(v float64, decimals int) string {
	if v < 0 {
		return "-" + FormatPercent(-v, decimals)
	}
	return printer.Sprint(number.Decimal(v, number.Scale(decimals))) + "%"
}

// FormatDelta is FormatPercent with an explicit sign.
func FormatDelta(v float64, decimals int) string {
	if v >= 0 {
		return "+" + FormatPercent(v, decimals)
	}
	return FormatPercent(v, decimals)
}
