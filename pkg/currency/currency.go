// Package currency renders minor-unit-free LKR amounts for display.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Code   = "LKR"
	Symbol = "Rs."
)

var printer = message.NewPrinter(language.English)

// Format returns the fixed symbol, one space and the grouped whole-unit
// amount, e.g. Format(20100) == "Rs. 20,100". The locale is fixed: no
// dynamic currency switching.
func Format(amount int64) string {
	return Symbol + " " + printer.Sprintf("%d", amount)
}
