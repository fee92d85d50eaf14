package settings

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// ParseCurrency validates an ISO 4217 code.
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return unit, nil
}

// FormatAmount renders amount the way an en-US currency formatter does:
// "$1,234.50", "SAR 10.00". Display only; totals stay decimal.
func FormatAmount(code string, amount decimal.Decimal) (string, error) {
	unit, err := ParseCurrency(code)
	if err != nil {
		return "", err
	}

	scale, _ := currency.Standard.Rounding(unit)
	symbol := printer.Sprint(currency.Symbol(unit))
	digits := printer.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(scale)))
	if symbol == unit.String() {
		return symbol + " " + digits, nil
	}
	return symbol + digits, nil
}
