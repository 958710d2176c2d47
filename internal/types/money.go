package types

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormat renders decimal amounts for display in a currency and locale.
type MoneyFormat struct {
	Unit   currency.Unit
	Locale language.Tag
}

// NewMoneyFormat parses an ISO 4217 currency code and a BCP 47 locale.
func NewMoneyFormat(code, locale string) (MoneyFormat, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return MoneyFormat{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return MoneyFormat{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return MoneyFormat{Unit: unit, Locale: tag}, nil
}

// Symbol returns the currency symbol for the locale, e.g. "$" or "€".
func (f MoneyFormat) Symbol() string {
	return message.NewPrinter(f.Locale).Sprint(currency.Symbol(f.Unit))
}

// Format returns the amount with currency symbol, grouping and two
// decimal places, e.g. "$1,234.50".
func (f MoneyFormat) Format(amount decimal.Decimal) string {
	p := message.NewPrinter(f.Locale)

	value, _ := amount.Abs().Round(2).Float64()
	s := f.Symbol() + p.Sprintf("%.2f", value)

	if amount.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}
