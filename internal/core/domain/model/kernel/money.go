package kernel

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyScale is the number of fraction digits kept for prices, taxes and totals.
const MoneyScale = 2

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// RoundMoney rounds half away from zero to MoneyScale digits.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// FormatPrice renders an amount in US dollars for logs, CLI output and
// notification texts, e.g. "$ 9.00".
func FormatPrice(amount decimal.Decimal) string {
	f, _ := RoundMoney(amount).Float64()
	return pricePrinter.Sprint(currency.Symbol(currency.USD.Amount(f)))
}

// FormatPriceDelta renders an option surcharge such as "+$ 2.00". Zero deltas
// render as an empty string.
func FormatPriceDelta(amount decimal.Decimal) string {
	switch amount.Sign() {
	case 0:
		return ""
	case 1:
		return "+" + FormatPrice(amount)
	default:
		return "-" + FormatPrice(amount.Neg())
	}
}
