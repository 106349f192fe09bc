package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators and two decimals.
func FormatMoney(d decimal.Decimal) string {
	return printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func FormatPoints(p int) string {
	return printer.Sprintf("%d pts", p)
}

// FormatWeight renders kilograms, switching to tonnes from 1000 kg.
func FormatWeight(kg float64) string {
	if kg >= 1000 {
		return printer.Sprintf("%.2f t", kg/1000)
	}

	return printer.Sprintf("%.1f kg", kg)
}

func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
