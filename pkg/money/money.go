// Package money formata valores monetários e percentuais no padrão pt-BR.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL devolve o valor como "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}

// Percent devolve o valor como "80,0%".
func Percent(v decimal.Decimal) string {
	f, _ := v.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}

// Number devolve o valor com separadores pt-BR e até duas casas decimais.
func Number(v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return printer.Sprintf("%d", v.IntPart())
	}
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
