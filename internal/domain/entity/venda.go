package entity

import "github.com/shopspring/decimal"

// Venda uma transação de uma quantidade de uma marmita numa data.
type Venda struct {
	ID                int
	MarmitaID         int
	NomeMarmita       string // desnormalizado pela API
	QuantidadeVendida decimal.Decimal
	ValorTotal        decimal.Decimal
	DataDeVenda       string
	Data              string
}

// RawDate devolve a data crua da venda, preferindo data_de_venda.
func (v Venda) RawDate() string {
	if v.DataDeVenda != "" {
		return v.DataDeVenda
	}
	return v.Data
}
