package entity

import "github.com/shopspring/decimal"

// Relatorio snapshot financeiro pré-agregado pela API externa.
// Qualquer seção pode vir ausente (nil); os totais nunca são recalculados aqui.
type Relatorio struct {
	Periodo *RelatorioPeriodo
	Vendas  *RelatorioVendas
	Compras *RelatorioCompras
	Lucro   *RelatorioLucro
}

// RelatorioPeriodo limites informados pela API ("Início"/"Fim" quando sem filtro).
type RelatorioPeriodo struct {
	DataInicio string
	DataFim    string
}

// RelatorioVendas seção de vendas do relatório.
type RelatorioVendas struct {
	ReceitaTotal          decimal.Decimal
	CustoProdutosVendidos decimal.Decimal
	QuantidadeTotal       decimal.Decimal
	MarmitaMaisVendida    string
	QuantidadeMaisVendida decimal.Decimal
}

// RelatorioCompras seção de compras do relatório.
type RelatorioCompras struct {
	TotalCompras  decimal.Decimal
	NumeroCompras int
}

// RelatorioLucro seção de lucro do relatório.
type RelatorioLucro struct {
	LucroBruto         decimal.Decimal
	LucroLiquido       decimal.Decimal
	MargemLucroBruto   decimal.Decimal
	MargemLucroLiquido decimal.Decimal
}
