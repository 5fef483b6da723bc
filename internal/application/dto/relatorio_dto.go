package dto

import "github.com/shopspring/decimal"

// RelatorioFiltro filtros opcionais repassados para GET /relatorio.
// Aceita datas em qualquer formato reconhecido; saem como YYYY-MM-DD.
type RelatorioFiltro struct {
	DataInicio string `query:"data_inicio"`
	DataFim    string `query:"data_fim"`
}

// RelatorioDTO resposta de GET /api/relatorio.
// Todos os campos vêm prontos da API externa; ausentes viram zero.
type RelatorioDTO struct {
	Periodo RelatorioPeriodoDTO `json:"periodo"`
	Vendas  RelatorioVendasDTO  `json:"vendas"`
	Compras RelatorioComprasDTO `json:"compras"`
	Lucro   RelatorioLucroDTO   `json:"lucro"`
}

// RelatorioPeriodoDTO limites do relatório ("Início"/"Fim" quando sem filtro).
type RelatorioPeriodoDTO struct {
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

// RelatorioVendasDTO seção de vendas.
type RelatorioVendasDTO struct {
	ReceitaTotal          decimal.Decimal `json:"receita_total"`
	CustoProdutosVendidos decimal.Decimal `json:"custo_produtos_vendidos"`
	QuantidadeTotal       decimal.Decimal `json:"quantidade_total"`
	MarmitaMaisVendida    string          `json:"marmita_mais_vendida"`
	QuantidadeMaisVendida decimal.Decimal `json:"quantidade_mais_vendida"`
}

// RelatorioComprasDTO seção de compras.
type RelatorioComprasDTO struct {
	TotalCompras  decimal.Decimal `json:"total_compras"`
	NumeroCompras int             `json:"numero_compras"`
}

// RelatorioLucroDTO seção de lucro.
type RelatorioLucroDTO struct {
	LucroBruto         decimal.Decimal `json:"lucro_bruto"`
	LucroLiquido       decimal.Decimal `json:"lucro_liquido"`
	MargemLucroBruto   decimal.Decimal `json:"margem_lucro_bruto"`
	MargemLucroLiquido decimal.Decimal `json:"margem_lucro_liquido"`
}
