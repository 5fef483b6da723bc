package dto

import "github.com/shopspring/decimal"

// DashboardDTO resposta de GET /api/dashboard.
// Os cartões vêm do relatório da API; as séries são calculadas sobre as vendas do período.
type DashboardDTO struct {
	Periodo      string `json:"periodo"`       // semana | mes | ano
	PeriodoLabel string `json:"periodo_label"` // ex: "Este mês"

	Resumo          RelatorioDTO    `json:"resumo"`
	VendasPeriodo   VendasResumoDTO `json:"vendas_periodo"`
	VendasRecentes  []VendaResponse `json:"vendas_recentes"`
	VendasDoPeriodo []VendaResponse `json:"vendas_do_periodo"` // mais recente primeiro

	PorData      []DailyPointDTO `json:"por_data"`
	PorMarmita   []MealShareDTO  `json:"por_marmita"`
	PorDiaSemana WeekdayDTO      `json:"por_dia_semana"`

	Vazio         bool              `json:"vazio"`
	MensagemVazia string            `json:"mensagem_vazia,omitempty"`
	Falhas        map[string]string `json:"falhas,omitempty"` // recurso -> erro da última carga
	AtualizadoEm  string            `json:"atualizado_em"`
}

// DailyPointDTO ponto do gráfico de linha (receita e quantidade por dia).
type DailyPointDTO struct {
	Data       string          `json:"data"`       // DD/MM/YYYY
	DiaSemana  string          `json:"dia_semana"` // Dom..Sáb
	Receita    decimal.Decimal `json:"receita"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// MealShareDTO fatia do gráfico de pizza.
type MealShareDTO struct {
	Nome       string          `json:"nome"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Percentual decimal.Decimal `json:"percentual"`
}

// WeekdayDTO gráfico de barras empilhadas; Tipos são as séries.
type WeekdayDTO struct {
	Dias  []WeekdayBucketDTO `json:"dias"`
	Tipos []string           `json:"tipos"`
}

// WeekdayBucketDTO quantidades por marmita num dia da semana.
type WeekdayBucketDTO struct {
	Dia      string                     `json:"dia"`
	Marmitas map[string]decimal.Decimal `json:"marmitas"`
}
