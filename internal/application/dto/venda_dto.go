package dto

import "github.com/shopspring/decimal"

// CreateVendaRequest entrada para registrar uma venda.
// Data aceita qualquer formato reconhecido por datebr; vazia ou inválida vira hoje.
type CreateVendaRequest struct {
	MarmitaID  int    `json:"marmita_id" validate:"required,min=1"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	Data       string `json:"data"`
}

// UpdateVendaRequest atualização parcial.
type UpdateVendaRequest struct {
	MarmitaID  *int    `json:"marmita_id,omitempty" validate:"omitempty,min=1"`
	Quantidade *int    `json:"quantidade,omitempty" validate:"omitempty,min=1"`
	Data       *string `json:"data,omitempty"`
}

// VendaResponse saída de uma venda.
type VendaResponse struct {
	ID                int             `json:"id"`
	MarmitaID         int             `json:"marmita_id"`
	NomeMarmita       string          `json:"nome_marmita"`
	QuantidadeVendida decimal.Decimal `json:"quantidade_vendida"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	Data              string          `json:"data"` // DD/MM/YYYY ou ""
}

// VendasResumoDTO cartões da tela de vendas.
type VendasResumoDTO struct {
	TotalVendido    decimal.Decimal `json:"total_vendido"`
	QuantidadeTotal decimal.Decimal `json:"quantidade_total"`
	NumeroVendas    int             `json:"numero_vendas"`
	TicketMedio     decimal.Decimal `json:"ticket_medio"`
}

// VendaListResponse lista (mais recente primeiro) com o resumo.
type VendaListResponse struct {
	Items  []VendaResponse `json:"items"`
	Resumo VendasResumoDTO `json:"resumo"`
}
