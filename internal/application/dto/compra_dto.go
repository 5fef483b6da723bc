package dto

import "github.com/shopspring/decimal"

// CreateCompraRequest entrada para registrar uma compra.
// IngredientesPrecos: id_ingrediente -> preço pago.
type CreateCompraRequest struct {
	ValorTotal         decimal.Decimal         `json:"valor_total" validate:"gt=0"`
	Data               string                  `json:"data"`
	IngredientesPrecos map[int]decimal.Decimal `json:"ingredientes_precos" validate:"required,min=1,dive,keys,min=1,endkeys,gte=0"`
}

// UpdateCompraRequest atualização parcial.
type UpdateCompraRequest struct {
	ValorTotal         *decimal.Decimal        `json:"valor_total,omitempty" validate:"omitempty,gt=0"`
	Data               *string                 `json:"data,omitempty"`
	IngredientesPrecos map[int]decimal.Decimal `json:"ingredientes_precos,omitempty" validate:"omitempty,min=1,dive,keys,min=1,endkeys,gte=0"`
}

// CompraResponse saída de uma compra.
type CompraResponse struct {
	ID                 int                     `json:"id"`
	ValorTotal         decimal.Decimal         `json:"valor_total"`
	Data               string                  `json:"data"`
	IngredientesPrecos map[int]decimal.Decimal `json:"ingredientes_precos"`
}

// ComprasResumoDTO cartões da tela de compras.
type ComprasResumoDTO struct {
	TotalGasto    decimal.Decimal `json:"total_gasto"`
	NumeroCompras int             `json:"numero_compras"`
	TicketMedio   decimal.Decimal `json:"ticket_medio"`
}

// CompraListResponse lista (mais recente primeiro) com o resumo.
type CompraListResponse struct {
	Items  []CompraResponse `json:"items"`
	Resumo ComprasResumoDTO `json:"resumo"`
}
