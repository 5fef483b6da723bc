package dto

import "github.com/shopspring/decimal"

// CreateIngredienteRequest entrada para cadastrar um ingrediente.
type CreateIngredienteRequest struct {
	Nome        string          `json:"nome" validate:"required,min=1,max=200"`
	PrecoCompra decimal.Decimal `json:"preco_compra" validate:"gt=0"`
	IDUnidade   int             `json:"id_unidade" validate:"omitempty,min=1"`
}

// UpdateIngredienteRequest atualização parcial; campos nil não são enviados.
type UpdateIngredienteRequest struct {
	Nome             *string          `json:"nome,omitempty" validate:"omitempty,min=1,max=200"`
	PrecoCompra      *decimal.Decimal `json:"preco_compra,omitempty" validate:"omitempty,gt=0"`
	DataUltimaCompra *string          `json:"data_ultima_compra,omitempty"`
	IDUnidade        *int             `json:"id_unidade,omitempty" validate:"omitempty,min=1"`
}

// IngredienteResponse saída de um ingrediente.
type IngredienteResponse struct {
	ID               int             `json:"id"`
	Nome             string          `json:"nome"`
	PrecoCompra      decimal.Decimal `json:"preco_compra"`
	DataUltimaCompra string          `json:"data_ultima_compra"` // DD/MM/YYYY ou ""
	IDUnidade        int             `json:"id_unidade"`
}

// IngredientesResumoDTO cartões da tela de ingredientes.
type IngredientesResumoDTO struct {
	Total      int             `json:"total"`
	PrecoMedio decimal.Decimal `json:"preco_medio"`
}

// IngredienteListResponse lista (compra mais recente primeiro) com o resumo.
type IngredienteListResponse struct {
	Items  []IngredienteResponse `json:"items"`
	Resumo IngredientesResumoDTO `json:"resumo"`
}
