package dto

import "github.com/shopspring/decimal"

// CreateMarmitaRequest entrada para cadastrar uma marmita.
// IngredientesQuantidades: id_ingrediente -> quantidade usada na receita.
type CreateMarmitaRequest struct {
	Nome                    string                  `json:"nome" validate:"required,min=1,max=200"`
	PrecoVenda              decimal.Decimal         `json:"preco_venda" validate:"gt=0"`
	IngredientesQuantidades map[int]decimal.Decimal `json:"ingredientes_quantidades" validate:"required,min=1,dive,keys,min=1,endkeys,gt=0"`
}

// UpdateMarmitaRequest atualização parcial.
type UpdateMarmitaRequest struct {
	Nome                    *string                 `json:"nome,omitempty" validate:"omitempty,min=1,max=200"`
	PrecoVenda              *decimal.Decimal        `json:"preco_venda,omitempty" validate:"omitempty,gt=0"`
	IngredientesQuantidades map[int]decimal.Decimal `json:"ingredientes_quantidades,omitempty" validate:"omitempty,min=1,dive,keys,min=1,endkeys,gt=0"`
}

// MarmitaResponse saída de uma marmita. Margem usa o custo calculado pela API.
type MarmitaResponse struct {
	ID                      int                     `json:"id"`
	Nome                    string                  `json:"nome"`
	PrecoVenda              decimal.Decimal         `json:"preco_venda"`
	CustoEstimado           decimal.Decimal         `json:"custo_estimado"`
	Margem                  decimal.Decimal         `json:"margem"`
	Ingredientes            string                  `json:"ingredientes"`
	IngredientesQuantidades map[int]decimal.Decimal `json:"ingredientes_quantidades"`
}

// MarmitaListResponse lista de marmitas.
type MarmitaListResponse struct {
	Items []MarmitaResponse `json:"items"`
	Total int               `json:"total"`
}

// CostPreviewRequest composição em edição, para recalcular custo e margem.
type CostPreviewRequest struct {
	IngredientesQuantidades map[int]decimal.Decimal `json:"ingredientes_quantidades"`
	PrecoVenda              decimal.Decimal         `json:"preco_venda"`
}

// CostPreviewResponse custo estimado com os preços em cache; não substitui o custo da API.
type CostPreviewResponse struct {
	CustoEstimado decimal.Decimal `json:"custo_estimado"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	Margem        decimal.Decimal `json:"margem"`
	IgnoradosIDs  []int           `json:"ignorados_ids"`
}
