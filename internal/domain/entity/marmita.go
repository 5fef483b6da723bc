package entity

import "github.com/shopspring/decimal"

// Marmita produto vendido como unidade (receita do cardápio).
// CustoEstimado é calculado pela API; o cliente só recalcula para pré-visualização.
type Marmita struct {
	ID                      int
	Nome                    string
	PrecoVenda              decimal.Decimal
	CustoEstimado           decimal.Decimal
	Ingredientes            string                  // nomes separados por vírgula, quando a API envia
	IngredientesQuantidades map[int]decimal.Decimal // id_ingrediente -> quantidade
}
