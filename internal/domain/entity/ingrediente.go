package entity

import "github.com/shopspring/decimal"

// Ingrediente insumo consumido pelas marmitas, com preço unitário de compra.
type Ingrediente struct {
	ID               int
	Nome             string
	PrecoCompra      decimal.Decimal // preço por kg ou unidade
	DataUltimaCompra string          // como recebido da API; normalizado via datebr
	IDUnidade        int
}
