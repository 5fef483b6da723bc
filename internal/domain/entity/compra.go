package entity

import "github.com/shopspring/decimal"

// Compra reposição de um ou mais ingredientes com os preços pagos.
type Compra struct {
	ID                 int
	ValorTotal         decimal.Decimal
	Data               string
	IngredientesPrecos map[int]decimal.Decimal // id_ingrediente -> preço pago
}
