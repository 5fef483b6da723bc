package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

// SalesSummary cartões da tela de vendas.
type SalesSummary struct {
	TotalVendido    decimal.Decimal
	QuantidadeTotal decimal.Decimal
	NumeroVendas    int
	TicketMedio     decimal.Decimal
}

// PurchasesSummary cartões da tela de compras.
type PurchasesSummary struct {
	TotalGasto    decimal.Decimal
	NumeroCompras int
	TicketMedio   decimal.Decimal
}

// IngredientsSummary cartões da tela de ingredientes.
type IngredientsSummary struct {
	Total      int
	PrecoMedio decimal.Decimal
}

func average(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// SummarizeSales ticket médio = total vendido / número de vendas.
func SummarizeSales(vendas []entity.Venda) SalesSummary {
	s := SalesSummary{TotalVendido: decimal.Zero, QuantidadeTotal: decimal.Zero, NumeroVendas: len(vendas)}
	for _, v := range vendas {
		s.TotalVendido = s.TotalVendido.Add(v.ValorTotal)
		s.QuantidadeTotal = s.QuantidadeTotal.Add(v.QuantidadeVendida)
	}
	s.TicketMedio = average(s.TotalVendido, s.NumeroVendas)
	return s
}

// SummarizePurchases ticket médio = total gasto / número de compras.
func SummarizePurchases(compras []entity.Compra) PurchasesSummary {
	s := PurchasesSummary{TotalGasto: decimal.Zero, NumeroCompras: len(compras)}
	for _, c := range compras {
		s.TotalGasto = s.TotalGasto.Add(c.ValorTotal)
	}
	s.TicketMedio = average(s.TotalGasto, s.NumeroCompras)
	return s
}

// SummarizeIngredients preço médio de compra dos ingredientes cadastrados.
func SummarizeIngredients(ingredientes []entity.Ingrediente) IngredientsSummary {
	total := decimal.Zero
	for _, ing := range ingredientes {
		total = total.Add(ing.PrecoCompra)
	}
	return IngredientsSummary{Total: len(ingredientes), PrecoMedio: average(total, len(ingredientes))}
}

// SortByLastPurchase ordena uma cópia dos ingredientes da compra mais recente para a mais antiga.
// Sem data válida vai para o fim.
func SortByLastPurchase(ingredientes []entity.Ingrediente) []entity.Ingrediente {
	out := make([]entity.Ingrediente, len(ingredientes))
	copy(out, ingredientes)
	key := func(ing entity.Ingrediente) time.Time {
		d, _ := datebr.Parse(ing.DataUltimaCompra)
		return d
	}
	sort.SliceStable(out, func(a, b int) bool { return key(out[a]).After(key(out[b])) })
	return out
}

// SortComprasByDate ordena uma cópia das compras da mais recente para a mais antiga.
func SortComprasByDate(compras []entity.Compra) []entity.Compra {
	out := make([]entity.Compra, len(compras))
	copy(out, compras)
	key := func(c entity.Compra) time.Time {
		d, _ := datebr.Parse(c.Data)
		return d
	}
	sort.SliceStable(out, func(a, b int) bool { return key(out[a]).After(key(out[b])) })
	return out
}
