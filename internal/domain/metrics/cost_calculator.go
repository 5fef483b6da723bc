package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// EstimateCost implementa o custo de uma composição (serviço de domínio).
// Custo = Σ(quantidade × preço_compra) só para ids presentes no mapa E na lista; os demais são ignorados.
// O mesmo cálculo serve para mapas id -> preço quando cada ingrediente conta como uma unidade.
func EstimateCost(composition map[int]decimal.Decimal, ingredientes []entity.Ingrediente) decimal.Decimal {
	if len(composition) == 0 || len(ingredientes) == 0 {
		return decimal.Zero
	}
	precos := make(map[int]decimal.Decimal, len(ingredientes))
	for _, ing := range ingredientes {
		precos[ing.ID] = ing.PrecoCompra
	}
	total := decimal.Zero
	for id, qtd := range composition {
		preco, ok := precos[id]
		if !ok {
			continue
		}
		total = total.Add(qtd.Mul(preco))
	}
	return total
}

// MarginPercent margem = (preço − custo) / preço × 100; zero quando preço <= 0.
func MarginPercent(precoVenda, custo decimal.Decimal) decimal.Decimal {
	if !precoVenda.IsPositive() {
		return decimal.Zero
	}
	return precoVenda.Sub(custo).Div(precoVenda).Mul(hundred).Round(2)
}

// CostPreview resultado da pré-visualização de custo durante a edição de uma receita.
type CostPreview struct {
	CustoEstimado decimal.Decimal
	PrecoVenda    decimal.Decimal
	Margem        decimal.Decimal
	IgnoradosIDs  []int // ids do mapa sem ingrediente correspondente no cache
}

// PreviewCost combina EstimateCost e MarginPercent e informa os ids ignorados.
func PreviewCost(composition map[int]decimal.Decimal, ingredientes []entity.Ingrediente, precoVenda decimal.Decimal) CostPreview {
	conhecidos := make(map[int]struct{}, len(ingredientes))
	for _, ing := range ingredientes {
		conhecidos[ing.ID] = struct{}{}
	}
	ignorados := make([]int, 0)
	for id := range composition {
		if _, ok := conhecidos[id]; !ok {
			ignorados = append(ignorados, id)
		}
	}
	sort.Ints(ignorados)

	custo := EstimateCost(composition, ingredientes)
	return CostPreview{
		CustoEstimado: custo.Round(2),
		PrecoVenda:    precoVenda,
		Margem:        MarginPercent(precoVenda, custo),
		IgnoradosIDs:  ignorados,
	}
}

// MealMargin margem de uma marmita já salva, usando o custo autoritativo da API.
func MealMargin(m entity.Marmita) decimal.Decimal {
	return MarginPercent(m.PrecoVenda, m.CustoEstimado)
}
