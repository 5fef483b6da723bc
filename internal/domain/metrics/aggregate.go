package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

// NomeSemNome rótulo usado quando a venda não traz o nome da marmita.
const NomeSemNome = "Sem nome"

// DiasSemana rótulos dos buckets semanais, indexados por time.Weekday.
var DiasSemana = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// DailyPoint totais de um dia.
type DailyPoint struct {
	Data       string // DD/MM/YYYY
	Dia        time.Time
	Receita    decimal.Decimal
	Quantidade decimal.Decimal
}

// MealShare total vendido de uma marmita e sua fatia no total.
type MealShare struct {
	Nome       string
	Quantidade decimal.Decimal
	Percentual decimal.Decimal
}

// WeekdayBucket quantidades por marmita num dia da semana. Marmitas é esparso.
type WeekdayBucket struct {
	Dia      string
	Marmitas map[string]decimal.Decimal
}

// WeekdayBreakdown soma em dois níveis (dia da semana, marmita) para o gráfico empilhado.
type WeekdayBreakdown struct {
	Dias  [7]WeekdayBucket
	Tipos []string // nomes distintos, na ordem em que aparecem
}

func mealName(v entity.Venda) string {
	if n := strings.TrimSpace(v.NomeMarmita); n != "" {
		return n
	}
	return NomeSemNome
}

// AggregateByDate soma receita e quantidade por dia, em ordem cronológica.
// Uma venda com data válida cria o bucket do dia mesmo com quantidade zero.
func AggregateByDate(vendas []entity.Venda) []DailyPoint {
	idx := make(map[string]int)
	out := make([]DailyPoint, 0)
	for _, v := range vendas {
		d, ok := datebr.Parse(v.RawDate())
		if !ok {
			continue
		}
		key := d.Format(datebr.LayoutBR)
		i, seen := idx[key]
		if !seen {
			i = len(out)
			idx[key] = i
			out = append(out, DailyPoint{Data: key, Dia: d, Receita: decimal.Zero, Quantidade: decimal.Zero})
		}
		out[i].Receita = out[i].Receita.Add(v.ValorTotal)
		out[i].Quantidade = out[i].Quantidade.Add(v.QuantidadeVendida)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Dia.Before(out[b].Dia) })
	return out
}

// AggregateByMeal soma a quantidade vendida por marmita, na ordem em que aparecem.
func AggregateByMeal(vendas []entity.Venda) []MealShare {
	idx := make(map[string]int)
	out := make([]MealShare, 0)
	total := decimal.Zero
	for _, v := range vendas {
		nome := mealName(v)
		i, seen := idx[nome]
		if !seen {
			i = len(out)
			idx[nome] = i
			out = append(out, MealShare{Nome: nome, Quantidade: decimal.Zero, Percentual: decimal.Zero})
		}
		out[i].Quantidade = out[i].Quantidade.Add(v.QuantidadeVendida)
		total = total.Add(v.QuantidadeVendida)
	}
	if total.IsPositive() {
		for i := range out {
			out[i].Percentual = out[i].Quantidade.Div(total).Mul(hundred).Round(2)
		}
	}
	return out
}

// AggregateByWeekday soma a quantidade por dia da semana e marmita.
// Os sete dias sempre aparecem; marmitas fora da janela nunca aparecem.
func AggregateByWeekday(vendas []entity.Venda) WeekdayBreakdown {
	var out WeekdayBreakdown
	for i, dia := range DiasSemana {
		out.Dias[i] = WeekdayBucket{Dia: dia, Marmitas: make(map[string]decimal.Decimal)}
	}
	out.Tipos = make([]string, 0)
	seen := make(map[string]struct{})

	for _, v := range vendas {
		d, ok := datebr.Parse(v.RawDate())
		if !ok {
			continue
		}
		nome := mealName(v)
		bucket := out.Dias[d.Weekday()].Marmitas
		bucket[nome] = bucket[nome].Add(v.QuantidadeVendida)
		if _, ok := seen[nome]; !ok {
			seen[nome] = struct{}{}
			out.Tipos = append(out.Tipos, nome)
		}
	}
	return out
}

// RecentSales devolve as n vendas mais recentes com data válida, da mais nova para a mais antiga.
// Empates mantêm a ordem de entrada.
func RecentSales(vendas []entity.Venda, n int) []entity.Venda {
	type dated struct {
		venda entity.Venda
		dia   time.Time
	}
	validas := make([]dated, 0, len(vendas))
	for _, v := range vendas {
		if d, ok := datebr.Parse(v.RawDate()); ok {
			validas = append(validas, dated{venda: v, dia: d})
		}
	}
	sort.SliceStable(validas, func(a, b int) bool { return validas[a].dia.After(validas[b].dia) })

	if n < 0 {
		n = 0
	}
	if n > len(validas) {
		n = len(validas)
	}
	out := make([]entity.Venda, 0, n)
	for _, d := range validas[:n] {
		out = append(out, d.venda)
	}
	return out
}
