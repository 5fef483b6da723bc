// Package metrics reúne os cálculos puros do painel: filtro por período,
// agregações de vendas e custo/margem de marmitas.
//
// Nenhuma função daqui retorna erro por dado malformado: datas inválidas
// ficam de fora e números ausentes contam como zero.
package metrics

import (
	"fmt"
	"strings"
	"time"

	jnow "github.com/jinzhu/now"

	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

// Period seletor de período do painel.
type Period string

const (
	PeriodSemana Period = "semana"
	PeriodMes    Period = "mes"
	PeriodAno    Period = "ano"
)

var periodAliases = map[string]Period{
	"semana": PeriodSemana,
	"week":   PeriodSemana,
	"mes":    PeriodMes,
	"mês":    PeriodMes,
	"month":  PeriodMes,
	"ano":    PeriodAno,
	"year":   PeriodAno,
}

// ParsePeriod aceita os nomes em português e os aliases em inglês (week/month/year).
func ParsePeriod(s string) (Period, error) {
	p, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("metrics: %q: %w", s, domain.ErrUnknownPeriod)
	}
	return p, nil
}

// Label nome de exibição do período.
func (p Period) Label() string {
	switch p {
	case PeriodSemana:
		return "Esta semana"
	case PeriodMes:
		return "Este mês"
	case PeriodAno:
		return "Este ano"
	default:
		return string(p)
	}
}

// Bounds devolve o intervalo [inicio, fim) do período corrente ancorado em now.
// Semana: do domingo mais recente até hoje, inclusive. Mês e ano: o calendário inteiro.
func (p Period) Bounds(now time.Time) (inicio, fim time.Time) {
	today := datebr.Today(now)
	cal := (&jnow.Config{WeekStartDay: time.Sunday, TimeLocation: datebr.Location()}).With(today)

	switch p {
	case PeriodSemana:
		return cal.BeginningOfWeek(), today.AddDate(0, 0, 1)
	case PeriodAno:
		inicio = cal.BeginningOfYear()
		return inicio, inicio.AddDate(1, 0, 0)
	default:
		inicio = cal.BeginningOfMonth()
		return inicio, inicio.AddDate(0, 1, 0)
	}
}

// FilterByPeriod devolve as vendas cuja data normalizada cai no período corrente.
// Vendas com data ilegível são descartadas sem erro. O resultado nunca é nil.
func FilterByPeriod(vendas []entity.Venda, p Period, now time.Time) []entity.Venda {
	inicio, fim := p.Bounds(now)
	out := make([]entity.Venda, 0, len(vendas))
	for _, v := range vendas {
		d, ok := datebr.Parse(v.RawDate())
		if !ok {
			continue
		}
		if d.Before(inicio) || !d.Before(fim) {
			continue
		}
		out = append(out, v)
	}
	return out
}
