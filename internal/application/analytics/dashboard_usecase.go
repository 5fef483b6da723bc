// Package analytics monta as visões de leitura do painel: dashboard e relatório.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
)

const (
	defaultRecentSales = 5
	// MensagemSemVendas estado vazio do dashboard.
	MensagemSemVendas = "Nenhuma venda registrada ainda"
)

// SnapshotSource fornece o snapshot corrente (implementado por *workspace.Loader).
type SnapshotSource interface {
	Current(ctx context.Context) (*workspace.Snapshot, error)
}

// DashboardUseCase gera o dashboard a partir do snapshot em memória.
//
// Cartões: relatório da API, sem recálculo.
// Séries: vendas filtradas pelo período corrente, agregadas em metrics.
type DashboardUseCase struct {
	source        SnapshotSource
	defaultPeriod metrics.Period
	recentSales   int
	now           func() time.Time
}

// DashboardOption ajusta o caso de uso.
type DashboardOption func(*DashboardUseCase)

// WithClock fixa o relógio que ancora o período.
func WithClock(now func() time.Time) DashboardOption {
	return func(uc *DashboardUseCase) { uc.now = now }
}

// WithDefaultPeriod período usado quando a requisição não informa nenhum.
func WithDefaultPeriod(p metrics.Period) DashboardOption {
	return func(uc *DashboardUseCase) { uc.defaultPeriod = p }
}

// WithRecentSales quantidade de vendas recentes exibidas.
func WithRecentSales(n int) DashboardOption {
	return func(uc *DashboardUseCase) {
		if n > 0 {
			uc.recentSales = n
		}
	}
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(source SnapshotSource, opts ...DashboardOption) *DashboardUseCase {
	uc := &DashboardUseCase{
		source:        source,
		defaultPeriod: metrics.PeriodMes,
		recentSales:   defaultRecentSales,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Build monta o DashboardDTO para o período informado ("" usa o padrão).
// Sem vendas o resultado é o estado vazio explícito, nunca erro.
func (uc *DashboardUseCase) Build(ctx context.Context, periodo string) (*dto.DashboardDTO, error) {
	period := uc.defaultPeriod
	if strings.TrimSpace(periodo) != "" {
		p, err := metrics.ParsePeriod(periodo)
		if err != nil {
			return nil, err
		}
		period = p
	}

	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: snapshot: %w", err)
	}

	// ── Janela do período ─────────────────────────────────────────────────────
	filtradas := metrics.FilterByPeriod(snap.Vendas, period, uc.now())
	recentes := metrics.RecentSales(snap.Vendas, uc.recentSales)

	// ── Séries ────────────────────────────────────────────────────────────────
	porData := make([]dto.DailyPointDTO, 0)
	for _, p := range metrics.AggregateByDate(filtradas) {
		porData = append(porData, dto.DailyPointDTO{
			Data: p.Data, DiaSemana: metrics.DiasSemana[p.Dia.Weekday()], Receita: p.Receita, Quantidade: p.Quantidade,
		})
	}
	porMarmita := make([]dto.MealShareDTO, 0)
	for _, m := range metrics.AggregateByMeal(filtradas) {
		porMarmita = append(porMarmita, dto.MealShareDTO{Nome: m.Nome, Quantidade: m.Quantidade, Percentual: m.Percentual})
	}
	semana := metrics.AggregateByWeekday(filtradas)
	dias := make([]dto.WeekdayBucketDTO, 0, len(semana.Dias))
	for _, d := range semana.Dias {
		dias = append(dias, dto.WeekdayBucketDTO{Dia: d.Dia, Marmitas: d.Marmitas})
	}

	out := &dto.DashboardDTO{
		Periodo:         string(period),
		PeriodoLabel:    period.Label(),
		Resumo:          ReportSummary(snap.Relatorio),
		VendasPeriodo:   dto.ToVendasResumo(metrics.SummarizeSales(filtradas)),
		VendasRecentes:  dto.ToVendaResponses(recentes),
		VendasDoPeriodo: dto.ToVendaResponses(metrics.RecentSales(filtradas, len(filtradas))),
		PorData:         porData,
		PorMarmita:      porMarmita,
		PorDiaSemana:    dto.WeekdayDTO{Dias: dias, Tipos: semana.Tipos},
		AtualizadoEm:    snap.CarregadoEm.Format(time.RFC3339),
	}
	if len(snap.Falhas) > 0 {
		out.Falhas = snap.Falhas
	}
	if len(recentes) == 0 {
		out.Vazio = true
		out.MensagemVazia = MensagemSemVendas
	}
	return out, nil
}
