package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports/porttest"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

var brt = time.FixedZone("BRT", -3*60*60)

func withBRT(t *testing.T) {
	t.Helper()
	datebr.SetLocation(brt)
	t.Cleanup(func() { datebr.SetLocation(nil) })
}

func newDashboard(api *porttest.FakeBackend, now time.Time) *analytics.DashboardUseCase {
	loader := workspace.NewLoader(api)
	return analytics.NewDashboardUseCase(loader, analytics.WithClock(func() time.Time { return now }))
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboard_EstadoVazio(t *testing.T) {
	api := porttest.New()
	api.Relatorio = &entity.Relatorio{
		Vendas:  &entity.RelatorioVendas{},
		Compras: &entity.RelatorioCompras{},
		Lucro:   &entity.RelatorioLucro{},
	}

	out, err := newDashboard(api, time.Now()).Build(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, out.Vazio)
	assert.Equal(t, "Nenhuma venda registrada ainda", out.MensagemVazia)
	assert.Equal(t, "mes", out.Periodo)

	assert.NotNil(t, out.VendasRecentes)
	assert.Empty(t, out.VendasRecentes)
	assert.NotNil(t, out.PorData)
	assert.NotNil(t, out.PorMarmita)
	assert.NotNil(t, out.PorDiaSemana.Tipos)
	assert.Len(t, out.PorDiaSemana.Dias, 7)
	assert.True(t, out.Resumo.Vendas.ReceitaTotal.IsZero())
}

func TestDashboard_SeriesDoPeriodo(t *testing.T) {
	withBRT(t)
	now := time.Date(2025, time.January, 16, 12, 0, 0, 0, brt) // quinta-feira
	api := porttest.New()
	api.Vendas = []entity.Venda{
		porttest.Venda(1, "2025-01-15", "Frango", 3, 45),
		porttest.Venda(2, "15/01/2025", "Carne", 1, 20),
		porttest.Venda(3, "2024-12-31", "Frango", 9, 135),
		porttest.Venda(4, "", "Frango", 1, 15),
	}
	api.Relatorio = &entity.Relatorio{Vendas: &entity.RelatorioVendas{ReceitaTotal: decimal.NewFromInt(215)}}

	out, err := newDashboard(api, now).Build(context.Background(), "semana")
	require.NoError(t, err)
	assert.False(t, out.Vazio)
	assert.Equal(t, "semana", out.Periodo)

	require.Len(t, out.PorData, 1)
	assert.Equal(t, "15/01/2025", out.PorData[0].Data)
	assert.True(t, decimal.NewFromInt(65).Equal(out.PorData[0].Receita))
	assert.True(t, decimal.NewFromInt(4).Equal(out.PorData[0].Quantidade))

	require.Len(t, out.PorMarmita, 2)
	assert.Equal(t, []string{"Frango", "Carne"}, out.PorDiaSemana.Tipos)
	assert.True(t, decimal.NewFromInt(3).Equal(out.PorDiaSemana.Dias[time.Wednesday].Marmitas["Frango"]))

	assert.True(t, decimal.NewFromInt(215).Equal(out.Resumo.Vendas.ReceitaTotal), "cartões vêm do relatório, não das vendas")
	assert.Len(t, out.VendasRecentes, 3, "vendas recentes ignoram o período mas exigem data válida")
	assert.Equal(t, 2, out.VendasPeriodo.NumeroVendas)
	require.Len(t, out.VendasDoPeriodo, 2, "só vendas da semana, sem a de dezembro nem a sem data")
	for _, v := range out.VendasDoPeriodo {
		assert.Equal(t, "15/01/2025", v.Data)
	}
}

func TestDashboard_PeriodoDesconhecido(t *testing.T) {
	_, err := newDashboard(porttest.New(), time.Now()).Build(context.Background(), "quinzena")
	assert.ErrorIs(t, err, domain.ErrUnknownPeriod)
}

func TestDashboard_FalhaParcialAparece(t *testing.T) {
	api := porttest.New()
	api.Errs["vendas"] = porttest.Unavailable("vendas")

	out, err := newDashboard(api, time.Now()).Build(context.Background(), "ano")
	require.NoError(t, err)
	assert.True(t, out.Vazio)
	assert.Contains(t, out.Falhas, workspace.ResourceVendas)
}

// ── Relatório ────────────────────────────────────────────────────────────────

func TestReportSummary_Nil(t *testing.T) {
	out := analytics.ReportSummary(nil)
	assert.True(t, out.Vendas.ReceitaTotal.IsZero())
	assert.True(t, out.Lucro.LucroBruto.IsZero())
	assert.Equal(t, "Início", out.Periodo.DataInicio)
	assert.Equal(t, 0, out.Compras.NumeroCompras)
}

func TestReportSummary_NaoRecalcula(t *testing.T) {
	// Lucro inconsistente com receita-custo: é repassado como veio.
	out := analytics.ReportSummary(&entity.Relatorio{
		Vendas: &entity.RelatorioVendas{ReceitaTotal: decimal.NewFromInt(100), CustoProdutosVendidos: decimal.NewFromInt(40)},
		Lucro:  &entity.RelatorioLucro{LucroBruto: decimal.NewFromInt(1)},
	})
	assert.True(t, decimal.NewFromInt(1).Equal(out.Lucro.LucroBruto))
	assert.True(t, out.Compras.TotalCompras.IsZero())
}

func TestReportUseCase_Filtro(t *testing.T) {
	api := porttest.New()
	uc := analytics.NewReportUseCase(api, workspace.NewLoader(api))

	_, err := uc.Get(context.Background(), dto.RelatorioFiltro{DataInicio: "01/02/2025", DataFim: "2025-02-28"})
	require.NoError(t, err)
	assert.Equal(t, dto.RelatorioFiltro{DataInicio: "2025-02-01", DataFim: "2025-02-28"}, api.LastFiltro)

	_, err = uc.Get(context.Background(), dto.RelatorioFiltro{DataInicio: "2025-03-01", DataFim: "2025-02-01"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "data_fim")
}

func TestReportUseCase_SemFiltroUsaSnapshot(t *testing.T) {
	api := porttest.New()
	api.Relatorio = &entity.Relatorio{Compras: &entity.RelatorioCompras{NumeroCompras: 4}}
	uc := analytics.NewReportUseCase(api, workspace.NewLoader(api))

	out, err := uc.Get(context.Background(), dto.RelatorioFiltro{})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Compras.NumeroCompras)
	assert.Equal(t, 1, api.CallCount("GET /relatorio"))

	_, err = uc.Get(context.Background(), dto.RelatorioFiltro{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.CallCount("GET /relatorio"), "segunda leitura vem do snapshot")
}
