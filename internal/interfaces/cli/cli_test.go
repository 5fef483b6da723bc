package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports/porttest"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/excel"
	"github.com/marmitaware/marmitaware-bff/internal/interfaces/cli"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

type stubPDF struct{}

func (stubPDF) GenerateReportPDF(context.Context, *dto.DashboardDTO) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func newApp(api *porttest.FakeBackend, out *bytes.Buffer) *cli.App {
	clock := func() time.Time { return time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC) }
	loader := workspace.NewLoader(api, workspace.WithClock(clock))
	return &cli.App{
		Dashboard: appanalytics.NewDashboardUseCase(loader, appanalytics.WithClock(clock)),
		Report:    appanalytics.NewReportUseCase(api, loader),
		Marmitas:  usecase.NewMarmitaUseCase(api, loader, logger.Nop()),
		PDF:       stubPDF{},
		XLSX:      excel.NewWorkbookGenerator(),
		Out:       out,
	}
}

func TestParseArgs(t *testing.T) {
	opts, err := cli.ParseArgs([]string{"--estrito", "dashboard", "semana"})
	require.NoError(t, err)
	assert.True(t, opts.Estrito)
	assert.Equal(t, "dashboard", opts.Command)
	assert.Equal(t, []string{"semana"}, opts.Args)

	_, err = cli.ParseArgs(nil)
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestDashboard_EstadoVazio(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(porttest.New(), &out).Run(context.Background(), "dashboard", nil))
	assert.Contains(t, out.String(), appanalytics.MensagemSemVendas)
	assert.Contains(t, out.String(), "Este mês")
}

func TestDashboard_ComVendas(t *testing.T) {
	api := porttest.New()
	api.Vendas = []entity.Venda{porttest.Venda(1, "2025-03-10", "Frango", 2, 30)}

	var out bytes.Buffer
	require.NoError(t, newApp(api, &out).Run(context.Background(), "dashboard", []string{"semana"}))
	s := out.String()
	assert.Contains(t, s, "10/03/2025")
	assert.Contains(t, s, "Seg")
	assert.Contains(t, s, "Frango")
	assert.NotContains(t, s, appanalytics.MensagemSemVendas)
}

func TestDashboard_PeriodoInvalido(t *testing.T) {
	var out bytes.Buffer
	err := newApp(porttest.New(), &out).Run(context.Background(), "dashboard", []string{"decada"})
	assert.ErrorIs(t, err, domain.ErrUnknownPeriod)
}

func TestMarmitas(t *testing.T) {
	api := porttest.New()
	api.Marmitas = []entity.Marmita{{ID: 1, Nome: "Fit", PrecoVenda: decimal.NewFromInt(20), CustoEstimado: decimal.NewFromInt(5)}}

	var out bytes.Buffer
	require.NoError(t, newApp(api, &out).Run(context.Background(), "marmitas", nil))
	assert.Contains(t, out.String(), "Fit")
	assert.Contains(t, out.String(), "75,0%")
}

func TestRelatorio_FiltroRepassado(t *testing.T) {
	api := porttest.New()
	var out bytes.Buffer
	require.NoError(t, newApp(api, &out).Run(context.Background(), "relatorio", []string{"--inicio", "01/03/2025"}))
	assert.Equal(t, "2025-03-01", api.LastFiltro.DataInicio)
	assert.Contains(t, out.String(), "Relatório financeiro")
}

func TestExportarPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.pdf")
	var out bytes.Buffer
	require.NoError(t, newApp(porttest.New(), &out).Run(context.Background(), "exportar", []string{path}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(raw))
}

func TestExportarXLSX_SoVendasDoPeriodo(t *testing.T) {
	api := porttest.New()
	api.Vendas = []entity.Venda{
		porttest.Venda(1, "2025-03-10", "Frango", 2, 30),
		porttest.Venda(2, "2001-01-01", "Carne", 1, 18),
		porttest.Venda(3, "2025-03-11", "Frango", 1, 15),
	}
	path := filepath.Join(t.TempDir(), "vendas.xlsx")
	var out bytes.Buffer
	require.NoError(t, newApp(api, &out).Run(context.Background(), "exportar", []string{"--periodo", "mes", path}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetVendas)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "11/03/2025", rows[1][1], "mais recente primeiro")
	assert.Equal(t, "10/03/2025", rows[2][1])
	for _, r := range rows {
		assert.NotContains(t, r, "01/01/2001")
	}
}

func TestExportar_ExtensaoInvalida(t *testing.T) {
	var out bytes.Buffer
	err := newApp(porttest.New(), &out).Run(context.Background(), "exportar", []string{"saida.csv"})
	assert.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, 2, cli.ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 3, cli.ExitCode(porttest.Unavailable("vendas")))
	assert.Equal(t, 2, cli.ExitCode(cli.ErrUsage))
}
