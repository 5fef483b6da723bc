package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
)

// ErrUsage comando ou argumentos inválidos.
var ErrUsage = errors.New("uso inválido")

const usage = `uso: marmita [--estrito] [--api URL] <comando> [argumentos]

comandos:
  dashboard [semana|mes|ano]              cartões, vendas recentes e séries do período
  relatorio [--inicio DATA] [--fim DATA]  relatório financeiro
  marmitas                                cardápio com custo e margem
  exportar <arquivo.pdf|arquivo.xlsx> [--periodo mes]
`

// Options flags globais, lidas antes do comando.
type Options struct {
	Estrito bool   // falha na primeira leitura com erro em vez de degradar
	APIURL  string // sobrescreve MARMITA_API_URL
	Command string
	Args    []string
}

// ParseArgs separa flags globais, comando e argumentos do comando.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	fs := pflag.NewFlagSet("marmita", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.Estrito, "estrito", false, "falhar se qualquer leitura da API falhar")
	fs.StringVar(&opts.APIURL, "api", "", "URL base da API externa")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return opts, ErrUsage
	}
	opts.Command, opts.Args = rest[0], rest[1:]
	return opts, nil
}

// Usage devolve o texto de ajuda.
func Usage() string { return usage }

// App executa os comandos sobre os mesmos casos de uso do BFF.
type App struct {
	Dashboard *appanalytics.DashboardUseCase
	Report    *appanalytics.ReportUseCase
	Marmitas  *usecase.MarmitaUseCase
	PDF       ports.ReportPDFGenerator
	XLSX      ports.SalesSpreadsheetGenerator
	Out       io.Writer
}

// Run despacha o comando.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "dashboard":
		return a.runDashboard(ctx, args)
	case "relatorio":
		return a.runRelatorio(ctx, args)
	case "marmitas":
		list, err := a.Marmitas.List(ctx)
		if err != nil {
			return err
		}
		return RenderMarmitas(a.Out, list)
	case "exportar":
		return a.runExportar(ctx, args)
	case "ajuda", "help":
		_, err := io.WriteString(a.Out, usage)
		return err
	default:
		return fmt.Errorf("%w: comando desconhecido %q", ErrUsage, command)
	}
}

func (a *App) runDashboard(ctx context.Context, args []string) error {
	periodo := ""
	if len(args) > 0 {
		periodo = args[0]
	}
	d, err := a.Dashboard.Build(ctx, periodo)
	if err != nil {
		return err
	}
	return RenderDashboard(a.Out, d)
}

func (a *App) runRelatorio(ctx context.Context, args []string) error {
	var filtro dto.RelatorioFiltro
	fs := pflag.NewFlagSet("relatorio", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&filtro.DataInicio, "inicio", "", "data inicial (DD/MM/YYYY)")
	fs.StringVar(&filtro.DataFim, "fim", "", "data final (DD/MM/YYYY)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	r, err := a.Report.Get(ctx, filtro)
	if err != nil {
		return err
	}
	return RenderRelatorio(a.Out, r)
}

func (a *App) runExportar(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("exportar", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	periodo := fs.String("periodo", "", "semana | mes | ano")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: exportar precisa do arquivo de destino", ErrUsage)
	}
	path := fs.Arg(0)

	d, err := a.Dashboard.Build(ctx, *periodo)
	if err != nil {
		return err
	}
	var body []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		body, err = a.PDF.GenerateReportPDF(ctx, d)
	case ".xlsx":
		body, err = a.XLSX.GenerateSalesXLSX(ctx, d)
	default:
		return fmt.Errorf("%w: extensão deve ser .pdf ou .xlsx", ErrUsage)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("exportar: gravar %s: %w", path, err)
	}
	fmt.Fprintf(a.Out, "Exportado para %s\n", path)
	return nil
}

// ExitCode mapeia erros para o código de saída do processo.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errors.Is(err, domain.ErrServerUnavailable):
		return 3
	default:
		return 1
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
