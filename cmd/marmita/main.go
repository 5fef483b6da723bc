// Comando marmita: dashboard de terminal sobre a API do MarmitaWare.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	infraexcel "github.com/marmitaware/marmitaware-bff/internal/infrastructure/excel"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/marmitaapi"
	infrapdf "github.com/marmitaware/marmitaware-bff/internal/infrastructure/pdf"
	"github.com/marmitaware/marmitaware-bff/internal/interfaces/cli"
	"github.com/marmitaware/marmitaware-bff/pkg/config"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, cli.Usage())
		return cli.ExitCode(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if opts.APIURL != "" {
		cfg.API.BaseURL = strings.TrimRight(opts.APIURL, "/")
	}

	// Logs vão para stderr em JSON para não misturar com a saída do comando.
	log := logger.NewWriter(os.Stderr, cfg.App.LogLevel)
	datebr.SetLocation(cfg.App.Location())

	policy := workspace.PerResource
	if opts.Estrito {
		policy = workspace.FailFast
	}
	periodo, err := metrics.ParsePeriod(cfg.Dashboard.DefaultPeriod)
	if err != nil {
		periodo = metrics.PeriodMes
	}

	api := marmitaapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	loader := workspace.NewLoader(api, workspace.WithPolicy(policy), workspace.WithLogger(log))

	app := &cli.App{
		Dashboard: appanalytics.NewDashboardUseCase(loader,
			appanalytics.WithDefaultPeriod(periodo),
			appanalytics.WithRecentSales(cfg.Dashboard.RecentSales),
		),
		Report:   appanalytics.NewReportUseCase(api, loader),
		Marmitas: usecase.NewMarmitaUseCase(api, loader, log),
		PDF:      infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		XLSX:     infraexcel.NewWorkbookGenerator(),
		Out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, opts.Command, opts.Args); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		code := cli.ExitCode(err)
		if code == 2 {
			fmt.Fprint(os.Stderr, cli.Usage())
		}
		return code
	}
	return 0
}
