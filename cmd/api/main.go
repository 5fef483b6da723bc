package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	infraexcel "github.com/marmitaware/marmitaware-bff/internal/infrastructure/excel"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/marmitaapi"
	infrapdf "github.com/marmitaware/marmitaware-bff/internal/infrastructure/pdf"
	httpRouter "github.com/marmitaware/marmitaware-bff/internal/interfaces/http"
	"github.com/marmitaware/marmitaware-bff/pkg/config"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicação")

	datebr.SetLocation(cfg.App.Location())

	periodo, err := metrics.ParsePeriod(cfg.Dashboard.DefaultPeriod)
	if err != nil {
		log.Warn().Err(err).Msg("DASHBOARD_DEFAULT_PERIOD inválido, usando mes")
		periodo = metrics.PeriodMes
	}

	api := marmitaapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	loader := workspace.NewLoader(api, workspace.WithLogger(log))

	ingredienteUC := usecase.NewIngredienteUseCase(api, loader, log)
	marmitaUC := usecase.NewMarmitaUseCase(api, loader, log)
	vendaUC := usecase.NewVendaUseCase(api, loader, log)
	compraUC := usecase.NewCompraUseCase(api, loader, log)
	dashboardUC := appanalytics.NewDashboardUseCase(loader,
		appanalytics.WithDefaultPeriod(periodo),
		appanalytics.WithRecentSales(cfg.Dashboard.RecentSales),
	)
	reportUC := appanalytics.NewReportUseCase(api, loader)

	// Primeira carga em segundo plano; falhas ficam registradas no snapshot.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout()*2)
		defer cancel()
		if _, err := loader.Current(ctx); err != nil {
			log.Warn().Err(err).Msg("carga inicial do snapshot")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() * 3,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "MarmitaWare API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Health:        api,
		Snapshots:     loader,
		IngredienteUC: ingredienteUC,
		MarmitaUC:     marmitaUC,
		VendaUC:       vendaUC,
		CompraUC:      compraUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		PDF:           infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		XLSX:          infraexcel.NewWorkbookGenerator(),
		Logger:        log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
