package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Health        ports.HealthAPI
	Snapshots     snapshotStore
	IngredienteUC *usecase.IngredienteUseCase
	MarmitaUC     *usecase.MarmitaUseCase
	VendaUC       *usecase.VendaUseCase
	CompraUC      *usecase.CompraUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	PDF           ports.ReportPDFGenerator
	XLSX          ports.SalesSpreadsheetGenerator
	Logger        *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestID(), RequestLogger(deps.Logger))

	healthHandler := NewHealthHandler(deps.Health, deps.Snapshots)
	api.Get("/health", healthHandler.Health)
	api.Post("/recarregar", healthHandler.Reload)

	// Dashboard, relatório e exportações
	dashHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.PDF, deps.XLSX)
	api.Get("/dashboard", dashHandler.GetDashboard)
	api.Get("/relatorio", dashHandler.GetRelatorio)
	api.Get("/relatorio/pdf", dashHandler.GetRelatorioPDF)
	api.Get("/relatorio/xlsx", dashHandler.GetRelatorioXLSX)

	// Ingredientes
	ingredientes := api.Group("/ingredientes")
	ingHandler := NewIngredienteHandler(deps.IngredienteUC)
	ingredientes.Get("/", ingHandler.List)
	ingredientes.Post("/", ingHandler.Create)
	ingredientes.Get("/:id", ingHandler.GetByID)
	ingredientes.Put("/:id", ingHandler.Update)
	ingredientes.Delete("/:id", ingHandler.Delete)

	// Marmitas (a prévia de custo vem antes de /:id)
	marmitas := api.Group("/marmitas")
	marHandler := NewMarmitaHandler(deps.MarmitaUC)
	marmitas.Post("/custo", marHandler.PreviewCost)
	marmitas.Get("/", marHandler.List)
	marmitas.Post("/", marHandler.Create)
	marmitas.Get("/:id", marHandler.GetByID)
	marmitas.Put("/:id", marHandler.Update)
	marmitas.Delete("/:id", marHandler.Delete)

	// Vendas
	vendas := api.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendas.Get("/", vendaHandler.List)
	vendas.Post("/", vendaHandler.Create)
	vendas.Get("/:id", vendaHandler.GetByID)
	vendas.Put("/:id", vendaHandler.Update)
	vendas.Delete("/:id", vendaHandler.Delete)

	// Compras
	compras := api.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Get("/", compraHandler.List)
	compras.Post("/", compraHandler.Create)
	compras.Get("/:id", compraHandler.GetByID)
	compras.Put("/:id", compraHandler.Update)
	compras.Delete("/:id", compraHandler.Delete)
}
