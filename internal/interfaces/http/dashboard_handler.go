package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
)

// DashboardHandler atende dashboard, relatório e exportações.
type DashboardHandler struct {
	dashboard *appanalytics.DashboardUseCase
	report    *appanalytics.ReportUseCase
	pdf       ports.ReportPDFGenerator
	xlsx      ports.SalesSpreadsheetGenerator
}

// NewDashboardHandler constrói o handler. pdf e xlsx podem ser nil (rota responde 501).
func NewDashboardHandler(
	dashboard *appanalytics.DashboardUseCase,
	report *appanalytics.ReportUseCase,
	pdf ports.ReportPDFGenerator,
	xlsx ports.SalesSpreadsheetGenerator,
) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, report: report, pdf: pdf, xlsx: xlsx}
}

// GetDashboard godoc
// @Summary      Dashboard do período
// @Description  Cartões do relatório da API e séries (por data, por marmita, por dia da semana) das vendas do período.
// @Description  Sem vendas devolve vazio=true com mensagem, nunca erro.
// @Tags         dashboard
// @Produce      json
// @Param        periodo  query  string  false  "semana | mes | ano"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Build(c.UserContext(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRelatorio godoc
// @Summary      Relatório financeiro
// @Tags         relatorio
// @Produce      json
// @Param        data_inicio  query  string  false  "DD/MM/YYYY ou YYYY-MM-DD"
// @Param        data_fim     query  string  false  "DD/MM/YYYY ou YYYY-MM-DD"
// @Success      200  {object}  dto.RelatorioDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/relatorio [get]
func (h *DashboardHandler) GetRelatorio(c *fiber.Ctx) error {
	var filtro dto.RelatorioFiltro
	if err := c.QueryParser(&filtro); err != nil {
		return badBody(c)
	}
	out, err := h.report.Get(c.UserContext(), filtro)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRelatorioPDF godoc
// @Summary      Relatório financeiro em PDF
// @Tags         relatorio
// @Produce      application/pdf
// @Param        periodo  query  string  false  "semana | mes | ano"
// @Success      200  {file}  binary
// @Router       /api/relatorio/pdf [get]
func (h *DashboardHandler) GetRelatorioPDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return notConfigured(c, "pdf")
	}
	dash, err := h.dashboard.Build(c.UserContext(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	body, err := h.pdf.GenerateReportPDF(c.UserContext(), dash)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", fmt.Sprintf("relatorio-%s.pdf", dash.Periodo), body)
}

// GetRelatorioXLSX godoc
// @Summary      Vendas e séries do período em XLSX
// @Tags         relatorio
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        periodo  query  string  false  "semana | mes | ano"
// @Success      200  {file}  binary
// @Router       /api/relatorio/xlsx [get]
func (h *DashboardHandler) GetRelatorioXLSX(c *fiber.Ctx) error {
	if h.xlsx == nil {
		return notConfigured(c, "xlsx")
	}
	dash, err := h.dashboard.Build(c.UserContext(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	body, err := h.xlsx.GenerateSalesXLSX(c.UserContext(), dash)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("vendas-%s.xlsx", dash.Periodo), body)
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}

func notConfigured(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
		Code: "NOT_CONFIGURED", Message: "exportação " + what + " não configurada",
	})
}
