package ports

import (
	"context"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
)

// ReportPDFGenerator gera o relatório financeiro em PDF a partir do dashboard montado.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, dash *dto.DashboardDTO) ([]byte, error)
}

// SalesSpreadsheetGenerator exporta as vendas e as séries do período do dashboard em XLSX.
type SalesSpreadsheetGenerator interface {
	GenerateSalesXLSX(ctx context.Context, dash *dto.DashboardDTO) ([]byte, error)
}
