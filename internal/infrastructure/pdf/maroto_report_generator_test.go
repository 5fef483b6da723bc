package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/pdf"
)

func TestGenerateReportPDF(t *testing.T) {
	dash := &dto.DashboardDTO{
		Periodo:      "mes",
		PeriodoLabel: "Este mês",
		Resumo:       analytics.ReportSummary(nil),
		PorData: []dto.DailyPointDTO{
			{Data: "01/01/2025", Receita: decimal.NewFromInt(15), Quantidade: decimal.NewFromInt(3)},
		},
		VendasRecentes: []dto.VendaResponse{
			{NomeMarmita: "Frango", Data: "01/01/2025", QuantidadeVendida: decimal.NewFromInt(3), ValorTotal: decimal.NewFromInt(15)},
		},
	}

	out, err := pdf.NewMarotoReportGenerator("MarmitaWare").GenerateReportPDF(context.Background(), dash)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "saída deve ser um PDF")
}

func TestGenerateReportPDF_EstadoVazio(t *testing.T) {
	dash := &dto.DashboardDTO{
		Resumo:        analytics.ReportSummary(nil),
		Vazio:         true,
		MensagemVazia: analytics.MensagemSemVendas,
	}
	out, err := pdf.NewMarotoReportGenerator("MarmitaWare").GenerateReportPDF(context.Background(), dash)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateReportPDF_Nil(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator("MarmitaWare").GenerateReportPDF(context.Background(), nil)
	assert.Error(t, err)
}
