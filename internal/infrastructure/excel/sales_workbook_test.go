package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/excel"
)

func TestGenerateSalesXLSX(t *testing.T) {
	dash := &dto.DashboardDTO{
		VendasDoPeriodo: []dto.VendaResponse{
			{ID: 1, Data: "02/01/2025", NomeMarmita: "Frango", QuantidadeVendida: decimal.NewFromInt(2), ValorTotal: decimal.NewFromInt(30)},
			{ID: 2, Data: "", NomeMarmita: "", QuantidadeVendida: decimal.NewFromInt(1), ValorTotal: decimal.NewFromInt(15)},
		},
		PorData:    []dto.DailyPointDTO{{Data: "02/01/2025", Quantidade: decimal.NewFromInt(2), Receita: decimal.NewFromInt(30)}},
		PorMarmita: []dto.MealShareDTO{{Nome: "Frango", Quantidade: decimal.NewFromInt(2), Percentual: decimal.NewFromInt(100)}},
	}

	out, err := excel.NewWorkbookGenerator().GenerateSalesXLSX(context.Background(), dash)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SheetVendas, excel.SheetPorData, excel.SheetPorMarmita}, f.GetSheetList())

	rows, err := f.GetRows(excel.SheetVendas)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Data", "Marmita", "Quantidade", "Valor"}, rows[0])
	assert.Equal(t, "Frango", rows[1][2])
	assert.Equal(t, "30", rows[1][4])
	assert.Equal(t, "Sem nome", rows[2][2])

	porMarmita, err := f.GetRows(excel.SheetPorMarmita)
	require.NoError(t, err)
	require.Len(t, porMarmita, 2)
	assert.Equal(t, "100", porMarmita[1][2])
}

func TestGenerateSalesXLSX_SemDashboard(t *testing.T) {
	out, err := excel.NewWorkbookGenerator().GenerateSalesXLSX(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{excel.SheetVendas, excel.SheetPorData} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, "só o cabeçalho")
	}
}
