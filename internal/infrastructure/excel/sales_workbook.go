// Package excel exporta vendas e séries do dashboard para XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
)

// Nomes das planilhas geradas.
const (
	SheetVendas     = "Vendas"
	SheetPorData    = "Por Data"
	SheetPorMarmita = "Por Marmita"
)

var _ ports.SalesSpreadsheetGenerator = (*WorkbookGenerator)(nil)

// WorkbookGenerator implementa ports.SalesSpreadsheetGenerator com excelize.
type WorkbookGenerator struct{}

// NewWorkbookGenerator constrói o gerador.
func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// GenerateSalesXLSX escreve três planilhas do mesmo período: vendas, série diária e
// participação por marmita. dash nil gera só os cabeçalhos.
func (g *WorkbookGenerator) GenerateSalesXLSX(_ context.Context, dash *dto.DashboardDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetVendas); err != nil {
		return nil, fmt.Errorf("excel: renomear planilha: %w", err)
	}
	for _, name := range []string{SheetPorData, SheetPorMarmita} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: criar planilha %q: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	// ── Vendas ────────────────────────────────────────────────────────────────
	var vendas []dto.VendaResponse
	if dash != nil {
		vendas = dash.VendasDoPeriodo
	}
	rows := make([][]any, 0, len(vendas))
	for _, v := range vendas {
		nome := v.NomeMarmita
		if nome == "" {
			nome = "Sem nome"
		}
		rows = append(rows, []any{v.ID, v.Data, nome, v.QuantidadeVendida.InexactFloat64(), v.ValorTotal.InexactFloat64()})
	}
	if err := writeTable(f, SheetVendas, bold, []any{"ID", "Data", "Marmita", "Quantidade", "Valor"}, rows); err != nil {
		return nil, err
	}

	// ── Séries ────────────────────────────────────────────────────────────────
	var porData, porMarmita [][]any
	if dash != nil {
		for _, p := range dash.PorData {
			porData = append(porData, []any{p.Data, p.Quantidade.InexactFloat64(), p.Receita.InexactFloat64()})
		}
		for _, m := range dash.PorMarmita {
			porMarmita = append(porMarmita, []any{m.Nome, m.Quantidade.InexactFloat64(), m.Percentual.InexactFloat64()})
		}
	}
	if err := writeTable(f, SheetPorData, bold, []any{"Data", "Quantidade", "Receita"}, porData); err != nil {
		return nil, err
	}
	if err := writeTable(f, SheetPorMarmita, bold, []any{"Marmita", "Quantidade", "Percentual"}, porMarmita); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: gravar: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTable grava cabeçalho em negrito na linha 1 e os dados a partir da linha 2.
func writeTable(f *excelize.File, sheet string, headerStyle int, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel: %s: cabeçalho: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("excel: %s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("excel: %s: estilo: %w", sheet, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel: %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("excel: %s: linha %d: %w", sheet, i+2, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
