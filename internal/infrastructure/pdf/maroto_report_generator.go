// Package pdf gera o relatório financeiro do MarmitaWare em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + período         │  gerado em             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CARTÕES: Vendas | Custo | Lucro | Compras                  │
//	│  RESUMO FINANCEIRO: margens, mais vendida, nº de compras    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: vendas por data (Data | Quantidade | Receita)      │
//	│  TABELA: vendas recentes                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/pkg/money"
)

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 16, Green: 150, Blue: 90}
	colorRed     = &props.Color{Red: 200, Green: 50, Blue: 50}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator com Maroto v2.
type MarotoReportGenerator struct {
	appName string
	now     func() time.Time
}

// NewMarotoReportGenerator constrói o gerador. appName vai no cabeçalho e nos metadados.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName, now: time.Now}
}

// GenerateReportPDF gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, dash *dto.DashboardDTO) ([]byte, error) {
	if dash == nil {
		return nil, fmt.Errorf("pdf: dashboard vazio")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, dash, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statCardsRow(dash.Resumo))
	m.AddRows(resumoRows(dash.Resumo)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Vendas por data (" + dash.PeriodoLabel + ")"))
	m.AddRows(tableHeaderRow("Data", "Quantidade", "Receita"))
	for _, p := range dash.PorData {
		m.AddRows(tableRow(p.Data, money.Number(p.Quantidade), money.BRL(p.Receita)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("Vendas recentes"))
	if dash.Vazio {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(dash.MensagemVazia, props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	} else {
		m.AddRows(tableHeaderRow("Data", "Marmita", "Valor"))
		for _, v := range dash.VendasRecentes {
			m.AddRows(tableRow(v.Data, v.NomeMarmita+" ×"+money.Number(v.QuantidadeVendida), money.BRL(v.ValorTotal)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título + período (esq) e data de geração (dir).
func headerRow(appName string, dash *dto.DashboardDTO, now time.Time) core.Row {
	periodo := fmt.Sprintf("Período do relatório: %s a %s", dash.Resumo.Periodo.DataInicio, dash.Resumo.Periodo.DataFim)
	return row.New(18).Add(
		col.New(8).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(periodo, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// statCardsRow: os quatro cartões do dashboard.
func statCardsRow(r dto.RelatorioDTO) core.Row {
	card := func(title, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(title, props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: c, Align: align.Center, Top: 8}),
		)
	}
	lucroColor := colorGreen
	if r.Lucro.LucroBruto.IsNegative() {
		lucroColor = colorRed
	}
	return row.New(20).Add(
		card("Total em Vendas", money.BRL(r.Vendas.ReceitaTotal), colorPrimary),
		card("Custo Estimado", money.BRL(r.Vendas.CustoProdutosVendidos), colorRed),
		card("Lucro Bruto", money.BRL(r.Lucro.LucroBruto), lucroColor),
		card("Total Compras", money.BRL(r.Compras.TotalCompras), colorGray),
	)
}

// resumoRows: linhas rótulo/valor do resumo financeiro.
func resumoRows(r dto.RelatorioDTO) []core.Row {
	mais := r.Vendas.MarmitaMaisVendida
	if mais == "" {
		mais = "—"
	}
	pairs := [][2]string{
		{"Marmitas vendidas", money.Number(r.Vendas.QuantidadeTotal)},
		{"Mais vendida", fmt.Sprintf("%s (%s)", mais, money.Number(r.Vendas.QuantidadeMaisVendida))},
		{"Número de compras", fmt.Sprintf("%d", r.Compras.NumeroCompras)},
		{"Lucro líquido", money.BRL(r.Lucro.LucroLiquido)},
		{"Margem bruta", money.Percent(r.Lucro.MargemLucroBruto)},
		{"Margem líquida", money.Percent(r.Lucro.MargemLucroLiquido)},
	}
	rows := []core.Row{sectionTitle("Resumo financeiro")}
	for _, p := range pairs {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(p[0], props.Text{Size: 8, Color: colorGray, Left: 2})),
			col.New(6).Add(text.New(p[1], props.Text{Size: 8, Align: align.Right, Right: 2})),
		))
	}
	return rows
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(a, b, c string) core.Row {
	h := func(label string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(h(a, 3, align.Left), h(b, 5, align.Left), h(c, 4, align.Right))
}

func tableRow(a, b, c string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(a, props.Text{Size: 8, Left: 1})),
		col.New(5).Add(text.New(b, props.Text{Size: 8, Left: 1})),
		col.New(4).Add(text.New(c, props.Text{Size: 8, Align: align.Right, Right: 1})),
	)
}
