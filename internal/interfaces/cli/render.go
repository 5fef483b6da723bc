// Package cli renderiza os mesmos DTOs do BFF como texto de terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/pkg/money"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", len([]rune(title))))
}

// RenderDashboard imprime cartões, vendas recentes e séries do período.
func RenderDashboard(w io.Writer, d *dto.DashboardDTO) error {
	fmt.Fprintf(w, "MarmitaWare · %s\n", d.PeriodoLabel)
	for _, recurso := range sortedKeys(d.Falhas) {
		fmt.Fprintf(w, "! %s indisponível: %s\n", recurso, d.Falhas[recurso])
	}
	if err := renderCards(w, d.Resumo); err != nil {
		return err
	}

	section(w, "Vendas recentes")
	if d.Vazio {
		fmt.Fprintln(w, d.MensagemVazia)
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "DATA\tMARMITA\tQTD\tVALOR")
	for _, v := range d.VendasRecentes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dash(v.Data), v.NomeMarmita, money.Number(v.QuantidadeVendida), money.BRL(v.ValorTotal))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(w, "Vendas por data")
	tw = newTable(w)
	fmt.Fprintln(tw, "DATA\tDIA\tQTD\tRECEITA")
	for _, p := range d.PorData {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Data, p.DiaSemana, money.Number(p.Quantidade), money.BRL(p.Receita))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(w, "Por marmita")
	tw = newTable(w)
	for _, m := range d.PorMarmita {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Nome, money.Number(m.Quantidade), money.Percent(m.Percentual))
	}
	return tw.Flush()
}

func renderCards(w io.Writer, r dto.RelatorioDTO) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total em vendas\t%s\n", money.BRL(r.Vendas.ReceitaTotal))
	fmt.Fprintf(tw, "Custo estimado\t%s\n", money.BRL(r.Vendas.CustoProdutosVendidos))
	fmt.Fprintf(tw, "Lucro bruto\t%s\t(%s)\n", money.BRL(r.Lucro.LucroBruto), money.Percent(r.Lucro.MargemLucroBruto))
	fmt.Fprintf(tw, "Total compras\t%s\n", money.BRL(r.Compras.TotalCompras))
	return tw.Flush()
}

// RenderRelatorio imprime o relatório financeiro completo.
func RenderRelatorio(w io.Writer, r dto.RelatorioDTO) error {
	fmt.Fprintf(w, "Relatório financeiro · %s a %s\n", r.Periodo.DataInicio, r.Periodo.DataFim)
	tw := newTable(w)
	fmt.Fprintf(tw, "Receita total\t%s\n", money.BRL(r.Vendas.ReceitaTotal))
	fmt.Fprintf(tw, "Custo dos produtos vendidos\t%s\n", money.BRL(r.Vendas.CustoProdutosVendidos))
	fmt.Fprintf(tw, "Marmitas vendidas\t%s\n", money.Number(r.Vendas.QuantidadeTotal))
	fmt.Fprintf(tw, "Mais vendida\t%s\t(%s)\n", dash(r.Vendas.MarmitaMaisVendida), money.Number(r.Vendas.QuantidadeMaisVendida))
	fmt.Fprintf(tw, "Total de compras\t%s\t(%d)\n", money.BRL(r.Compras.TotalCompras), r.Compras.NumeroCompras)
	fmt.Fprintf(tw, "Lucro bruto\t%s\t(%s)\n", money.BRL(r.Lucro.LucroBruto), money.Percent(r.Lucro.MargemLucroBruto))
	fmt.Fprintf(tw, "Lucro líquido\t%s\t(%s)\n", money.BRL(r.Lucro.LucroLiquido), money.Percent(r.Lucro.MargemLucroLiquido))
	return tw.Flush()
}

// RenderMarmitas imprime o cardápio com preço, custo e margem.
func RenderMarmitas(w io.Writer, l *dto.MarmitaListResponse) error {
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "Nenhuma marmita cadastrada")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tPREÇO\tCUSTO\tMARGEM\tINGREDIENTES")
	for _, m := range l.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Nome, money.BRL(m.PrecoVenda), money.BRL(m.CustoEstimado), money.Percent(m.Margem), dash(m.Ingredientes))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
