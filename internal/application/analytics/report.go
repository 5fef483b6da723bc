package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

// ReportSummary lê o relatório da API campo a campo, com zero para o que faltar.
// Nenhum total é recalculado aqui: receita, custo e lucro são confiados à API.
func ReportSummary(r *entity.Relatorio) dto.RelatorioDTO {
	out := dto.RelatorioDTO{
		Periodo: dto.RelatorioPeriodoDTO{DataInicio: "Início", DataFim: "Fim"},
		Vendas: dto.RelatorioVendasDTO{
			ReceitaTotal:          decimal.Zero,
			CustoProdutosVendidos: decimal.Zero,
			QuantidadeTotal:       decimal.Zero,
			QuantidadeMaisVendida: decimal.Zero,
		},
		Compras: dto.RelatorioComprasDTO{TotalCompras: decimal.Zero},
		Lucro: dto.RelatorioLucroDTO{
			LucroBruto:         decimal.Zero,
			LucroLiquido:       decimal.Zero,
			MargemLucroBruto:   decimal.Zero,
			MargemLucroLiquido: decimal.Zero,
		},
	}
	if r == nil {
		return out
	}

	if p := r.Periodo; p != nil {
		if p.DataInicio != "" {
			out.Periodo.DataInicio = p.DataInicio
		}
		if p.DataFim != "" {
			out.Periodo.DataFim = p.DataFim
		}
	}
	if v := r.Vendas; v != nil {
		out.Vendas = dto.RelatorioVendasDTO{
			ReceitaTotal:          v.ReceitaTotal,
			CustoProdutosVendidos: v.CustoProdutosVendidos,
			QuantidadeTotal:       v.QuantidadeTotal,
			MarmitaMaisVendida:    v.MarmitaMaisVendida,
			QuantidadeMaisVendida: v.QuantidadeMaisVendida,
		}
	}
	if c := r.Compras; c != nil {
		out.Compras = dto.RelatorioComprasDTO{TotalCompras: c.TotalCompras, NumeroCompras: c.NumeroCompras}
	}
	if l := r.Lucro; l != nil {
		out.Lucro = dto.RelatorioLucroDTO{
			LucroBruto:         l.LucroBruto,
			LucroLiquido:       l.LucroLiquido,
			MargemLucroBruto:   l.MargemLucroBruto,
			MargemLucroLiquido: l.MargemLucroLiquido,
		}
	}
	return out
}

// ReportUseCase relatório financeiro, com filtro de datas opcional.
type ReportUseCase struct {
	api    ports.RelatorioAPI
	source SnapshotSource
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(api ports.RelatorioAPI, source SnapshotSource) *ReportUseCase {
	return &ReportUseCase{api: api, source: source}
}

// Get sem filtro devolve o relatório do snapshot; com filtro consulta a API na hora.
// Datas do filtro aceitam qualquer formato reconhecido; ilegíveis são ignoradas.
func (uc *ReportUseCase) Get(ctx context.Context, filtro dto.RelatorioFiltro) (dto.RelatorioDTO, error) {
	inicio, okInicio := datebr.Parse(filtro.DataInicio)
	fim, okFim := datebr.Parse(filtro.DataFim)
	if okInicio && okFim && fim.Before(inicio) {
		return dto.RelatorioDTO{}, domain.NewValidationError("data_fim", "gtefield=data_inicio")
	}

	if !okInicio && !okFim {
		snap, err := uc.source.Current(ctx)
		if err != nil {
			return dto.RelatorioDTO{}, fmt.Errorf("relatorio: snapshot: %w", err)
		}
		return ReportSummary(snap.Relatorio), nil
	}

	var f dto.RelatorioFiltro
	if okInicio {
		f.DataInicio = datebr.ToAPI(inicio)
	}
	if okFim {
		f.DataFim = datebr.ToAPI(fim)
	}
	r, err := uc.api.GetRelatorio(ctx, f)
	if err != nil {
		return dto.RelatorioDTO{}, fmt.Errorf("relatorio: %w", err)
	}
	return ReportSummary(r), nil
}
