package dto

import (
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

// ToIngredienteResponse converte a entidade; a data sai em DD/MM/YYYY.
func ToIngredienteResponse(i entity.Ingrediente) IngredienteResponse {
	return IngredienteResponse{
		ID:               i.ID,
		Nome:             i.Nome,
		PrecoCompra:      i.PrecoCompra,
		DataUltimaCompra: datebr.Format(i.DataUltimaCompra),
		IDUnidade:        i.IDUnidade,
	}
}

// ToMarmitaResponse converte a entidade e calcula a margem sobre o custo da API.
func ToMarmitaResponse(m entity.Marmita) MarmitaResponse {
	return MarmitaResponse{
		ID:                      m.ID,
		Nome:                    m.Nome,
		PrecoVenda:              m.PrecoVenda,
		CustoEstimado:           m.CustoEstimado,
		Margem:                  metrics.MealMargin(m),
		Ingredientes:            m.Ingredientes,
		IngredientesQuantidades: m.IngredientesQuantidades,
	}
}

// ToVendaResponse converte a entidade; nome ausente vira "Sem nome".
func ToVendaResponse(v entity.Venda) VendaResponse {
	nome := v.NomeMarmita
	if nome == "" {
		nome = metrics.NomeSemNome
	}
	return VendaResponse{
		ID:                v.ID,
		MarmitaID:         v.MarmitaID,
		NomeMarmita:       nome,
		QuantidadeVendida: v.QuantidadeVendida,
		ValorTotal:        v.ValorTotal,
		Data:              datebr.Format(v.RawDate()),
	}
}

// ToCompraResponse converte a entidade.
func ToCompraResponse(c entity.Compra) CompraResponse {
	return CompraResponse{
		ID:                 c.ID,
		ValorTotal:         c.ValorTotal,
		Data:               datebr.Format(c.Data),
		IngredientesPrecos: c.IngredientesPrecos,
	}
}

// ToVendasResumo converte o resumo calculado em metrics.
func ToVendasResumo(s metrics.SalesSummary) VendasResumoDTO {
	return VendasResumoDTO{
		TotalVendido:    s.TotalVendido,
		QuantidadeTotal: s.QuantidadeTotal,
		NumeroVendas:    s.NumeroVendas,
		TicketMedio:     s.TicketMedio,
	}
}

// ToVendaResponses converte uma lista, nunca devolvendo nil.
func ToVendaResponses(vendas []entity.Venda) []VendaResponse {
	out := make([]VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, ToVendaResponse(v))
	}
	return out
}
