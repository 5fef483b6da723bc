package ports

import (
	"context"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
)

// Os métodos de escrita devolvem a mensagem de confirmação da API ({"message": "..."}).
// Erros seguem a taxonomia de internal/domain: *domain.APIError para respostas não-2xx
// e domain.ErrServerUnavailable (encapsulado) para falhas de rede.

// IngredienteAPI operações sobre /ingredientes.
type IngredienteAPI interface {
	ListIngredientes(ctx context.Context) ([]entity.Ingrediente, error)
	GetIngrediente(ctx context.Context, id int) (*entity.Ingrediente, error)
	CreateIngrediente(ctx context.Context, in dto.CreateIngredienteRequest) (string, error)
	UpdateIngrediente(ctx context.Context, id int, in dto.UpdateIngredienteRequest) (string, error)
	DeleteIngrediente(ctx context.Context, id int) (string, error)
}

// MarmitaAPI operações sobre /marmitas.
type MarmitaAPI interface {
	ListMarmitas(ctx context.Context) ([]entity.Marmita, error)
	GetMarmita(ctx context.Context, id int) (*entity.Marmita, error)
	CreateMarmita(ctx context.Context, in dto.CreateMarmitaRequest) (string, error)
	UpdateMarmita(ctx context.Context, id int, in dto.UpdateMarmitaRequest) (string, error)
	DeleteMarmita(ctx context.Context, id int) (string, error)
}

// VendaAPI operações sobre /vendas. Datas saem como YYYY-MM-DD.
type VendaAPI interface {
	ListVendas(ctx context.Context) ([]entity.Venda, error)
	GetVenda(ctx context.Context, id int) (*entity.Venda, error)
	CreateVenda(ctx context.Context, in dto.CreateVendaRequest) (string, error)
	UpdateVenda(ctx context.Context, id int, in dto.UpdateVendaRequest) (string, error)
	DeleteVenda(ctx context.Context, id int) (string, error)
}

// CompraAPI operações sobre /compras.
type CompraAPI interface {
	ListCompras(ctx context.Context) ([]entity.Compra, error)
	GetCompra(ctx context.Context, id int) (*entity.Compra, error)
	CreateCompra(ctx context.Context, in dto.CreateCompraRequest) (string, error)
	UpdateCompra(ctx context.Context, id int, in dto.UpdateCompraRequest) (string, error)
	DeleteCompra(ctx context.Context, id int) (string, error)
}

// RelatorioAPI leitura do relatório financeiro pré-agregado.
type RelatorioAPI interface {
	GetRelatorio(ctx context.Context, filtro dto.RelatorioFiltro) (*entity.Relatorio, error)
}

// HealthAPI sonda de disponibilidade da API externa.
type HealthAPI interface {
	Health(ctx context.Context) error
}

// BackendAPI porta de saída para a API REST externa de MarmitaWare.
// Qualquer adaptador (HTTP, fake de testes) implementa o contrato inteiro;
// a aplicação só conhece esta interface.
type BackendAPI interface {
	IngredienteAPI
	MarmitaAPI
	VendaAPI
	CompraAPI
	RelatorioAPI
	HealthAPI
}
