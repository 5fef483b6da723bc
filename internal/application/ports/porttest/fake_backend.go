// Package porttest oferece um ports.BackendAPI em memória para testes.
package porttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
)

var _ ports.BackendAPI = (*FakeBackend)(nil)

// FakeBackend guarda as coleções em memória. Escritas alteram os dados, de modo que
// uma recarga posterior enxerga o resultado. Errs["vendas"] etc. forçam falha na leitura.
type FakeBackend struct {
	mu sync.Mutex

	Ingredientes []entity.Ingrediente
	Marmitas     []entity.Marmita
	Vendas       []entity.Venda
	Compras      []entity.Compra
	Relatorio    *entity.Relatorio

	Errs      map[string]error // recurso -> erro devolvido pela leitura
	WriteErr  error            // devolvido por qualquer escrita
	HealthErr error

	Calls      []string // "POST /vendas", "GET /relatorio" ...
	LastFiltro dto.RelatorioFiltro
	nextID     int
}

// New devolve um fake vazio.
func New() *FakeBackend {
	return &FakeBackend{Errs: map[string]error{}, nextID: 100}
}

func (f *FakeBackend) record(call string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, call)
	f.mu.Unlock()
}

func (f *FakeBackend) readErr(resource string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Errs[resource]
}

// CallCount conta as chamadas registradas iguais a call.
func (f *FakeBackend) CallCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *FakeBackend) id() int {
	f.nextID++
	return f.nextID
}

func notFound(what string) error {
	return &domain.APIError{Status: 404, Message: what + " não encontrado"}
}

// ── Leitura ───────────────────────────────────────────────────────────────────

func (f *FakeBackend) ListIngredientes(ctx context.Context) ([]entity.Ingrediente, error) {
	f.record("GET /ingredientes")
	if err := f.readErr("ingredientes"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Ingrediente(nil), f.Ingredientes...), nil
}

func (f *FakeBackend) GetIngrediente(ctx context.Context, id int) (*entity.Ingrediente, error) {
	f.record("GET /ingredientes/id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.Ingredientes {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, notFound("Ingrediente")
}

func (f *FakeBackend) ListMarmitas(ctx context.Context) ([]entity.Marmita, error) {
	f.record("GET /marmitas")
	if err := f.readErr("marmitas"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Marmita(nil), f.Marmitas...), nil
}

func (f *FakeBackend) GetMarmita(ctx context.Context, id int) (*entity.Marmita, error) {
	f.record("GET /marmitas/id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.Marmitas {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, notFound("Marmita")
}

func (f *FakeBackend) ListVendas(ctx context.Context) ([]entity.Venda, error) {
	f.record("GET /vendas")
	if err := f.readErr("vendas"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Venda(nil), f.Vendas...), nil
}

func (f *FakeBackend) GetVenda(ctx context.Context, id int) (*entity.Venda, error) {
	f.record("GET /vendas/id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.Vendas {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, notFound("Venda")
}

func (f *FakeBackend) ListCompras(ctx context.Context) ([]entity.Compra, error) {
	f.record("GET /compras")
	if err := f.readErr("compras"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Compra(nil), f.Compras...), nil
}

func (f *FakeBackend) GetCompra(ctx context.Context, id int) (*entity.Compra, error) {
	f.record("GET /compras/id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.Compras {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, notFound("Compra")
}

func (f *FakeBackend) GetRelatorio(ctx context.Context, filtro dto.RelatorioFiltro) (*entity.Relatorio, error) {
	f.record("GET /relatorio")
	if err := f.readErr("relatorio"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastFiltro = filtro
	if f.Relatorio == nil {
		return &entity.Relatorio{}, nil
	}
	r := *f.Relatorio
	return &r, nil
}

func (f *FakeBackend) Health(ctx context.Context) error {
	f.record("GET /health")
	return f.HealthErr
}

// ── Escrita ───────────────────────────────────────────────────────────────────

func (f *FakeBackend) write(call string) error {
	f.record(call)
	return f.WriteErr
}

func (f *FakeBackend) CreateIngrediente(ctx context.Context, in dto.CreateIngredienteRequest) (string, error) {
	if err := f.write("POST /ingredientes"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ingredientes = append(f.Ingredientes, entity.Ingrediente{ID: f.id(), Nome: in.Nome, PrecoCompra: in.PrecoCompra, IDUnidade: in.IDUnidade})
	return "Ingrediente criado com sucesso", nil
}

func (f *FakeBackend) UpdateIngrediente(ctx context.Context, id int, in dto.UpdateIngredienteRequest) (string, error) {
	if err := f.write("PUT /ingredientes"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Ingredientes {
		if f.Ingredientes[i].ID != id {
			continue
		}
		if in.Nome != nil {
			f.Ingredientes[i].Nome = *in.Nome
		}
		if in.PrecoCompra != nil {
			f.Ingredientes[i].PrecoCompra = *in.PrecoCompra
		}
		if in.DataUltimaCompra != nil {
			f.Ingredientes[i].DataUltimaCompra = *in.DataUltimaCompra
		}
		return "Ingrediente atualizado com sucesso", nil
	}
	return "", notFound("Ingrediente")
}

func (f *FakeBackend) DeleteIngrediente(ctx context.Context, id int) (string, error) {
	if err := f.write("DELETE /ingredientes"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Ingredientes {
		if f.Ingredientes[i].ID == id {
			f.Ingredientes = append(f.Ingredientes[:i], f.Ingredientes[i+1:]...)
			return "Ingrediente removido com sucesso", nil
		}
	}
	return "", notFound("Ingrediente")
}

func (f *FakeBackend) CreateMarmita(ctx context.Context, in dto.CreateMarmitaRequest) (string, error) {
	if err := f.write("POST /marmitas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Marmitas = append(f.Marmitas, entity.Marmita{
		ID:                      f.id(),
		Nome:                    in.Nome,
		PrecoVenda:              in.PrecoVenda,
		IngredientesQuantidades: in.IngredientesQuantidades,
	})
	return "Marmita criada com sucesso", nil
}

func (f *FakeBackend) UpdateMarmita(ctx context.Context, id int, in dto.UpdateMarmitaRequest) (string, error) {
	if err := f.write("PUT /marmitas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Marmitas {
		if f.Marmitas[i].ID != id {
			continue
		}
		if in.Nome != nil {
			f.Marmitas[i].Nome = *in.Nome
		}
		if in.PrecoVenda != nil {
			f.Marmitas[i].PrecoVenda = *in.PrecoVenda
		}
		if len(in.IngredientesQuantidades) > 0 {
			f.Marmitas[i].IngredientesQuantidades = in.IngredientesQuantidades
		}
		return "Marmita atualizada com sucesso", nil
	}
	return "", notFound("Marmita")
}

func (f *FakeBackend) DeleteMarmita(ctx context.Context, id int) (string, error) {
	if err := f.write("DELETE /marmitas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Marmitas {
		if f.Marmitas[i].ID == id {
			f.Marmitas = append(f.Marmitas[:i], f.Marmitas[i+1:]...)
			return "Marmita removida com sucesso", nil
		}
	}
	return "", notFound("Marmita")
}

func (f *FakeBackend) CreateVenda(ctx context.Context, in dto.CreateVendaRequest) (string, error) {
	if err := f.write("POST /vendas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := entity.Venda{ID: f.id(), MarmitaID: in.MarmitaID, QuantidadeVendida: decimal.NewFromInt(int64(in.Quantidade)), Data: in.Data}
	for _, m := range f.Marmitas {
		if m.ID == in.MarmitaID {
			v.NomeMarmita = m.Nome
			v.ValorTotal = m.PrecoVenda.Mul(v.QuantidadeVendida)
		}
	}
	f.Vendas = append(f.Vendas, v)
	return "Venda registrada com sucesso", nil
}

func (f *FakeBackend) UpdateVenda(ctx context.Context, id int, in dto.UpdateVendaRequest) (string, error) {
	if err := f.write("PUT /vendas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Vendas {
		if f.Vendas[i].ID != id {
			continue
		}
		if in.Quantidade != nil {
			f.Vendas[i].QuantidadeVendida = decimal.NewFromInt(int64(*in.Quantidade))
		}
		if in.Data != nil {
			f.Vendas[i].Data = *in.Data
		}
		if in.MarmitaID != nil {
			f.Vendas[i].MarmitaID = *in.MarmitaID
		}
		return "Venda atualizada com sucesso", nil
	}
	return "", notFound("Venda")
}

func (f *FakeBackend) DeleteVenda(ctx context.Context, id int) (string, error) {
	if err := f.write("DELETE /vendas"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Vendas {
		if f.Vendas[i].ID == id {
			f.Vendas = append(f.Vendas[:i], f.Vendas[i+1:]...)
			return "Venda removida com sucesso", nil
		}
	}
	return "", notFound("Venda")
}

func (f *FakeBackend) CreateCompra(ctx context.Context, in dto.CreateCompraRequest) (string, error) {
	if err := f.write("POST /compras"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Compras = append(f.Compras, entity.Compra{ID: f.id(), ValorTotal: in.ValorTotal, Data: in.Data, IngredientesPrecos: in.IngredientesPrecos})
	return "Compra registrada com sucesso", nil
}

func (f *FakeBackend) UpdateCompra(ctx context.Context, id int, in dto.UpdateCompraRequest) (string, error) {
	if err := f.write("PUT /compras"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Compras {
		if f.Compras[i].ID != id {
			continue
		}
		if in.ValorTotal != nil {
			f.Compras[i].ValorTotal = *in.ValorTotal
		}
		if in.Data != nil {
			f.Compras[i].Data = *in.Data
		}
		return "Compra atualizada com sucesso", nil
	}
	return "", notFound("Compra")
}

func (f *FakeBackend) DeleteCompra(ctx context.Context, id int) (string, error) {
	if err := f.write("DELETE /compras"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Compras {
		if f.Compras[i].ID == id {
			f.Compras = append(f.Compras[:i], f.Compras[i+1:]...)
			return "Compra removida com sucesso", nil
		}
	}
	return "", notFound("Compra")
}

// Venda atalho para montar vendas nos testes; data em qualquer formato aceito por datebr.
func Venda(id int, data, nome string, qtd, valor int64) entity.Venda {
	return entity.Venda{
		ID:                id,
		NomeMarmita:       nome,
		Data:              data,
		QuantidadeVendida: decimal.NewFromInt(qtd),
		ValorTotal:        decimal.NewFromInt(valor),
	}
}

// Unavailable erro de conectividade como o adaptador HTTP produz.
func Unavailable(resource string) error {
	return fmt.Errorf("marmitaapi: GET /%s: %w", resource, domain.ErrServerUnavailable)
}
