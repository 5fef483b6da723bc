package marmitaapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
)

func itemPath(resource string, id int) string {
	return "/" + resource + "/" + strconv.Itoa(id)
}

// apiDate normaliza qualquer data reconhecida para YYYY-MM-DD; inválida devolve "".
func apiDate(raw string) string {
	t, ok := datebr.Parse(raw)
	if !ok {
		return ""
	}
	return datebr.ToAPI(t)
}

// ── Ingredientes ──────────────────────────────────────────────────────────────

// ListIngredientes GET /ingredientes.
func (c *Client) ListIngredientes(ctx context.Context) ([]entity.Ingrediente, error) {
	var wire []ingredienteWire
	if err := c.do(ctx, http.MethodGet, "/ingredientes", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Ingrediente, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetIngrediente GET /ingredientes/{id}.
func (c *Client) GetIngrediente(ctx context.Context, id int) (*entity.Ingrediente, error) {
	var w ingredienteWire
	if err := c.do(ctx, http.MethodGet, itemPath("ingredientes", id), nil, nil, &w); err != nil {
		return nil, err
	}
	ing := w.toDomain()
	return &ing, nil
}

type createIngredientePayload struct {
	Nome        string      `json:"nome"`
	PrecoCompra json.Number `json:"preco_compra"`
	IDUnidade   int         `json:"id_unidade,omitempty"`
}

// CreateIngrediente POST /ingredientes.
func (c *Client) CreateIngrediente(ctx context.Context, in dto.CreateIngredienteRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/ingredientes", createIngredientePayload{
		Nome:        in.Nome,
		PrecoCompra: number(in.PrecoCompra),
		IDUnidade:   in.IDUnidade,
	})
}

// UpdateIngrediente PUT /ingredientes/{id} só com os campos informados.
func (c *Client) UpdateIngrediente(ctx context.Context, id int, in dto.UpdateIngredienteRequest) (string, error) {
	payload := map[string]any{}
	if in.Nome != nil {
		payload["nome"] = *in.Nome
	}
	if in.PrecoCompra != nil {
		payload["preco_compra"] = number(*in.PrecoCompra)
	}
	if in.DataUltimaCompra != nil {
		if d := apiDate(*in.DataUltimaCompra); d != "" {
			payload["data_ultima_compra"] = d
		}
	}
	if in.IDUnidade != nil {
		payload["id_unidade"] = *in.IDUnidade
	}
	return c.write(ctx, http.MethodPut, itemPath("ingredientes", id), payload)
}

// DeleteIngrediente DELETE /ingredientes/{id}.
func (c *Client) DeleteIngrediente(ctx context.Context, id int) (string, error) {
	return c.write(ctx, http.MethodDelete, itemPath("ingredientes", id), nil)
}

// ── Marmitas ──────────────────────────────────────────────────────────────────

// ListMarmitas GET /marmitas.
func (c *Client) ListMarmitas(ctx context.Context) ([]entity.Marmita, error) {
	var wire []marmitaWire
	if err := c.do(ctx, http.MethodGet, "/marmitas", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Marmita, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetMarmita GET /marmitas/{id}.
func (c *Client) GetMarmita(ctx context.Context, id int) (*entity.Marmita, error) {
	var w marmitaWire
	if err := c.do(ctx, http.MethodGet, itemPath("marmitas", id), nil, nil, &w); err != nil {
		return nil, err
	}
	m := w.toDomain()
	return &m, nil
}

type createMarmitaPayload struct {
	Nome                    string                 `json:"nome"`
	PrecoVenda              json.Number            `json:"preco_venda"`
	IngredientesQuantidades map[string]json.Number `json:"ingredientes_quantidades"`
}

// CreateMarmita POST /marmitas.
func (c *Client) CreateMarmita(ctx context.Context, in dto.CreateMarmitaRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/marmitas", createMarmitaPayload{
		Nome:                    in.Nome,
		PrecoVenda:              number(in.PrecoVenda),
		IngredientesQuantidades: idMap(in.IngredientesQuantidades),
	})
}

// UpdateMarmita PUT /marmitas/{id}.
func (c *Client) UpdateMarmita(ctx context.Context, id int, in dto.UpdateMarmitaRequest) (string, error) {
	payload := map[string]any{}
	if in.Nome != nil {
		payload["nome"] = *in.Nome
	}
	if in.PrecoVenda != nil {
		payload["preco_venda"] = number(*in.PrecoVenda)
	}
	if len(in.IngredientesQuantidades) > 0 {
		payload["ingredientes_quantidades"] = idMap(in.IngredientesQuantidades)
	}
	return c.write(ctx, http.MethodPut, itemPath("marmitas", id), payload)
}

// DeleteMarmita DELETE /marmitas/{id}.
func (c *Client) DeleteMarmita(ctx context.Context, id int) (string, error) {
	return c.write(ctx, http.MethodDelete, itemPath("marmitas", id), nil)
}

// ── Vendas ────────────────────────────────────────────────────────────────────

// ListVendas GET /vendas.
func (c *Client) ListVendas(ctx context.Context) ([]entity.Venda, error) {
	var wire []vendaWire
	if err := c.do(ctx, http.MethodGet, "/vendas", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Venda, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetVenda GET /vendas/{id}.
func (c *Client) GetVenda(ctx context.Context, id int) (*entity.Venda, error) {
	var w vendaWire
	if err := c.do(ctx, http.MethodGet, itemPath("vendas", id), nil, nil, &w); err != nil {
		return nil, err
	}
	v := w.toDomain()
	return &v, nil
}

type createVendaPayload struct {
	MarmitaID  int    `json:"marmita_id"`
	Quantidade int    `json:"quantidade"`
	Data       string `json:"data,omitempty"`
}

// CreateVenda POST /vendas.
func (c *Client) CreateVenda(ctx context.Context, in dto.CreateVendaRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/vendas", createVendaPayload{
		MarmitaID:  in.MarmitaID,
		Quantidade: in.Quantidade,
		Data:       apiDate(in.Data),
	})
}

// UpdateVenda PUT /vendas/{id}.
func (c *Client) UpdateVenda(ctx context.Context, id int, in dto.UpdateVendaRequest) (string, error) {
	payload := map[string]any{}
	if in.MarmitaID != nil {
		payload["marmita_id"] = *in.MarmitaID
	}
	if in.Quantidade != nil {
		payload["quantidade"] = *in.Quantidade
	}
	if in.Data != nil {
		if d := apiDate(*in.Data); d != "" {
			payload["data"] = d
		}
	}
	return c.write(ctx, http.MethodPut, itemPath("vendas", id), payload)
}

// DeleteVenda DELETE /vendas/{id}.
func (c *Client) DeleteVenda(ctx context.Context, id int) (string, error) {
	return c.write(ctx, http.MethodDelete, itemPath("vendas", id), nil)
}

// ── Compras ───────────────────────────────────────────────────────────────────

// ListCompras GET /compras.
func (c *Client) ListCompras(ctx context.Context) ([]entity.Compra, error) {
	var wire []compraWire
	if err := c.do(ctx, http.MethodGet, "/compras", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Compra, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetCompra GET /compras/{id}.
func (c *Client) GetCompra(ctx context.Context, id int) (*entity.Compra, error) {
	var w compraWire
	if err := c.do(ctx, http.MethodGet, itemPath("compras", id), nil, nil, &w); err != nil {
		return nil, err
	}
	cp := w.toDomain()
	return &cp, nil
}

type createCompraPayload struct {
	ValorTotal         json.Number            `json:"valor_total"`
	Data               string                 `json:"data,omitempty"`
	IngredientesPrecos map[string]json.Number `json:"ingredientes_precos"`
}

// CreateCompra POST /compras.
func (c *Client) CreateCompra(ctx context.Context, in dto.CreateCompraRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/compras", createCompraPayload{
		ValorTotal:         number(in.ValorTotal),
		Data:               apiDate(in.Data),
		IngredientesPrecos: idMap(in.IngredientesPrecos),
	})
}

// UpdateCompra PUT /compras/{id}.
func (c *Client) UpdateCompra(ctx context.Context, id int, in dto.UpdateCompraRequest) (string, error) {
	payload := map[string]any{}
	if in.ValorTotal != nil {
		payload["valor_total"] = number(*in.ValorTotal)
	}
	if in.Data != nil {
		if d := apiDate(*in.Data); d != "" {
			payload["data"] = d
		}
	}
	if len(in.IngredientesPrecos) > 0 {
		payload["ingredientes_precos"] = idMap(in.IngredientesPrecos)
	}
	return c.write(ctx, http.MethodPut, itemPath("compras", id), payload)
}

// DeleteCompra DELETE /compras/{id}.
func (c *Client) DeleteCompra(ctx context.Context, id int) (string, error) {
	return c.write(ctx, http.MethodDelete, itemPath("compras", id), nil)
}

// ── Relatório ─────────────────────────────────────────────────────────────────

// GetRelatorio GET /relatorio com data_inicio/data_fim opcionais.
// Datas ilegíveis no filtro são omitidas.
func (c *Client) GetRelatorio(ctx context.Context, filtro dto.RelatorioFiltro) (*entity.Relatorio, error) {
	q := url.Values{}
	if d := apiDate(filtro.DataInicio); d != "" {
		q.Set("data_inicio", d)
	}
	if d := apiDate(filtro.DataFim); d != "" {
		q.Set("data_fim", d)
	}
	var w relatorioWire
	if err := c.do(ctx, http.MethodGet, "/relatorio", q, nil, &w); err != nil {
		return nil, err
	}
	return w.toDomain(), nil
}
