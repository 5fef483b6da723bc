package marmitaapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/marmitaapi"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type captured struct {
	method    string
	path      string
	query     string
	requestID string
	body      map[string]any
}

// newServer responde status/body fixos e registra a última requisição.
func newServer(t *testing.T, status int, body string) (*marmitaapi.Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.requestID = r.Header.Get("X-Request-ID")
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return marmitaapi.NewClient(srv.URL+"/api/", 2*time.Second, logger.Nop()), got
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Leitura ──────────────────────────────────────────────────────────────────

func TestListVendas_AliasesETiposMistos(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `[
		{"id_venda": 7, "id_marmita": "3", "nome_marmita": "Frango", "quantidade_vendida": "2",
		 "valor_total": 30.5, "data": "2025-01-01", "data_de_venda": "2025-01-01"},
		{"id": 8, "marmita_id": 4, "nome_marmita": null, "quantidade": 1, "valor_total": "abc", "data": null}
	]`)

	vendas, err := c.ListVendas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/vendas", got.path)
	assert.NotEmpty(t, got.requestID, "toda chamada leva X-Request-ID")

	require.Len(t, vendas, 2)
	assert.Equal(t, 7, vendas[0].ID)
	assert.Equal(t, 3, vendas[0].MarmitaID)
	assert.True(t, dec("2").Equal(vendas[0].QuantidadeVendida))
	assert.True(t, dec("30.5").Equal(vendas[0].ValorTotal))
	assert.Equal(t, "2025-01-01", vendas[0].RawDate())

	assert.Equal(t, 8, vendas[1].ID)
	assert.Equal(t, "", vendas[1].NomeMarmita)
	assert.True(t, dec("1").Equal(vendas[1].QuantidadeVendida))
	assert.True(t, vendas[1].ValorTotal.IsZero(), "número ilegível vira zero")
}

func TestListCompras_ValorTotalComEspaco(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[
		{"id_compra": 1, "valor total": 120, "data_de_compra": "Tue, 04 Mar 2025 00:00:00 GMT",
		 "preco_ingredientes": {"1": 10, "2": "5.5", "x": 1}}
	]`)

	compras, err := c.ListCompras(context.Background())
	require.NoError(t, err)
	require.Len(t, compras, 1)
	assert.Equal(t, 1, compras[0].ID)
	assert.True(t, dec("120").Equal(compras[0].ValorTotal))
	assert.Equal(t, "Tue, 04 Mar 2025 00:00:00 GMT", compras[0].Data)
	assert.Len(t, compras[0].IngredientesPrecos, 2, "chave não inteira é descartada")
	assert.True(t, dec("5.5").Equal(compras[0].IngredientesPrecos[2]))
}

func TestListMarmitas_QuantidadeIngredientes(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[
		{"id": 2, "nome": "Fit", "preco_venda": 18, "custo_estimado": 6.2, "ingredientes": "Arroz, Frango",
		 "quantidade_ingredientes": {"1": 0.15, "3": 0.2}}
	]`)

	marmitas, err := c.ListMarmitas(context.Background())
	require.NoError(t, err)
	require.Len(t, marmitas, 1)
	assert.Equal(t, "Arroz, Frango", marmitas[0].Ingredientes)
	assert.True(t, dec("0.15").Equal(marmitas[0].IngredientesQuantidades[1]))
}

func TestGetRelatorio_FiltroESecoesAusentes(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{"vendas": {"receita_total": 100, "custo_produtos_vendidos": "40"}, "lucro": null}`)

	r, err := c.GetRelatorio(context.Background(), dto.RelatorioFiltro{DataInicio: "01/02/2025", DataFim: "lixo"})
	require.NoError(t, err)
	assert.Equal(t, "/api/relatorio", got.path)
	assert.Equal(t, "data_inicio=2025-02-01", got.query)

	require.NotNil(t, r.Vendas)
	assert.True(t, dec("100").Equal(r.Vendas.ReceitaTotal))
	assert.True(t, dec("40").Equal(r.Vendas.CustoProdutosVendidos))
	assert.Nil(t, r.Compras)
	assert.Nil(t, r.Lucro)
}

// ── Escrita ──────────────────────────────────────────────────────────────────

func TestCreateMarmita_PayloadNumerico(t *testing.T) {
	c, got := newServer(t, http.StatusCreated, `{"message": "Marmita criada com sucesso"}`)

	msg, err := c.CreateMarmita(context.Background(), dto.CreateMarmitaRequest{
		Nome:                    "Frango",
		PrecoVenda:              dec("15.00"),
		IngredientesQuantidades: map[int]decimal.Decimal{1: dec("0.15")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Marmita criada com sucesso", msg)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, float64(15), got.body["preco_venda"], "decimal sai como número JSON")
	assert.Equal(t, map[string]any{"1": 0.15}, got.body["ingredientes_quantidades"])
}

func TestCreateVenda_DataNormalizada(t *testing.T) {
	c, got := newServer(t, http.StatusCreated, `{"message": "Venda registrada com sucesso"}`)

	_, err := c.CreateVenda(context.Background(), dto.CreateVendaRequest{MarmitaID: 3, Quantidade: 2, Data: "04/03/2025"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", got.body["data"])
	assert.Equal(t, float64(3), got.body["marmita_id"])
}

func TestUpdateIngrediente_Parcial(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{"message": "ok"}`)
	nome := "Arroz integral"

	_, err := c.UpdateIngrediente(context.Background(), 5, dto.UpdateIngredienteRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/ingredientes/5", got.path)
	assert.Equal(t, map[string]any{"nome": "Arroz integral"}, got.body)
}

// ── Erros ────────────────────────────────────────────────────────────────────

func TestErro_CorpoDaAPI(t *testing.T) {
	c, _ := newServer(t, http.StatusBadRequest, `{"error": "Marmita não encontrada"}`)

	_, err := c.DeleteMarmita(context.Background(), 99)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Marmita não encontrada", apiErr.Message)
}

func TestErro_SemCorpoUsaMensagemPadrao(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, `<html>not found</html>`)

	_, err := c.GetIngrediente(context.Background(), 1)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Erro ao processar requisição", apiErr.Message)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestErro_ServidorForaDoAr(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := marmitaapi.NewClient(url, time.Second, nil)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServerUnavailable))
}
