package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appanalytics "github.com/marmitaware/marmitaware-bff/internal/application/analytics"
	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports/porttest"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/internal/infrastructure/excel"
	apphttp "github.com/marmitaware/marmitaware-bff/internal/interfaces/http"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

type stubPDF struct{}

func (stubPDF) GenerateReportPDF(_ context.Context, d *dto.DashboardDTO) ([]byte, error) {
	return []byte("%PDF-" + d.Periodo), nil
}

type testEnv struct {
	app *fiber.App
	api *porttest.FakeBackend
}

// buildTestApp monta o router completo sobre o backend em memória.
func buildTestApp(t *testing.T, seed func(api *porttest.FakeBackend)) testEnv {
	t.Helper()
	api := porttest.New()
	api.Ingredientes = []entity.Ingrediente{{ID: 1, Nome: "Arroz", PrecoCompra: decimal.NewFromInt(2)}}
	api.Marmitas = []entity.Marmita{{ID: 1, Nome: "Frango", PrecoVenda: decimal.NewFromInt(15), CustoEstimado: decimal.NewFromInt(6)}}
	if seed != nil {
		seed(api)
	}
	clock := func() time.Time { return fixedNow }
	loader := workspace.NewLoader(api, workspace.WithClock(clock))
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Health:        api,
		Snapshots:     loader,
		IngredienteUC: usecase.NewIngredienteUseCase(api, loader, log),
		MarmitaUC:     usecase.NewMarmitaUseCase(api, loader, log),
		VendaUC:       usecase.NewVendaUseCase(api, loader, log).WithClock(clock),
		CompraUC:      usecase.NewCompraUseCase(api, loader, log),
		DashboardUC:   appanalytics.NewDashboardUseCase(loader, appanalytics.WithClock(clock)),
		ReportUC:      appanalytics.NewReportUseCase(api, loader),
		PDF:           stubPDF{},
		XLSX:          excel.NewWorkbookGenerator(),
		Logger:        log,
	})
	return testEnv{app: app, api: api}
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Health e recarga ─────────────────────────────────────────────────────────

func TestHealth_UpstreamForaDoAr(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.HealthErr = domain.ErrServerUnavailable
	})

	resp := doRequest(t, env.app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	out := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "indisponivel", out.Upstream)
}

func TestRequestID_Propagado(t *testing.T) {
	env := buildTestApp(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRecarregar(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.Errs["compras"] = porttest.Unavailable("compras")
	})

	resp := doRequest(t, env.app, http.MethodPost, "/api/recarregar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[apphttp.ReloadResponse](t, resp)
	assert.Contains(t, out.Falhas, "compras")
	assert.Equal(t, 1, env.api.CallCount("GET /vendas"))
}

// ── Dashboard e relatório ────────────────────────────────────────────────────

func TestDashboard_EstadoVazio(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardDTO](t, resp)
	assert.True(t, out.Vazio)
	assert.Equal(t, appanalytics.MensagemSemVendas, out.MensagemVazia)
	assert.NotNil(t, out.PorData)
}

func TestDashboard_PeriodoInvalido(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard?periodo=decada", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PERIOD", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDashboard_Semana(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.Vendas = []entity.Venda{
			porttest.Venda(1, "2025-03-10", "Frango", 2, 30),
			porttest.Venda(2, "2025-02-01", "Frango", 1, 15),
		}
	})

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard?periodo=semana", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardDTO](t, resp)
	assert.Equal(t, "semana", out.Periodo)
	assert.False(t, out.Vazio)
	require.Len(t, out.PorData, 1)
	assert.Equal(t, "10/03/2025", out.PorData[0].Data)
	assert.Len(t, out.VendasRecentes, 2)
}

func TestRelatorio_DatasInvertidas(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/api/relatorio?data_inicio=10/03/2025&data_fim=01/03/2025", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, env.api.CallCount("GET /relatorio"))
}

func TestRelatorio_FiltroRepassado(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/api/relatorio?data_inicio=01/03/2025", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-03-01", env.api.LastFiltro.DataInicio)
}

func TestExportacoes(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.Vendas = []entity.Venda{
			porttest.Venda(1, "2025-03-10", "Frango", 2, 30),
			porttest.Venda(2, "2001-01-01", "Carne", 1, 18),
		}
	})

	resp := doRequest(t, env.app, http.MethodGet, "/api/relatorio/pdf?periodo=ano", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio-ano.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-ano", string(body))

	resp = doRequest(t, env.app, http.MethodGet, "/api/relatorio/xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "vendas-mes.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetVendas)
	require.NoError(t, err)
	require.Len(t, rows, 2, "cabeçalho + a venda do mês")
	assert.Equal(t, "10/03/2025", rows[1][1])
	for _, r := range rows {
		assert.NotContains(t, r, "01/01/2001", "venda fora do período não entra na planilha")
	}
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestCreateVenda_Validacao422(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodPost, "/api/vendas", map[string]any{"quantidade": 1})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "marmita_id")
	assert.Zero(t, env.api.CallCount("POST /vendas"))
}

func TestCreateVenda_Sucesso(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodPost, "/api/vendas", map[string]any{"marmita_id": 1, "quantidade": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, decode[dto.WriteResponse](t, resp).Message)

	resp = doRequest(t, env.app, http.MethodGet, "/api/vendas", nil)
	out := decode[dto.VendaListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "12/03/2025", out.Items[0].Data)
}

func TestCorpoInvalido(t *testing.T) {
	env := buildTestApp(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/compras", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMarmita_NaoEncontrada(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/api/marmitas/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestIDInvalido(t *testing.T) {
	env := buildTestApp(t, nil)
	resp := doRequest(t, env.app, http.MethodDelete, "/api/ingredientes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWrite_ErroDaAPI502(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.WriteErr = &domain.APIError{Status: 400, Message: "Marmita não encontrada"}
	})

	resp := doRequest(t, env.app, http.MethodDelete, "/api/marmitas/1", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UPSTREAM", out.Code)
	assert.Equal(t, "Marmita não encontrada", out.Message)
}

func TestWrite_ServidorForaDoAr503(t *testing.T) {
	env := buildTestApp(t, func(api *porttest.FakeBackend) {
		api.WriteErr = porttest.Unavailable("ingredientes")
	})

	resp := doRequest(t, env.app, http.MethodDelete, "/api/ingredientes/1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestPreviewCost(t *testing.T) {
	env := buildTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodPost, "/api/marmitas/custo", map[string]any{
		"preco_venda":              10,
		"ingredientes_quantidades": map[string]any{"1": 0.5, "9": 1},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CostPreviewResponse](t, resp)
	assert.True(t, decimal.NewFromInt(1).Equal(out.CustoEstimado))
	assert.Equal(t, []int{9}, out.IgnoradosIDs)
}
