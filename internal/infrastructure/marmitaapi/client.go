// Package marmitaapi adaptador HTTP/JSON para a API REST externa de MarmitaWare.
package marmitaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// Verificação em tempo de compilação de que Client implementa BackendAPI.
var _ ports.BackendAPI = (*Client)(nil)

const (
	// maxBodyBytes limite de leitura de qualquer resposta.
	maxBodyBytes = 4 << 20

	fallbackErrorMessage = "Erro ao processar requisição"
	requestIDHeader      = "X-Request-ID"
)

// Client implementa ports.BackendAPI sobre net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient constrói o adaptador. baseURL inclui o prefixo /api (ex.: http://localhost:5000/api).
// timeout <= 0 usa 15 s.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("marmitaapi"),
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type messageBody struct {
	Message string `json:"message"`
}

// do executa a requisição e decodifica a resposta 2xx em out (se não nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marmitaapi: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("marmitaapi: criar request %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("marmitaapi: %s %s: timeout ou cancelamento: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("api indisponível")
		return fmt.Errorf("marmitaapi: %s %s: %w: %w", method, path, domain.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("marmitaapi: ler resposta %s %s: %w: %w", method, path, domain.ErrServerUnavailable, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", reqID).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("marmitaapi: deserializar %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extrai {"error": "..."} do corpo; sem ele usa a mensagem genérica.
func errorMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if msg := strings.TrimSpace(eb.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(eb.Message); msg != "" {
			return msg
		}
	}
	return fallbackErrorMessage
}

// write executa uma escrita e devolve a mensagem de confirmação.
func (c *Client) write(ctx context.Context, method, path string, payload any) (string, error) {
	var mb messageBody
	if err := c.do(ctx, method, path, nil, payload, &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}

// Health consulta GET /health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}
