package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
)

// snapshotStore contrato mínimo do loader (implementado por *workspace.Loader).
type snapshotStore interface {
	Peek() *workspace.Snapshot
	Reload(ctx context.Context) (*workspace.Snapshot, error)
}

// ReloadResponse saída de POST /api/recarregar.
type ReloadResponse struct {
	AtualizadoEm string            `json:"atualizado_em"`
	Falhas       map[string]string `json:"falhas,omitempty"`
}

// HealthHandler liveness do BFF, sonda da API externa e recarga forçada.
type HealthHandler struct {
	api   ports.HealthAPI
	snaps snapshotStore
}

// NewHealthHandler constrói o handler.
func NewHealthHandler(api ports.HealthAPI, snaps snapshotStore) *HealthHandler {
	return &HealthHandler{api: api, snaps: snaps}
}

// Health godoc
// @Summary      Liveness e estado da API externa
// @Description  Sempre 200 enquanto o BFF responde; upstream informa se a API externa está no ar.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Upstream: "ok"}
	if err := h.api.Health(c.UserContext()); err != nil {
		out.Upstream = "indisponivel"
		out.Erro = err.Error()
	}
	if snap := h.snaps.Peek(); snap != nil {
		out.Snapshot = snap.CarregadoEm.Format(time.RFC3339)
	}
	return c.JSON(out)
}

// Reload godoc
// @Summary      Recarrega o snapshot (cinco leituras concorrentes)
// @Tags         health
// @Produce      json
// @Success      200  {object}  ReloadResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/recarregar [post]
func (h *HealthHandler) Reload(c *fiber.Ctx) error {
	snap, err := h.snaps.Reload(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ReloadResponse{
		AtualizadoEm: snap.CarregadoEm.Format(time.RFC3339),
		Falhas:       snap.Falhas,
	})
}
