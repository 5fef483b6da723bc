package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
)

// MarmitaHandler atende /api/marmitas e a prévia de custo.
type MarmitaHandler struct {
	uc *usecase.MarmitaUseCase
}

// NewMarmitaHandler constrói o handler.
func NewMarmitaHandler(uc *usecase.MarmitaUseCase) *MarmitaHandler {
	return &MarmitaHandler{uc: uc}
}

// List godoc
// @Summary      Listar marmitas com margem
// @Tags         marmitas
// @Produce      json
// @Success      200  {object}  dto.MarmitaListResponse
// @Router       /api/marmitas [get]
func (h *MarmitaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/marmitas/:id
func (h *MarmitaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar marmita
// @Tags         marmitas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarmitaRequest  true  "Nome, preço e composição"
// @Success      201   {object}  dto.WriteResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/marmitas [post]
func (h *MarmitaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMarmitaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/marmitas/:id
func (h *MarmitaHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateMarmitaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/marmitas/:id
func (h *MarmitaHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PreviewCost godoc
// @Summary      Prévia de custo e margem de uma composição
// @Description  Usa os preços de ingredientes do snapshot; ids desconhecidos são ignorados e listados.
// @Tags         marmitas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CostPreviewRequest  true  "Composição e preço de venda"
// @Success      200   {object}  dto.CostPreviewResponse
// @Router       /api/marmitas/custo [post]
func (h *MarmitaHandler) PreviewCost(c *fiber.Ctx) error {
	var in dto.CostPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PreviewCost(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
