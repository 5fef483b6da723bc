package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/usecase"
)

// IngredienteHandler atende /api/ingredientes.
type IngredienteHandler struct {
	uc *usecase.IngredienteUseCase
}

// NewIngredienteHandler constrói o handler.
func NewIngredienteHandler(uc *usecase.IngredienteUseCase) *IngredienteHandler {
	return &IngredienteHandler{uc: uc}
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredientes
// @Produce      json
// @Success      200  {object}  dto.IngredienteListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ingredientes [get]
func (h *IngredienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter ingrediente por ID
// @Tags         ingredientes
// @Produce      json
// @Param        id   path  int  true  "ID do ingrediente"
// @Success      200  {object}  dto.IngredienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredientes/{id} [get]
func (h *IngredienteHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Criar ingrediente
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredienteRequest  true  "Dados do ingrediente"
// @Success      201   {object}  dto.WriteResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ingredientes [post]
func (h *IngredienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar ingrediente (parcial)
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do ingrediente"
// @Param        body  body  dto.UpdateIngredienteRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.WriteResponse
// @Router       /api/ingredientes/{id} [put]
func (h *IngredienteHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateIngredienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir ingrediente
// @Tags         ingredientes
// @Produce      json
// @Param        id   path  int  true  "ID do ingrediente"
// @Success      200  {object}  dto.WriteResponse
// @Router       /api/ingredientes/{id} [delete]
func (h *IngredienteHandler) Delete(c *fiber.Ctx) error {
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
