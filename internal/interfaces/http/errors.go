package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
)

// respondError traduz a taxonomia de erros do domínio para status HTTP.
//
//   - 422 VALIDATION           → campos obrigatórios ausentes ou inválidos (não chegou à API).
//   - 400 INVALID_PERIOD       → período diferente de semana, mes ou ano.
//   - 404 NOT_FOUND            → a API respondeu 404.
//   - 502 UPSTREAM             → a API respondeu outro não-2xx; leva a mensagem dela.
//   - 503 UPSTREAM_UNAVAILABLE → API fora do ar.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados inválidos", Fields: vErr.Fields,
		})
	case errors.Is(err, domain.ErrUnknownPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PERIOD", Message: "período deve ser semana, mes ou ano",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.As(err, &apiErr):
		if apiErr.Status == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: apiErr.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Message})
	case errors.Is(err, domain.ErrServerUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_UNAVAILABLE", Message: domain.ErrServerUnavailable.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "tempo esgotado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

// paramID lê :id como inteiro positivo.
func paramID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser inteiro positivo"})
}
