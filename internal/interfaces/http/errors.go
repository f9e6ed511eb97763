package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/forms"
	"github.com/jhoicas/smart-distribution/internal/domain"
)

// writeError traduce un error de aplicación a su status HTTP y cuerpo dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	msg := err.Error()

	var ve *forms.ValidationError
	var se *forms.SubmitError
	switch {
	case errors.As(err, &ve):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", ve.Message
	case errors.As(err, &se):
		status, code, msg = fiber.StatusBadGateway, "SUBMIT_FAILED", se.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, code, msg = fiber.StatusUnauthorized, "INVALID_CREDENTIALS", domain.MsgInvalidCredentials
	case errors.Is(err, domain.ErrUnauthenticated):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "Access denied"
	case errors.Is(err, domain.ErrUnknownView):
		status, code = fiber.StatusNotFound, "UNKNOWN_VIEW"
	case errors.Is(err, board.ErrNotMounted):
		status, code = fiber.StatusConflict, "NOT_MOUNTED"
	case errors.Is(err, board.ErrNoTable):
		status, code = fiber.StatusNotFound, "NO_DATA"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
