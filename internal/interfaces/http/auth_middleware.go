package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// Locals keys de la identidad autenticada en Fiber.
const (
	LocalIdentity = "identity"
	LocalUserID   = "user_id"
	LocalRole     = "role"
)

// tokenVerifier valida un token contra la sesión activa (lo implementa *session.UseCase).
type tokenVerifier interface {
	Verify(token string) (*entity.Identity, error)
}

// AuthMiddleware valida el Bearer Token y carga la identidad en c.Locals.
// Un token solo vale mientras su identidad sea la sesión activa del dispositivo.
func AuthMiddleware(v tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		ident, err := v.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o de una sesión cerrada"})
		}
		c.Locals(LocalIdentity, ident)
		c.Locals(LocalUserID, ident.ID)
		c.Locals(LocalRole, string(ident.Role))
		return c.Next()
	}
}

// RequireRole autoriza solo a las identidades con alguno de los roles dados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := GetIdentity(c)
		if ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no iniciada"})
		}
		if !ident.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Access denied"})
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *entity.Identity {
	ident, _ := c.Locals(LocalIdentity).(*entity.Identity)
	return ident
}

// GetUserID devuelve el id de la identidad del contexto.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol de la identidad del contexto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
