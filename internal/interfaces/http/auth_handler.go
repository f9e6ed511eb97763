package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/session"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// AuthHandler maneja login, logout y estado de la sesión.
type AuthHandler struct {
	uc    *session.UseCase
	board *board.Board
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *session.UseCase, b *board.Board) *AuthHandler {
	return &AuthHandler{uc: uc, board: b}
}

func identityResponse(i *entity.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{ID: i.ID, Role: string(i.Role), Name: i.Name}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "id, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.ID) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y password son requeridos"})
	}
	ident, err := h.uc.Login(c.UserContext(), in.ID, in.Password)
	if err != nil {
		return writeError(c, err)
	}
	token, err := h.uc.IssueToken(ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token:   token,
		User:    identityResponse(ident),
		Landing: session.LandingPath(ident.Role),
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la identidad del dispositivo, desmonta las vistas y revoca el token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Sesión activa
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	return c.JSON(dto.SessionResponse{
		User:    identityResponse(ident),
		Landing: session.LandingPath(ident.Role),
		Views:   h.board.Available(),
	})
}
