package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/auth"
	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/pkg/config"
	"github.com/compcleared/compcleared-api/pkg/session"
)

// AuthHandler maneja registro, login, logout y usuario actual.
// Emite y limpia la cookie de sesión; la verificación vive en RequireSession.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	sessionCfg config.SessionConfig
	secure     bool
}

// NewAuthHandler construye el handler de auth. secure marca la cookie como
// Secure (true en producción, false en desarrollo sin TLS).
func NewAuthHandler(uc *auth.AuthUseCase, sessionCfg config.SessionConfig, secure bool) *AuthHandler {
	return &AuthHandler{uc: uc, sessionCfg: sessionCfg, secure: secure}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, name, company_id"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
	}
	if len(in.Password) > 0 && len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "password must be at least 8 characters"))
	}
	user, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", ve.Error()))
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("EMAIL_EXISTS", "email is already registered"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not create account"))
	}
	if err := h.issueSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not create session"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Success: true, User: *user})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_CREDENTIALS", "invalid email or password"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not log in"))
	}
	if err := h.issueSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not create session"))
	}
	return c.JSON(dto.AuthResponse{Success: true, User: *user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, h.secure)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out"})
}

// Me godoc
// @Summary      Usuario y empresa de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, company, err := h.uc.CurrentUser(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Usuario borrado con cookie todavía válida.
			clearSessionCookie(c, h.secure)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "authentication required"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not load user"))
	}
	return c.JSON(dto.MeResponse{Success: true, User: *user, Company: company})
}

// issueSession firma el token con la identidad del usuario y lo deja en la cookie.
func (h *AuthHandler) issueSession(c *fiber.Ctx, user *dto.UserResponse) error {
	token, err := session.Generate(
		h.sessionCfg.Secret, user.ID, user.CompanyID, user.Email,
		h.sessionCfg.Issuer, h.sessionCfg.ExpMinutes,
	)
	if err != nil {
		return err
	}
	setSessionCookie(c, token, h.sessionCfg.ExpMinutes, h.secure)
	return nil
}
