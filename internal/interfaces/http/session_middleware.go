package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/pkg/session"
)

// SessionCookieName nombre de la cookie HttpOnly que transporta la sesión.
const SessionCookieName = "cc_session"

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalEmail     = "email"
)

// RequireSession valida la cookie de sesión y extrae la identidad a c.Locals.
// Cookie ausente, inválida o expirada responden el mismo 401; la respuesta no
// distingue entre las tres.
func RequireSession(sessionSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "authentication required"))
		}
		s, err := session.Parse(sessionSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "authentication required"))
		}
		c.Locals(LocalUserID, s.UserID)
		c.Locals(LocalCompanyID, s.CompanyID)
		c.Locals(LocalEmail, s.Email)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después de RequireSession).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después de RequireSession).
// Vacío si el usuario aún no tiene empresa asociada.
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email de la sesión del contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// setSessionCookie emite la cookie de sesión. SameSite Lax: el frontend vive
// en otro origen pero las llamadas son fetch con credentials, no form posts.
func setSessionCookie(c *fiber.Ctx, token string, expMinutes int, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// clearSessionCookie invalida la cookie de sesión en el navegador.
func clearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
