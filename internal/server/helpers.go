package server

import (
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"skillswap/internal/middleware"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookie = "skillswap_session"
	flashCookie   = "skillswap_flash"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashInfo    = "info"
)

// Flash is a one-shot notice rendered on the next page view.
type Flash struct {
	Kind    string
	Message string
}

func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// setFlash stores a one-shot notice in a cookie, read and cleared by the
// next render.
func setFlash(c *fiber.Ctx, kind, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return &Flash{Kind: decoded[:i], Message: decoded[i+1:]}
		}
	}
	return &Flash{Kind: flashInfo, Message: decoded}
}

// currentUserID returns the authenticated user ID set by SessionLoader.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok
}

// currentUser loads the authenticated user, or nil for anonymous requests.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	uid, ok := currentUserID(c)
	if !ok {
		return nil
	}
	user, err := s.userRepo.GetByID(c.Context(), uid)
	if err != nil {
		return nil
	}
	return user
}

// render draws the page with the layout, injecting the flash notice and the
// signed-in user for the navigation bar.
func (s *Server) render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = s.currentUser(c)
	}
	data["Flash"] = popFlash(c)
	return c.Render(view, data)
}

// fail converts an error into a flash notice plus a redirect, the only error
// surface this application has. Auth errors always land on the login page;
// everything else goes to fallback.
func (s *Server) fail(c *fiber.Ctx, err error, fallback string) error {
	appErr, ok := err.(*models.AppError)
	if !ok {
		middleware.Logger.ErrorContext(c.UserContext(), "unexpected error",
			slog.String("error", err.Error()))
		setFlash(c, flashDanger, "Something went wrong, please try again")
		return c.Redirect(fallback, fiber.StatusSeeOther)
	}

	switch appErr.Code {
	case models.CodeAuthRequired:
		fallback = "/login"
	case models.CodeInternal:
		middleware.Logger.ErrorContext(c.UserContext(), "internal error",
			slog.String("error", appErr.Error()))
		setFlash(c, flashDanger, "Something went wrong, please try again")
		return c.Redirect(fallback, fiber.StatusSeeOther)
	}

	setFlash(c, flashDanger, appErr.Message)
	return c.Redirect(fallback, fiber.StatusSeeOther)
}

// parseID reads a positive integer route parameter. On a malformed value it
// sends the user back to fallback and reports handled=false.
func (s *Server) parseID(c *fiber.Ctx, name, fallback string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		setFlash(c, flashDanger, "Invalid link")
		_ = c.Redirect(fallback, fiber.StatusSeeOther)
		return 0, false
	}
	return uint(id), true
}
