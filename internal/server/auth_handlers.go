package server

import (
	"log/slog"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /: authenticated users land on the dashboard, everyone
// else on the login page.
func (s *Server) Home(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect("/dashboard")
	}
	return c.Redirect("/login")
}

// ShowRegister handles GET /register.
func (s *Server) ShowRegister(c *fiber.Ctx) error {
	return s.render(c, "register", fiber.Map{
		"Title":          "Register",
		"Availabilities": models.Availabilities,
	})
}

// Register handles POST /register.
func (s *Server) Register(c *fiber.Ctx) error {
	in := service.RegisterInput{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		Password:     c.FormValue("password"),
		Location:     c.FormValue("location"),
		Availability: models.Availability(c.FormValue("availability")),
		IsPublic:     c.FormValue("is_public") == "true",
	}

	user, err := s.authService.Register(c.Context(), in)
	if err != nil {
		return s.fail(c, err, "/register")
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		slog.Any("user_id", user.ID))
	setFlash(c, flashSuccess, "Registration successful. Please log in.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// ShowLogin handles GET /login.
func (s *Server) ShowLogin(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect("/dashboard")
	}
	return s.render(c, "login", fiber.Map{"Title": "Log in"})
}

// Login handles POST /login.
func (s *Server) Login(c *fiber.Ctx) error {
	user, err := s.authService.Login(c.Context(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		middleware.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return s.fail(c, err, "/login")
	}

	token, err := s.sessions.Issue(c.Context(), user.ID)
	if err != nil {
		return s.fail(c, models.NewInternalError(err), "/login")
	}
	setSessionCookie(c, token, s.sessions.TTL())

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout handles GET /logout. The token is revoked server-side so it cannot
// be replayed after the cookie is cleared.
func (s *Server) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(sessionCookie); token != "" {
		if err := s.sessions.Revoke(c.Context(), token); err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "session revoke failed",
				slog.String("error", err.Error()))
		}
	}
	clearSessionCookie(c)

	setFlash(c, flashInfo, "Logged out successfully.")
	return c.Redirect("/login")
}
