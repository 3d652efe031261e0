package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard handles GET /dashboard: the signed-in user's profile and skills.
func (s *Server) Dashboard(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	user, err := s.discoveryService.ViewProfile(c.Context(), userID)
	if err != nil {
		return s.fail(c, err, "/login")
	}

	return s.render(c, "dashboard", fiber.Map{
		"Title":   "Dashboard",
		"User":    user,
		"Offered": user.SkillsOffered(),
		"Wanted":  user.SkillsWanted(),
	})
}

// PublicProfiles handles GET /public_profiles with optional `skill` and
// `availability` query filters. No login required.
func (s *Server) PublicProfiles(c *fiber.Ctx) error {
	skillFilter := c.Query("skill")
	availabilityFilter := c.Query("availability")

	profiles, err := s.discoveryService.ListPublicProfiles(c.Context(),
		skillFilter, models.Availability(availabilityFilter))
	if err != nil {
		return s.fail(c, err, "/public_profiles")
	}

	return s.render(c, "public_profiles", fiber.Map{
		"Title":              "Browse profiles",
		"Profiles":           profiles,
		"SkillFilter":        skillFilter,
		"AvailabilityFilter": availabilityFilter,
		"Availabilities":     models.Availabilities,
	})
}

// ViewProfile handles GET /profile/:user_id. Any signed-in user may view any
// profile by id; only the discovery listing honors the visibility flag.
func (s *Server) ViewProfile(c *fiber.Ctx) error {
	targetID, ok := s.parseID(c, "user_id", "/public_profiles")
	if !ok {
		return nil
	}

	profile, err := s.discoveryService.ViewProfile(c.Context(), targetID)
	if err != nil {
		return s.fail(c, err, "/public_profiles")
	}

	return s.render(c, "profile", fiber.Map{
		"Title":   profile.Name,
		"Profile": profile,
		"Offered": profile.SkillsOffered(),
		"Wanted":  profile.SkillsWanted(),
	})
}
