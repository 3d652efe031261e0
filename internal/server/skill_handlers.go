package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ShowAddSkill handles GET /add_skill.
func (s *Server) ShowAddSkill(c *fiber.Ctx) error {
	return s.render(c, "add_skill", fiber.Map{
		"Title": "Add a skill",
		"Kinds": []models.SkillKind{models.SkillKindOffered, models.SkillKindWanted},
	})
}

// AddSkill handles POST /add_skill.
func (s *Server) AddSkill(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	name := c.FormValue("name")
	kind := models.SkillKind(c.FormValue("kind"))

	skill, err := s.skillService.AddSkill(c.Context(), userID, name, kind)
	if err != nil {
		return s.fail(c, err, "/add_skill")
	}

	setFlash(c, flashSuccess, "Added skill "+skill.Name)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// DeleteSkill handles GET /delete_skill/:id. Only the owner may delete a
// skill; the service enforces that.
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	skillID, ok := s.parseID(c, "id", "/dashboard")
	if !ok {
		return nil
	}

	if err := s.skillService.DeleteSkill(c.Context(), userID, skillID); err != nil {
		return s.fail(c, err, "/dashboard")
	}

	setFlash(c, flashSuccess, "Skill removed")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
