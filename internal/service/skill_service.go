package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// SkillService manages skills owned by users.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService returns a SkillService over the given skill repository.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// AddSkill persists a new skill owned by ownerID. Duplicate names are allowed.
func (s *SkillService) AddSkill(ctx context.Context, ownerID uint, name string, kind models.SkillKind) (*models.Skill, error) {
	if err := validation.ValidateSkillName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if !kind.Valid() {
		return nil, models.NewValidationError("Skill kind must be offered or wanted")
	}

	skill := &models.Skill{
		Name:   strings.TrimSpace(name),
		Kind:   kind,
		UserID: ownerID,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill removes the skill when ownerID owns it. A missing skill reports
// NotFoundError; someone else's skill reports UnauthorizedError and the row
// stays intact.
func (s *SkillService) DeleteSkill(ctx context.Context, ownerID, skillID uint) error {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return err
	}
	if skill.UserID != ownerID {
		return models.NewUnauthorizedError("You can only delete your own skills")
	}
	return s.skillRepo.Delete(ctx, skillID)
}
