package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// DiscoveryService lists and filters public profiles.
type DiscoveryService struct {
	userRepo repository.UserRepository
}

// NewDiscoveryService returns a DiscoveryService over the given user repository.
func NewDiscoveryService(userRepo repository.UserRepository) *DiscoveryService {
	return &DiscoveryService{userRepo: userRepo}
}

// ListPublicProfiles returns public users, ordered by id. A non-empty
// availability must match exactly and is filtered in storage; a non-empty
// skill substring is matched case-insensitively against the union of a user's
// offered and wanted skill names, in memory, because it spans both partitions
// of the skills table. A user is kept if ANY skill matches. The result is the
// same whichever filter is applied first.
func (s *DiscoveryService) ListPublicProfiles(ctx context.Context, skillSubstring string, availability models.Availability) ([]models.User, error) {
	if availability != "" && !availability.Valid() {
		return nil, models.NewValidationError("Availability must be weekends, evenings, or anytime")
	}

	users, err := s.userRepo.ListPublic(ctx, availability)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(skillSubstring))
	if needle == "" {
		return users, nil
	}

	filtered := users[:0]
	for _, user := range users {
		if anySkillContains(user.Skills, needle) {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

// ViewProfile returns the user with skills preloaded. Any authenticated
// caller may view any profile by id, including private ones; only the
// discovery listing honors the visibility flag.
func (s *DiscoveryService) ViewProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByIDWithSkills(ctx, userID)
}

func anySkillContains(skills []models.Skill, needle string) bool {
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill.Name), needle) {
			return true
		}
	}
	return false
}
