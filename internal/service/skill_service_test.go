package service

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSkill(t *testing.T) {
	repo := &skillRepoStub{
		createFn: func(_ context.Context, s *models.Skill) error {
			s.ID = 1
			return nil
		},
	}
	svc := NewSkillService(repo)

	skill, err := svc.AddSkill(context.Background(), 5, "  Woodworking ", models.SkillKindOffered)
	require.NoError(t, err)
	assert.Equal(t, "Woodworking", skill.Name)
	assert.Equal(t, uint(5), skill.UserID)
}

func TestAddSkillValidation(t *testing.T) {
	svc := NewSkillService(&skillRepoStub{})
	ctx := context.Background()

	_, err := svc.AddSkill(ctx, 5, "", models.SkillKindOffered)
	assert.True(t, models.HasCode(err, models.CodeValidation))

	_, err = svc.AddSkill(ctx, 5, "Chess", "learnable")
	assert.True(t, models.HasCode(err, models.CodeValidation))
}

func TestDeleteSkillByNonOwner(t *testing.T) {
	deleted := false
	repo := &skillRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Skill, error) {
			return &models.Skill{ID: 3, Name: "Chess", UserID: 1}, nil
		},
		deleteFn: func(context.Context, uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewSkillService(repo)

	err := svc.DeleteSkill(context.Background(), 2, 3)
	assert.True(t, models.HasCode(err, models.CodeUnauthorized), "got %v", err)
	assert.False(t, deleted, "skill must stay intact on unauthorized delete")
}

func TestDeleteSkillMissing(t *testing.T) {
	repo := &skillRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Skill, error) {
			return nil, models.NewNotFoundError("Skill", 3)
		},
	}
	svc := NewSkillService(repo)

	err := svc.DeleteSkill(context.Background(), 1, 3)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestDeleteSkillByOwner(t *testing.T) {
	repo := &skillRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Skill, error) {
			return &models.Skill{ID: 3, Name: "Chess", UserID: 1}, nil
		},
		deleteFn: func(_ context.Context, id uint) error {
			assert.Equal(t, uint(3), id)
			return nil
		},
	}
	svc := NewSkillService(repo)

	assert.NoError(t, svc.DeleteSkill(context.Background(), 1, 3))
}
