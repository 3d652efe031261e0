package service

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingSwap() *models.SwapRequest {
	return &models.SwapRequest{
		ID:             10,
		RequesterID:    1,
		TargetID:       2,
		OfferedSkill:   "Python",
		RequestedSkill: "Cooking",
		Status:         models.SwapStatusPending,
	}
}

func TestCreateSwap(t *testing.T) {
	swapRepo := &swapRepoStub{
		createFn: func(_ context.Context, s *models.SwapRequest) error {
			s.ID = 10
			return nil
		},
	}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	svc := NewSwapService(swapRepo, userRepo)

	swap, err := svc.CreateSwap(context.Background(), CreateSwapInput{
		RequesterID:    1,
		TargetID:       2,
		OfferedSkill:   " Python ",
		RequestedSkill: "Cooking",
		Message:        "Weekend trade?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, swap.Status)
	assert.Equal(t, "Python", swap.OfferedSkill)
}

func TestCreateSwapWithSelf(t *testing.T) {
	svc := NewSwapService(&swapRepoStub{}, &userRepoStub{})

	_, err := svc.CreateSwap(context.Background(), CreateSwapInput{
		RequesterID: 1, TargetID: 1,
		OfferedSkill: "Python", RequestedSkill: "Cooking",
	})
	assert.True(t, models.HasCode(err, models.CodeValidation))
}

func TestCreateSwapMissingSkills(t *testing.T) {
	svc := NewSwapService(&swapRepoStub{}, &userRepoStub{})

	_, err := svc.CreateSwap(context.Background(), CreateSwapInput{
		RequesterID: 1, TargetID: 2, OfferedSkill: "  ",
	})
	assert.True(t, models.HasCode(err, models.CodeValidation))
}

func TestCreateSwapTargetMissing(t *testing.T) {
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
	svc := NewSwapService(&swapRepoStub{}, userRepo)

	_, err := svc.CreateSwap(context.Background(), CreateSwapInput{
		RequesterID: 1, TargetID: 99,
		OfferedSkill: "Python", RequestedSkill: "Cooking",
	})
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestAcceptByTarget(t *testing.T) {
	updated := models.SwapStatus("")
	swapRepo := &swapRepoStub{
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) {
			s := pendingSwap()
			if updated != "" {
				s.Status = updated
			}
			return s, nil
		},
		updateStatusFn: func(_ context.Context, _ uint, status models.SwapStatus) error {
			updated = status
			return nil
		},
	}
	svc := NewSwapService(swapRepo, &userRepoStub{})

	swap, err := svc.Accept(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusAccepted, swap.Status)
}

func TestAcceptByNonTarget(t *testing.T) {
	swapRepo := &swapRepoStub{
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) {
			return pendingSwap(), nil
		},
	}
	svc := NewSwapService(swapRepo, &userRepoStub{})

	// Neither the requester nor a stranger may decide.
	for _, actor := range []uint{1, 3} {
		_, err := svc.Accept(context.Background(), 10, actor)
		assert.True(t, models.HasCode(err, models.CodeUnauthorized), "actor %d: got %v", actor, err)
	}
}

func TestRejectNonPending(t *testing.T) {
	swapRepo := &swapRepoStub{
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) {
			s := pendingSwap()
			s.Status = models.SwapStatusAccepted
			return s, nil
		},
	}
	svc := NewSwapService(swapRepo, &userRepoStub{})

	_, err := svc.Reject(context.Background(), 10, 2)
	assert.True(t, models.HasCode(err, models.CodeInvalidState), "got %v", err)
}

func TestRejectByTarget(t *testing.T) {
	updated := models.SwapStatus("")
	swapRepo := &swapRepoStub{
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) {
			s := pendingSwap()
			if updated != "" {
				s.Status = updated
			}
			return s, nil
		},
		updateStatusFn: func(_ context.Context, _ uint, status models.SwapStatus) error {
			updated = status
			return nil
		},
	}
	svc := NewSwapService(swapRepo, &userRepoStub{})

	swap, err := svc.Reject(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusRejected, swap.Status)
}
