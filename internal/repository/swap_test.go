package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSwap(t *testing.T, repo SwapRepository, requesterID, targetID uint) *models.SwapRequest {
	t.Helper()
	swap := &models.SwapRequest{
		RequesterID:    requesterID,
		TargetID:       targetID,
		OfferedSkill:   "Python",
		RequestedSkill: "Cooking",
		Message:        "Trade?",
		Status:         models.SwapStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), swap))
	return swap
}

func TestSwapCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := newUser("alice@example.com")
	bob := newUser("bob@example.com")
	require.NoError(t, userRepo.Create(ctx, alice))
	require.NoError(t, userRepo.Create(ctx, bob))

	swap := seedSwap(t, repo, alice.ID, bob.ID)

	got, err := repo.GetByID(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, got.Status)
	require.NotNil(t, got.Requester)
	require.NotNil(t, got.Target)
	assert.Equal(t, "alice@example.com", got.Requester.Email)
	assert.Equal(t, "bob@example.com", got.Target.Email)
}

func TestSwapGetMissing(t *testing.T) {
	repo := NewSwapRepository(openTestDB(t))

	_, err := repo.GetByID(context.Background(), 404)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestSwapListIncomingAndSent(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := newUser("alice@example.com")
	bob := newUser("bob@example.com")
	require.NoError(t, userRepo.Create(ctx, alice))
	require.NoError(t, userRepo.Create(ctx, bob))

	seedSwap(t, repo, alice.ID, bob.ID)

	incoming, err := repo.ListIncoming(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)

	sent, err := repo.ListSent(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	incoming, err = repo.ListIncoming(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, incoming)
}

func TestSwapUpdateStatusOnlyOncePending(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := newUser("alice@example.com")
	bob := newUser("bob@example.com")
	require.NoError(t, userRepo.Create(ctx, alice))
	require.NoError(t, userRepo.Create(ctx, bob))

	swap := seedSwap(t, repo, alice.ID, bob.ID)

	require.NoError(t, repo.UpdateStatus(ctx, swap.ID, models.SwapStatusAccepted))

	got, err := repo.GetByID(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusAccepted, got.Status)

	// Accepted is terminal; a second decision is rejected.
	err = repo.UpdateStatus(ctx, swap.ID, models.SwapStatusRejected)
	assert.True(t, models.HasCode(err, models.CodeInvalidState), "got %v", err)
}
