package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// SwapService manages the swap request workflow: propose, list, accept, reject.
type SwapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
}

// CreateSwapInput carries the request-swap form fields.
type CreateSwapInput struct {
	RequesterID    uint
	TargetID       uint
	OfferedSkill   string
	RequestedSkill string
	Message        string
}

// NewSwapService returns a SwapService over the given repositories.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository) *SwapService {
	return &SwapService{swapRepo: swapRepo, userRepo: userRepo}
}

// CreateSwap records a pending swap proposal from the requester to the target.
// Skill names are stored as plain strings so the request keeps its meaning if
// the underlying skill rows are deleted later.
func (s *SwapService) CreateSwap(ctx context.Context, in CreateSwapInput) (*models.SwapRequest, error) {
	if in.RequesterID == in.TargetID {
		return nil, models.NewValidationError("You cannot propose a swap with yourself")
	}
	offered := strings.TrimSpace(in.OfferedSkill)
	requested := strings.TrimSpace(in.RequestedSkill)
	if offered == "" || requested == "" {
		return nil, models.NewValidationError("Offered and requested skills are required")
	}
	if err := validation.ValidateMessage(in.Message); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Both users must exist at creation time.
	if _, err := s.userRepo.GetByID(ctx, in.TargetID); err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		RequesterID:    in.RequesterID,
		TargetID:       in.TargetID,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        in.Message,
		Status:         models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

// ListIncoming returns swap requests targeting the user, newest first.
func (s *SwapService) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.swapRepo.ListIncoming(ctx, userID)
}

// ListSent returns swap requests the user has proposed, newest first.
func (s *SwapService) ListSent(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.swapRepo.ListSent(ctx, userID)
}

// Accept moves a pending request to accepted. Only the target user may decide.
func (s *SwapService) Accept(ctx context.Context, requestID, actorID uint) (*models.SwapRequest, error) {
	return s.decide(ctx, requestID, actorID, models.SwapStatusAccepted)
}

// Reject moves a pending request to rejected. Only the target user may decide.
func (s *SwapService) Reject(ctx context.Context, requestID, actorID uint) (*models.SwapRequest, error) {
	return s.decide(ctx, requestID, actorID, models.SwapStatusRejected)
}

func (s *SwapService) decide(ctx context.Context, requestID, actorID uint, status models.SwapStatus) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if swap.TargetID != actorID {
		return nil, models.NewUnauthorizedError("Only the requested user can decide this swap")
	}
	if swap.Status != models.SwapStatusPending {
		return nil, models.NewInvalidStateError("Swap request is not pending")
	}

	if err := s.swapRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	return s.swapRepo.GetByID(ctx, requestID)
}
