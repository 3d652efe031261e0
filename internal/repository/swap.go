package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error)
	ListSent(ctx context.Context, userID uint) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uint, status models.SwapStatus) error
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Target").
		First(&swap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return r.list(ctx, "target_id = ?", userID)
}

func (r *swapRepository) ListSent(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return r.list(ctx, "requester_id = ?", userID)
}

func (r *swapRepository) list(ctx context.Context, cond string, userID uint) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where(cond, userID).
		Preload("Requester").
		Preload("Target").
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

// UpdateStatus moves a pending request to a terminal status. The pending guard
// lives in the WHERE clause so two concurrent decisions cannot both win.
func (r *swapRepository) UpdateStatus(ctx context.Context, id uint, status models.SwapStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Update("status", status)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewInvalidStateError("Swap request is not pending")
	}
	return nil
}
