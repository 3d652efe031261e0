package service

import (
	"context"

	"skillswap/internal/models"
)

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByIDWithSkillsFn func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	createFn            func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	listPublicFn        func(context.Context, models.Availability) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithSkills(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithSkillsFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListPublic(ctx context.Context, availability models.Availability) ([]models.User, error) {
	return s.listPublicFn(ctx, availability)
}

type skillRepoStub struct {
	createFn     func(context.Context, *models.Skill) error
	getByIDFn    func(context.Context, uint) (*models.Skill, error)
	listByUserFn func(context.Context, uint) ([]models.Skill, error)
	deleteFn     func(context.Context, uint) error
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *skillRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type swapRepoStub struct {
	createFn       func(context.Context, *models.SwapRequest) error
	getByIDFn      func(context.Context, uint) (*models.SwapRequest, error)
	listIncomingFn func(context.Context, uint) ([]models.SwapRequest, error)
	listSentFn     func(context.Context, uint) ([]models.SwapRequest, error)
	updateStatusFn func(context.Context, uint, models.SwapStatus) error
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.listIncomingFn(ctx, userID)
}
func (s *swapRepoStub) ListSent(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.listSentFn(ctx, userID)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, id uint, status models.SwapStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
