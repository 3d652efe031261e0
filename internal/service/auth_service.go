// Package service implements the application's business logic over the
// repository layer.
package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Location     string
	Availability models.Availability
	IsPublic     bool
}

// NewAuthService returns an AuthService over the given user repository.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register validates the input, hashes the password, and persists a new user.
// The email must not already be registered; the match is case-sensitive, as
// stored.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if !in.Availability.Valid() {
		return nil, models.NewValidationError("Availability must be weekends, evenings, or anytime")
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateEmailError(in.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hashed),
		Location:     in.Location,
		Availability: in.Availability,
		IsPublic:     in.IsPublic,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user. Unknown email
// and wrong password produce the same error so the response does not leak
// which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}
