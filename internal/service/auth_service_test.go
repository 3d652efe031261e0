package service

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:         "Alice",
		Email:        "alice@example.com",
		Password:     "swap skills securely",
		Location:     "Lisbon",
		Availability: models.AvailabilityWeekends,
		IsPublic:     true,
	}
}

func TestRegisterSuccess(t *testing.T) {
	var created *models.User
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsPublic)

	// Password is stored as a bcrypt hash, never plaintext.
	assert.NotEqual(t, "swap skills securely", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(created.Password), []byte("swap skills securely")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&userRepoStub{})

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"unknown availability", func(in *RegisterInput) { in.Availability = "mornings" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			assert.True(t, models.HasCode(err, models.CodeValidation), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			return &models.User{ID: 1, Email: "alice@example.com"}, nil
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	assert.True(t, models.HasCode(err, models.CodeDuplicateEmail), "got %v", err)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "alice@example.com" {
				return &models.User{ID: 1, Email: email, Password: string(hashed)}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Login(ctx, "alice@example.com", "correct password")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong password")
	assert.True(t, models.HasCode(err, models.CodeInvalidCredentials), "got %v", err)

	_, err = svc.Login(ctx, "nobody@example.com", "correct password")
	assert.True(t, models.HasCode(err, models.CodeInvalidCredentials), "got %v", err)
}
