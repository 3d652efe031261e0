// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// skillPool is a curated list so that seeded profiles overlap enough for
// skill-filter searches and swap proposals to find matches.
var skillPool = []string{
	"Guitar", "Piano", "Photography", "Cooking", "Baking", "Gardening",
	"Python", "Web Design", "Graphic Design", "Spanish", "French",
	"Yoga", "Chess", "Carpentry", "Knitting", "Video Editing",
	"Public Speaking", "Accounting", "Car Maintenance", "Drawing",
}

// Seeder creates demo users, skills, and swap requests.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Child tables go first so foreign keys
// stay satisfied on databases that enforce them.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"swap_requests", "skills", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// CreateUser persists a fake user. All seeded accounts share the password
// "password123" so any of them can be used to log in during development.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Password:     string(hashed),
		Location:     gofakeit.City(),
		Availability: models.Availabilities[s.r.Intn(len(models.Availabilities))],
		IsPublic:     s.r.Intn(10) > 1, // most profiles public, a few private
		ProfilePhoto: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSkills attaches n distinct skills from the pool to a user, split
// between offered and wanted.
func (s *Seeder) CreateSkills(user *models.User, n int) ([]models.Skill, error) {
	picks := s.r.Perm(len(skillPool))[:n]

	skills := make([]models.Skill, 0, n)
	for i, p := range picks {
		kind := models.SkillKindOffered
		if i%2 == 1 {
			kind = models.SkillKindWanted
		}
		skills = append(skills, models.Skill{
			Name:   skillPool[p],
			Kind:   kind,
			UserID: user.ID,
		})
	}
	if err := s.db.Create(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSwapRequest builds a plausible pending or decided request between
// two users from their seeded skills.
func (s *Seeder) CreateSwapRequest(requester, target *models.User) (*models.SwapRequest, error) {
	var offered, requested []models.Skill
	if err := s.db.Where("user_id = ? AND kind = ?", requester.ID, models.SkillKindOffered).
		Find(&offered).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("user_id = ? AND kind = ?", target.ID, models.SkillKindOffered).
		Find(&requested).Error; err != nil {
		return nil, err
	}
	if len(offered) == 0 || len(requested) == 0 {
		return nil, nil
	}

	statuses := []models.SwapStatus{
		models.SwapStatusPending, models.SwapStatusPending,
		models.SwapStatusAccepted, models.SwapStatusRejected,
	}
	swap := &models.SwapRequest{
		RequesterID:    requester.ID,
		TargetID:       target.ID,
		OfferedSkill:   offered[s.r.Intn(len(offered))].Name,
		RequestedSkill: requested[s.r.Intn(len(requested))].Name,
		Message:        gofakeit.Sentence(8),
		Status:         statuses[s.r.Intn(len(statuses))],
	}
	if err := s.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// Run seeds numUsers accounts with skills and a mesh of swap requests
// between them.
func (s *Seeder) Run(numUsers int) error {
	users := make([]*models.User, 0, numUsers)

	// A fixed account for demos and manual testing.
	demo, err := s.CreateUser(func(u *models.User) {
		u.Name = "Demo User"
		u.Email = "demo@skillswap.local"
		u.IsPublic = true
	})
	if err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}
	users = append(users, demo)

	for i := 1; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		if _, err := s.CreateSkills(user, 2+s.r.Intn(4)); err != nil {
			return fmt.Errorf("creating skills for user %d: %w", user.ID, err)
		}
	}

	swaps := 0
	for _, requester := range users {
		if s.r.Intn(2) == 0 {
			continue
		}
		target := users[s.r.Intn(len(users))]
		if target.ID == requester.ID {
			continue
		}
		swap, err := s.CreateSwapRequest(requester, target)
		if err != nil {
			return fmt.Errorf("creating swap request: %w", err)
		}
		if swap != nil {
			swaps++
		}
	}

	log.Printf("Seeded %d users with skills and %d swap requests", len(users), swaps)
	log.Println("Demo login: demo@skillswap.local / password123")
	return nil
}
