package seed

import (
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunSeedsUsersSkillsAndSwaps(t *testing.T) {
	db := openTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(8))

	var userCount, skillCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Skill{}).Count(&skillCount).Error)
	assert.EqualValues(t, 8, userCount)
	assert.GreaterOrEqual(t, skillCount, int64(16), "every user gets at least two skills")

	var demo models.User
	require.NoError(t, db.Where("email = ?", "demo@skillswap.local").First(&demo).Error)
	assert.True(t, demo.IsPublic)
}

func TestCreateSwapRequestUsesOfferedSkills(t *testing.T) {
	db := openTestDB(t)
	s := NewSeeder(db)

	alice, err := s.CreateUser()
	require.NoError(t, err)
	bob, err := s.CreateUser()
	require.NoError(t, err)

	_, err = s.CreateSkills(alice, 4)
	require.NoError(t, err)
	_, err = s.CreateSkills(bob, 4)
	require.NoError(t, err)

	swap, err := s.CreateSwapRequest(alice, bob)
	require.NoError(t, err)
	require.NotNil(t, swap)

	var offered models.Skill
	err = db.Where("user_id = ? AND name = ? AND kind = ?",
		alice.ID, swap.OfferedSkill, models.SkillKindOffered).First(&offered).Error
	assert.NoError(t, err, "the offered skill should come from the requester's offered list")
}

func TestClearAllRemovesEverything(t *testing.T) {
	db := openTestDB(t)
	s := NewSeeder(db)
	require.NoError(t, s.Run(5))

	require.NoError(t, s.ClearAll())

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)
}
