// Package models contains data structures for the application's domain models.
package models

import "time"

// Availability is the fixed set of time windows a user can offer for swaps.
type Availability string

const (
	// AvailabilityWeekends means the user is available on weekends.
	AvailabilityWeekends Availability = "weekends"
	// AvailabilityEvenings means the user is available on weekday evenings.
	AvailabilityEvenings Availability = "evenings"
	// AvailabilityAnytime means the user has no fixed availability window.
	AvailabilityAnytime Availability = "anytime"
)

// Availabilities lists every valid availability value, in display order.
var Availabilities = []Availability{AvailabilityWeekends, AvailabilityEvenings, AvailabilityAnytime}

// Valid reports whether the availability is one of the known values.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityWeekends, AvailabilityEvenings, AvailabilityAnytime:
		return true
	}
	return false
}

// User represents a member of the skill exchange.
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:100;not null" json:"name"`
	Email        string       `gorm:"size:120;unique;not null" json:"email"`
	Password     string       `gorm:"size:200;not null" json:"-"`
	Location     string       `gorm:"size:100" json:"location"`
	Availability Availability `gorm:"type:varchar(20);not null;default:'anytime'" json:"availability"`
	IsPublic     bool         `gorm:"not null;default:true" json:"is_public"`
	ProfilePhoto string       `gorm:"size:200" json:"profile_photo"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Skills       []Skill      `gorm:"foreignKey:UserID" json:"skills,omitempty"`
}

// SkillsByKind partitions the user's preloaded skills into a single kind.
func (u *User) SkillsByKind(kind SkillKind) []Skill {
	var out []Skill
	for _, s := range u.Skills {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// SkillsOffered returns the preloaded skills the user offers.
func (u *User) SkillsOffered() []Skill { return u.SkillsByKind(SkillKindOffered) }

// SkillsWanted returns the preloaded skills the user wants to learn.
func (u *User) SkillsWanted() []Skill { return u.SkillsByKind(SkillKindWanted) }
