package models

import "time"

// SkillKind distinguishes the two partitions of the skills table.
type SkillKind string

const (
	// SkillKindOffered marks a skill the owner is willing to teach.
	SkillKindOffered SkillKind = "offered"
	// SkillKindWanted marks a skill the owner wants to learn.
	SkillKindWanted SkillKind = "wanted"
)

// Valid reports whether the kind is one of the known values.
func (k SkillKind) Valid() bool {
	return k == SkillKindOffered || k == SkillKindWanted
}

// Skill is a named skill owned by exactly one user. Offered and wanted
// skills share one table, partitioned by Kind.
type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Kind      SkillKind `gorm:"type:varchar(10);not null;index" json:"kind"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
