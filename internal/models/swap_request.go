package models

import "time"

// SwapStatus defines lifecycle states for swap requests.
type SwapStatus string

const (
	// SwapStatusPending indicates the request is awaiting the target's decision.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the target accepted the swap.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the target declined the swap.
	SwapStatusRejected SwapStatus = "rejected"
)

// SwapRequest is one user's proposal to exchange an offered skill for a
// skill of another user. Skill names are recorded as plain strings so the
// request keeps its meaning even if the referenced skill rows are deleted
// later. Requests are never deleted; pending is the only non-terminal state.
type SwapRequest struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	RequesterID    uint       `gorm:"not null;index" json:"requester_id"`
	Requester      *User      `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	TargetID       uint       `gorm:"not null;index" json:"target_id"`
	Target         *User      `gorm:"foreignKey:TargetID" json:"target,omitempty"`
	OfferedSkill   string     `gorm:"size:100;not null" json:"offered_skill"`
	RequestedSkill string     `gorm:"size:100;not null" json:"requested_skill"`
	Message        string     `gorm:"type:text" json:"message"`
	Status         SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (SwapRequest) TableName() string {
	return "swap_requests"
}
