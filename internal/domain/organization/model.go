package organization

import "time"

const (
	roleMember = "MEMBER"
	roleParent = "PARENT"

	statusPending  = "PENDING"
	statusApproved = "APPROVED"
)

type Organization struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	ReferralCode string    `gorm:"size:16;not null;uniqueIndex"`
	OwnerID      string    `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Member is a projection of the users table scoped to membership concerns.
type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	OrganizationID *string   `json:"-"`
	JoinedAt       time.Time `json:"joinedAt"`
}
