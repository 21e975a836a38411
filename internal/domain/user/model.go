package user

import "time"

const (
	RoleMember = "MEMBER"
	RoleParent = "PARENT"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

type User struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	Email          *string   `gorm:"uniqueIndex"`
	Phone          *string   `gorm:"uniqueIndex"`
	PasswordHash   string    `gorm:"not null"`
	Role           string    `gorm:"type:varchar(16);not null"`
	Status         string    `gorm:"type:varchar(16);not null"`
	OrganizationID *string   `gorm:"type:uuid;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type LoginInput struct {
	Email    string
	Phone    string
	Password string
}
