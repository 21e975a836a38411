package ledger

import "time"

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

type Entry struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	UserID         string    `gorm:"type:uuid;not null;index"`
	OrganizationID string    `gorm:"type:uuid;not null;index"`
	Amount         float64   `gorm:"type:numeric(12,2);not null"`
	Type           string    `gorm:"type:varchar(16);not null"`
	Date           time.Time `gorm:"not null"`
	CategoryID     *string   `gorm:"type:uuid"`
	CustomCategory *string
	Note           *string
	ReceiptURL     *string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

type Category struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	IsDefault      bool      `gorm:"not null;default:false"`
	OrganizationID *string   `gorm:"type:uuid;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// DetailedEntry joins an entry with display names for reporting.
type DetailedEntry struct {
	Entry
	CategoryName *string
	UserName     string
}

type RecordInput struct {
	UserID         string
	OrganizationID string
	Amount         float64
	Type           string
	Date           *time.Time
	CategoryID     string
	CustomCategory string
	Note           string
	ReceiptURL     string
}
