package reports

import (
	"context"
	"time"

	reportsdomain "family-ledger-go/internal/domain/reports"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Entries(ctx context.Context, orgID string, from, to time.Time) ([]reportsdomain.EntryRow, error) {
	var rows []struct {
		UserID   string  `gorm:"column:user_id"`
		UserName string  `gorm:"column:user_name"`
		Amount   float64 `gorm:"column:amount"`
		Type     string  `gorm:"column:type"`
	}

	if err := r.db.WithContext(ctx).
		Table("entries").
		Select("entries.user_id, users.name AS user_name, entries.amount, entries.type").
		Joins("join users on users.id = entries.user_id").
		Where("entries.organization_id = ? AND entries.date >= ? AND entries.date < ?", orgID, from, to).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]reportsdomain.EntryRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, reportsdomain.EntryRow{
			UserID:   row.UserID,
			UserName: row.UserName,
			Amount:   row.Amount,
			Type:     row.Type,
		})
	}
	return result, nil
}

func (r *PostgresRepository) ApprovedMembers(ctx context.Context, orgID string) ([]reportsdomain.MemberRef, error) {
	var rows []struct {
		ID   string `gorm:"column:id"`
		Name string `gorm:"column:name"`
	}

	if err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name").
		Where("organization_id = ? AND status = ?", orgID, "APPROVED").
		Order("created_at asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]reportsdomain.MemberRef, 0, len(rows))
	for _, row := range rows {
		result = append(result, reportsdomain.MemberRef{ID: row.ID, Name: row.Name})
	}
	return result, nil
}
