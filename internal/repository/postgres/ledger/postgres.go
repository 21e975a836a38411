package ledger

import (
	"context"
	"time"

	ledgerdomain "family-ledger-go/internal/domain/ledger"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(ledgerdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateEntry(ctx context.Context, entry *ledgerdomain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]ledgerdomain.Entry, error) {
	var entries []ledgerdomain.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) ListDetailed(ctx context.Context, orgID string, from, to time.Time) ([]ledgerdomain.DetailedEntry, error) {
	type detailedRow struct {
		ledgerdomain.Entry
		CategoryName *string `gorm:"column:category_name"`
		UserName     string  `gorm:"column:user_name"`
	}

	var rows []detailedRow
	if err := r.db.WithContext(ctx).
		Table("entries").
		Select("entries.*, categories.name AS category_name, users.name AS user_name").
		Joins("left join categories on categories.id = entries.category_id").
		Joins("join users on users.id = entries.user_id").
		Where("entries.organization_id = ? AND entries.date >= ? AND entries.date < ?", orgID, from, to).
		Order("entries.date desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ledgerdomain.DetailedEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, ledgerdomain.DetailedEntry{
			Entry:        row.Entry,
			CategoryName: row.CategoryName,
			UserName:     row.UserName,
		})
	}
	return result, nil
}

func (r *PostgresRepository) CategoryExists(ctx context.Context, orgID, categoryID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledgerdomain.Category{}).
		Where("id = ? AND (is_default OR organization_id = ?)", categoryID, orgID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context, orgID string) ([]ledgerdomain.Category, error) {
	query := r.db.WithContext(ctx).Model(&ledgerdomain.Category{})
	if orgID != "" {
		query = query.Where("is_default OR organization_id = ?", orgID)
	} else {
		query = query.Where("is_default")
	}

	var categories []ledgerdomain.Category
	if err := query.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *ledgerdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
