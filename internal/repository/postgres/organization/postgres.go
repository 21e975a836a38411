package organization

import (
	"context"
	"errors"
	"time"

	orgdomain "family-ledger-go/internal/domain/organization"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(orgdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateOrganization(ctx context.Context, org *orgdomain.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, orgID string) (*orgdomain.Organization, error) {
	var org orgdomain.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orgdomain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*orgdomain.Organization, error) {
	var org orgdomain.Organization
	if err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orgdomain.ErrCodeNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *PostgresRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&orgdomain.Organization{}).
		Where("referral_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) UpdateCode(ctx context.Context, orgID, code string) error {
	return r.db.WithContext(ctx).
		Model(&orgdomain.Organization{}).
		Where("id = ?", orgID).
		Updates(map[string]interface{}{
			"referral_code": code,
			"updated_at":    time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) SetMembership(ctx context.Context, userID, orgID, role, status string) error {
	result := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"organization_id": orgID,
			"role":            role,
			"status":          status,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return orgdomain.ErrMemberNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateMemberStatus(ctx context.Context, userID, status string) error {
	result := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return orgdomain.ErrMemberNotFound
	}
	return nil
}

type memberRow struct {
	ID             string    `gorm:"column:id"`
	Name           string    `gorm:"column:name"`
	Email          *string   `gorm:"column:email"`
	Phone          *string   `gorm:"column:phone"`
	Role           string    `gorm:"column:role"`
	Status         string    `gorm:"column:status"`
	OrganizationID *string   `gorm:"column:organization_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (r *PostgresRepository) GetMember(ctx context.Context, userID string) (*orgdomain.Member, error) {
	var row memberRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orgdomain.ErrMemberNotFound
		}
		return nil, err
	}
	member := toMember(row)
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, orgID string) ([]orgdomain.Member, error) {
	return r.listMembers(ctx, orgID, "")
}

func (r *PostgresRepository) ListPendingMembers(ctx context.Context, orgID string) ([]orgdomain.Member, error) {
	return r.listMembers(ctx, orgID, "PENDING")
}

func (r *PostgresRepository) listMembers(ctx context.Context, orgID, status string) ([]orgdomain.Member, error) {
	query := r.db.WithContext(ctx).
		Table("users").
		Where("organization_id = ?", orgID).
		Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []memberRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]orgdomain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, toMember(row))
	}
	return members, nil
}

func toMember(row memberRow) orgdomain.Member {
	return orgdomain.Member{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		Role:           row.Role,
		Status:         row.Status,
		OrganizationID: row.OrganizationID,
		JoinedAt:       row.CreatedAt,
	}
}
