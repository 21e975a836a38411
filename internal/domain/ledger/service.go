package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: noopCache{},
		now:   time.Now,
	}
}

func NewServiceWithCache(repo Repository, cache Cache, cacheTTL time.Duration) *Service {
	s := NewService(repo)
	if cache != nil && cacheTTL > 0 {
		s.cache = cache
		s.cacheTTL = cacheTTL
	}
	return s
}

// Record persists one income or expense entry for the user's organization.
// Entries are immutable once created; there is no update or delete path.
func (s *Service) Record(ctx context.Context, input RecordInput) (*Entry, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.Type != TypeIncome && input.Type != TypeExpense {
		return nil, ErrInvalidType
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	entry := Entry{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		OrganizationID: input.OrganizationID,
		Amount:         input.Amount,
		Type:           input.Type,
		Date:           date,
	}
	if v := strings.TrimSpace(input.CategoryID); v != "" {
		entry.CategoryID = &v
	}
	if v := strings.TrimSpace(input.CustomCategory); v != "" {
		entry.CustomCategory = &v
	}
	if v := strings.TrimSpace(input.Note); v != "" {
		entry.Note = &v
	}
	if v := strings.TrimSpace(input.ReceiptURL); v != "" {
		entry.ReceiptURL = &v
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if entry.CategoryID != nil {
			ok, err := tx.CategoryExists(ctx, input.OrganizationID, *entry.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCategoryNotFound
			}
		}

		return tx.CreateEntry(ctx, &entry)
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *Service) ListOwn(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListDetailed returns the organization's entries in [from, to) with
// category and author names for display.
func (s *Service) ListDetailed(ctx context.Context, orgID string, from, to time.Time) ([]DetailedEntry, error) {
	return s.repo.ListDetailed(ctx, orgID, from, to)
}

// ListCategories returns the global defaults plus the organization's own
// categories, name ascending.
func (s *Service) ListCategories(ctx context.Context, orgID string) ([]Category, error) {
	if cached, ok := s.cache.GetByOrgID(orgID); ok {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx, orgID)
	if err != nil {
		return nil, err
	}

	s.cache.SetByOrgID(orgID, categories, s.cacheTTL)
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, orgID, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters")
	}

	category := Category{
		ID:             uuid.NewString(),
		Name:           name,
		IsDefault:      false,
		OrganizationID: &orgID,
	}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	s.cache.DeleteByOrgID(orgID)
	return &category, nil
}
