package ledger

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeLedgerRepo struct {
	entries           []Entry
	categories        map[string]*Category
	listCategoryCalls int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{categories: make(map[string]*Category)}
}

func (r *fakeLedgerRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeLedgerRepo) CreateEntry(ctx context.Context, entry *Entry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeLedgerRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	result := make([]Entry, 0)
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) ListDetailed(ctx context.Context, orgID string, from, to time.Time) ([]DetailedEntry, error) {
	result := make([]DetailedEntry, 0)
	for _, entry := range r.entries {
		if entry.OrganizationID == orgID && !entry.Date.Before(from) && entry.Date.Before(to) {
			result = append(result, DetailedEntry{Entry: entry})
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) CategoryExists(ctx context.Context, orgID, categoryID string) (bool, error) {
	category, ok := r.categories[categoryID]
	if !ok {
		return false, nil
	}
	if category.IsDefault {
		return true, nil
	}
	return category.OrganizationID != nil && *category.OrganizationID == orgID, nil
}

func (r *fakeLedgerRepo) ListCategories(ctx context.Context, orgID string) ([]Category, error) {
	r.listCategoryCalls++
	result := make([]Category, 0)
	for _, category := range r.categories {
		if category.IsDefault || (category.OrganizationID != nil && *category.OrganizationID == orgID) {
			result = append(result, *category)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) CreateCategory(ctx context.Context, category *Category) error {
	r.categories[category.ID] = category
	return nil
}

type mapCache struct {
	items map[string][]Category
}

func (c *mapCache) GetByOrgID(orgID string) ([]Category, bool) {
	value, ok := c.items[orgID]
	return value, ok
}

func (c *mapCache) SetByOrgID(orgID string, categories []Category, ttl time.Duration) {
	c.items[orgID] = categories
}

func (c *mapCache) DeleteByOrgID(orgID string) {
	delete(c.items, orgID)
}

func TestRecordDefaultsDate(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)
	fixed := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Record(context.Background(), RecordInput{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Amount:         50,
		Type:           TypeExpense,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !created.Date.Equal(fixed) {
		t.Fatalf("expected date defaulted to %v, got %v", fixed, created.Date)
	}
	if created.OrganizationID != "org-1" {
		t.Fatalf("expected org-1, got %s", created.OrganizationID)
	}
}

func TestRecordValidation(t *testing.T) {
	svc := NewService(newFakeLedgerRepo())
	ctx := context.Background()

	_, err := svc.Record(ctx, RecordInput{UserID: "u", OrganizationID: "o", Amount: 0, Type: TypeExpense})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Record(ctx, RecordInput{UserID: "u", OrganizationID: "o", Amount: -5, Type: TypeIncome})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Record(ctx, RecordInput{UserID: "u", OrganizationID: "o", Amount: 10, Type: "TRANSFER"})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestRecordUnknownCategory(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), RecordInput{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Amount:         10,
		Type:           TypeExpense,
		CategoryID:     "no-such-category",
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatal("entry persisted despite unknown category")
	}
}

func TestRecordForeignOrgCategoryRejected(t *testing.T) {
	repo := newFakeLedgerRepo()
	otherOrg := "org-2"
	repo.categories["cat-1"] = &Category{ID: "cat-1", Name: "Pets", OrganizationID: &otherOrg}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), RecordInput{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Amount:         10,
		Type:           TypeExpense,
		CategoryID:     "cat-1",
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListCategoriesUsesCache(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.categories["cat-1"] = &Category{ID: "cat-1", Name: "Food", IsDefault: true}
	cache := &mapCache{items: make(map[string][]Category)}
	svc := NewServiceWithCache(repo, cache, time.Minute)
	ctx := context.Background()

	if _, err := svc.ListCategories(ctx, "org-1"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := svc.ListCategories(ctx, "org-1"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCategoryCalls != 1 {
		t.Fatalf("expected 1 repo read, got %d", repo.listCategoryCalls)
	}

	// Creating a category invalidates the cached list.
	if _, err := svc.CreateCategory(ctx, "org-1", "Travel"); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.ListCategories(ctx, "org-1"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCategoryCalls != 2 {
		t.Fatalf("expected cache invalidation to force a reread, got %d reads", repo.listCategoryCalls)
	}
}
