package ledger

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateEntry(ctx context.Context, entry *Entry) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	ListDetailed(ctx context.Context, orgID string, from, to time.Time) ([]DetailedEntry, error)
	CategoryExists(ctx context.Context, orgID, categoryID string) (bool, error)
	ListCategories(ctx context.Context, orgID string) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
}
