package reports

import (
	"context"
	"time"
)

type Repository interface {
	// Entries returns the organization's ledger rows in [from, to).
	Entries(ctx context.Context, orgID string, from, to time.Time) ([]EntryRow, error)
	// ApprovedMembers returns the organization's APPROVED users, join time ascending.
	ApprovedMembers(ctx context.Context, orgID string) ([]MemberRef, error)
}
