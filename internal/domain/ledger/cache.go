package ledger

import "time"

// Cache keeps category lists warm; the default set changes only by
// migration and custom categories change rarely.
type Cache interface {
	GetByOrgID(orgID string) ([]Category, bool)
	SetByOrgID(orgID string, categories []Category, ttl time.Duration)
	DeleteByOrgID(orgID string)
}

type noopCache struct{}

func (noopCache) GetByOrgID(string) ([]Category, bool) { return nil, false }

func (noopCache) SetByOrgID(string, []Category, time.Duration) {}

func (noopCache) DeleteByOrgID(string) {}
