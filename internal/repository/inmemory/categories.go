package inmemory

import (
	"sync"
	"time"

	ledgerdomain "family-ledger-go/internal/domain/ledger"
)

// CategoriesCache is a TTL cache of category lists keyed by organization.
type CategoriesCache struct {
	mu    sync.RWMutex
	items map[string]categoriesItem
}

type categoriesItem struct {
	value     []ledgerdomain.Category
	expiresAt time.Time
}

func NewCategoriesCache() *CategoriesCache {
	return &CategoriesCache{
		items: make(map[string]categoriesItem),
	}
}

func (c *CategoriesCache) GetByOrgID(orgID string) ([]ledgerdomain.Category, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[orgID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[orgID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, orgID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneCategories(item.value), true
}

func (c *CategoriesCache) SetByOrgID(orgID string, categories []ledgerdomain.Category, ttl time.Duration) {
	if ttl <= 0 {
		c.DeleteByOrgID(orgID)
		return
	}

	c.mu.Lock()
	c.items[orgID] = categoriesItem{
		value:     cloneCategories(categories),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *CategoriesCache) DeleteByOrgID(orgID string) {
	c.mu.Lock()
	delete(c.items, orgID)
	c.mu.Unlock()
}

func cloneCategories(categories []ledgerdomain.Category) []ledgerdomain.Category {
	if categories == nil {
		return nil
	}
	cloned := make([]ledgerdomain.Category, len(categories))
	for i := range categories {
		cloned[i] = categories[i]
		if categories[i].OrganizationID != nil {
			orgID := *categories[i].OrganizationID
			cloned[i].OrganizationID = &orgID
		}
	}
	return cloned
}
