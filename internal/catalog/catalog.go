package catalog

import (
	"sync"
	"time"

	"github.com/schemehub/schemehub/internal/domain"
)

// Catalog holds the in-memory snapshot of scheme records.
//
// The snapshot is replaced wholesale on reload and never mutated in place, so
// readers can hold on to a returned slice safely. Matching, filtering and
// recommending all run over the slice returned by Snapshot.
//
// Until the first successful load completes, Loaded reports false and
// consumers must fail with a retryable error instead of serving an empty
// catalog silently.
type Catalog struct {
	mu         sync.RWMutex
	schemes    []*domain.Scheme          // catalog order, as loaded
	byID       map[string]*domain.Scheme // id -> record
	loaded     bool
	lastReload time.Time
}

// New creates an empty, not-yet-loaded catalog.
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]*domain.Scheme),
	}
}

// Replace swaps in a new snapshot and marks the catalog loaded.
func (c *Catalog) Replace(schemes []*domain.Scheme) {
	byID := make(map[string]*domain.Scheme, len(schemes))
	for _, s := range schemes {
		byID[s.ID.String()] = s
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.schemes = schemes
	c.byID = byID
	c.loaded = true
	c.lastReload = time.Now()
}

// Snapshot returns the current records in catalog order. The returned slice
// must not be modified.
func (c *Catalog) Snapshot() []*domain.Scheme {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.schemes
}

// Get retrieves a record by id.
func (c *Catalog) Get(id string) (*domain.Scheme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.byID[id]
	return s, ok
}

// Loaded reports whether at least one load has succeeded.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded
}

// Count returns the number of records in the snapshot.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.schemes)
}

// LastReload returns the timestamp of the last successful load.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
