package ledger

import (
	"sync"
	"time"

	"github.com/jspencer/fincast/internal/domain"
)

type snapshotKey struct {
	version  string
	asOf     string
	lookback int
}

// SnapshotCache memoizes snapshot extraction per (ledger version, as-of
// date, lookback). It is owned by the caller; nothing in this package keeps
// global state. Safe for concurrent use.
type SnapshotCache struct {
	mu        sync.Mutex
	snapshots map[snapshotKey]domain.Snapshot
}

// NewSnapshotCache creates an empty cache.
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{snapshots: make(map[snapshotKey]domain.Snapshot)}
}

// Snapshot returns the memoized snapshot for the ledger at the given date,
// extracting and storing it on first use. Ledgers with an empty Version are
// never cached, since the key could not distinguish revisions.
func (c *SnapshotCache) Snapshot(l *Ledger, asOf time.Time, lookbackMonths int) domain.Snapshot {
	if l.Version == "" {
		return Extract(l, asOf, lookbackMonths)
	}
	key := snapshotKey{version: l.Version, asOf: asOf.Format("2006-01-02"), lookback: lookbackMonths}

	c.mu.Lock()
	defer c.mu.Unlock()
	if snapshot, ok := c.snapshots[key]; ok {
		return snapshot
	}
	snapshot := Extract(l, asOf, lookbackMonths)
	c.snapshots[key] = snapshot
	return snapshot
}
