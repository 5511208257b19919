// Package membership holds a node's eventually consistent view of the cluster.
//
// A Table stores at most one record per peer address, never stores a record
// for the host itself, and only ever grows: records are inserted on first
// sighting and afterwards replaced by fresher ones, never removed. Merging
// two partial views is a union in which the higher epoch wins and ties keep
// the record already held, which makes Merge idempotent and, for consistent
// inputs, order independent.
package membership

import (
	"sync"

	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/peer"
	"go.uber.org/zap"
)

// Table is the concurrency-safe membership state shared by the gossip
// scheduler and the gossip server.
type Table struct {
	Config
	mu        sync.RWMutex
	peers     peer.Group
	published *peer.Record
}

// New opens a table for the given host. The table starts empty.
func New(host peer.Host, clock *epoch.Clock, cfg Config) *Table {
	cfg.Host, cfg.Clock = host, clock
	cfg = cfg.Merge(DefaultConfig())
	return &Table{Config: cfg, peers: make(peer.Group)}
}

// Stats summarizes the effect of a single Merge.
type Stats struct {
	// Added is the number of newly discovered peers.
	Added int
	// Refreshed is the number of existing records replaced with fresher ones.
	Refreshed int
	// Skipped is the number of malformed records dropped from the batch.
	Skipped int
	// Advanced is true if the merge raised the host's epoch.
	Advanced bool
}

// Changed returns true if the merge altered the table.
func (s Stats) Changed() bool { return s.Added > 0 || s.Refreshed > 0 }

// Merge reconciles incoming with the table. The whole batch is applied as one
// step relative to other merges and snapshot reads.
func (t *Table) Merge(incoming []peer.Record) (stats Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range incoming {
		if !r.Valid() {
			stats.Skipped++
			continue
		}
		// The host tracks its own record itself.
		if r.Address == t.Host.Address {
			continue
		}
		if t.Clock.AdvanceTo(r.Epoch) {
			stats.Advanced = true
		}
		existing, ok := t.peers[r.Address]
		if !ok {
			t.peers[r.Address] = r
			stats.Added++
			t.Logger.Debug("discovered peer", zap.Object("peer", r))
			continue
		}
		if r.FresherThan(existing) {
			t.peers[r.Address] = r
			stats.Refreshed++
		}
	}
	return stats
}

// Peers returns a sorted snapshot of every peer record, excluding the host.
func (t *Table) Peers() peer.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.peers.Snapshot()
}

// Len returns the number of peers in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

// Get returns the record held for addr.
func (t *Table) Get(addr peer.Address) (peer.Record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.peers[addr]
	return r, ok
}

// Addresses returns the addresses of every known peer.
func (t *Table) Addresses() []peer.Address {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.peers.Addresses()
}

// Self builds the host's record from the current epoch.
func (t *Table) Self() peer.Record { return t.Host.Record(t.Clock.Value()) }

// Snapshot returns the peers together with a freshly built host record,
// sorted by address.
func (t *Table) Snapshot() peer.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snap := append(t.peers.Snapshot(), t.Self())
	return snap.Sort()
}

// Publish rebuilds the host record from the current epoch, stores it as the
// record reported to introspection calls, and returns the peers together with
// it.
func (t *Table) Publish() peer.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	self := t.Self()
	t.published = &self
	snap := append(t.peers.Snapshot(), self)
	return snap.Sort()
}

// Published returns the peers together with the last published host record.
// Until the host publishes its record, only the peers are returned.
func (t *Table) Published() peer.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snap := t.peers.Snapshot()
	if t.published != nil {
		snap = append(snap, *t.published).Sort()
	}
	return snap
}
