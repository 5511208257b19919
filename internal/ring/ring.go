package ring

import (
	"sort"

	"github.com/arya-analytics/whoshere/internal/peer"
)

// Targets orders the known addresses for a gossip round. The addresses and
// the host are sorted lexicographically, and the walk starts immediately after
// the host, wrapping around until it returns to the host. The host and
// duplicate addresses never appear in the result, so its length is the number
// of distinct addresses other than the host.
func Targets(known []peer.Address, host peer.Address) []peer.Address {
	ring := Sorted(known, host)
	pos := sort.Search(len(ring), func(i int) bool { return ring[i] > host })
	targets := make([]peer.Address, 0, len(ring))
	targets = append(targets, ring[pos:]...)
	return append(targets, ring[:pos]...)
}

// Sorted returns the distinct addresses in known, excluding host, in
// ascending order.
func Sorted(known []peer.Address, host peer.Address) []peer.Address {
	seen := make(map[peer.Address]struct{}, len(known))
	ring := make([]peer.Address, 0, len(known))
	for _, addr := range known {
		if addr == host {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		ring = append(ring, addr)
	}
	sort.Slice(ring, func(i, j int) bool { return ring[i] < ring[j] })
	return ring
}
