package peer

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"
)

// Group is a set of records keyed by address.
type Group map[Address]Record

// Where returns the records matching cond.
func (g Group) Where(cond func(Address, Record) bool) Group {
	res := make(Group, len(g))
	for addr, r := range g {
		if cond(addr, r) {
			res[addr] = r
		}
	}
	return res
}

// WhereNot returns the group without the given addresses.
func (g Group) WhereNot(addrs ...Address) Group {
	return g.Where(func(addr Address, _ Record) bool {
		for _, a := range addrs {
			if a == addr {
				return false
			}
		}
		return true
	})
}

func (g Group) Copy() Group { return g.Where(func(Address, Record) bool { return true }) }

// Addresses returns the addresses in the group in no particular order.
func (g Group) Addresses() []Address {
	addrs := make([]Address, 0, len(g))
	for addr := range g {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Snapshot returns the records of the group sorted by address.
func (g Group) Snapshot() Snapshot {
	snap := make(Snapshot, 0, len(g))
	for _, r := range g {
		snap = append(snap, r)
	}
	return snap.Sort()
}

// Snapshot is an ordered sequence of records, the unit exchanged in a single
// gossip call.
type Snapshot []Record

// Sort orders the snapshot ascending by address in place and returns it.
func (s Snapshot) Sort() Snapshot {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Address < s[j].Address })
	return s
}

// Addresses returns the addresses of the snapshot in order.
func (s Snapshot) Addresses() []Address {
	addrs := make([]Address, len(s))
	for i, r := range s {
		addrs[i] = r.Address
	}
	return addrs
}

// Group converts the snapshot into a Group. Later records win over earlier
// ones with the same address.
func (s Snapshot) Group() Group {
	g := make(Group, len(s))
	for _, r := range s {
		g[r.Address] = r
	}
	return g
}

// Digest fingerprints the snapshot. Two nodes holding the same view of the
// cluster (self included) produce the same digest regardless of record order.
func (s Snapshot) Digest() uint64 {
	sorted := append(Snapshot(nil), s...).Sort()
	h := xxhash.New()
	var epoch [4]byte
	for _, r := range sorted {
		_, _ = h.WriteString(string(r.Address))
		_, _ = h.Write([]byte{0})
		binary.BigEndian.PutUint32(epoch[:], r.Epoch)
		_, _ = h.Write(epoch[:])
		_, _ = h.WriteString(r.Name)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (s Snapshot) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, r := range s {
		if err := enc.AppendObject(r); err != nil {
			return err
		}
	}
	return nil
}
