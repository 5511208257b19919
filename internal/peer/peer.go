package peer

import (
	"net"

	"go.uber.org/zap/zapcore"
)

// Address is the "host:port" a peer serves gossip on. It uniquely identifies
// a peer within the cluster.
type Address string

// Valid returns true if the address is a well-formed, non-empty host:port pair.
func (a Address) Valid() bool {
	if a == "" {
		return false
	}
	_, port, err := net.SplitHostPort(string(a))
	return err == nil && port != ""
}

func (a Address) String() string { return string(a) }

// Record is a single peer's identity and version as seen by this node.
// Records are values: an update replaces a record, it never mutates one.
type Record struct {
	Name    string
	Address Address
	Epoch   uint32
}

// New constructs a Record.
func New(name string, addr Address, epoch uint32) Record {
	return Record{Name: name, Address: addr, Epoch: epoch}
}

// Valid returns true if the record can be stored in a membership table.
func (r Record) Valid() bool { return r.Address.Valid() }

// FresherThan returns true if r carries a strictly higher epoch than other.
func (r Record) FresherThan(other Record) bool { return r.Epoch > other.Epoch }

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r Record) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("epoch", r.Epoch)
	enc.AddString("hostport", string(r.Address))
	enc.AddString("name", r.Name)
	return nil
}

// Host is the fixed identity of the local node. Its Record is rebuilt on
// every gossip round from the current epoch.
type Host struct {
	Name    string
	Address Address
}

// Record builds the SelfRecord for the host at the given epoch.
func (h Host) Record(epoch uint32) Record { return New(h.Name, h.Address, epoch) }
