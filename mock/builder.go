// Package mock provisions clusters of whoshere nodes on an in-memory network.
package mock

import (
	"context"
	"strconv"
	"time"

	"github.com/arya-analytics/whoshere"
	"github.com/cockroachdb/errors"
)

// Builder opens nodes at sequential addresses on a shared in-memory network.
// The first node built is the genesis node, and every later node is seeded
// with the addresses of the nodes built before it.
type Builder struct {
	// PortRangeStart is the port assigned to the first node.
	PortRangeStart int
	// DefaultOptions are applied to every node before the options passed to
	// New.
	DefaultOptions []whoshere.Option
	// Network is the network every node runs on.
	Network *Network
	// Nodes are the nodes opened so far, in order.
	Nodes []*whoshere.Node
}

// NewMemBuilder returns a Builder whose nodes gossip every few milliseconds.
func NewMemBuilder(defaultOpts ...whoshere.Option) *Builder {
	net := NewNetwork()
	return &Builder{
		PortRangeStart: 7000,
		Network:        net,
		DefaultOptions: append([]whoshere.Option{
			whoshere.WithInterval(5 * time.Millisecond),
		}, defaultOpts...),
	}
}

// Addresses returns the addresses of every node opened so far.
func (b *Builder) Addresses() []whoshere.Address {
	addrs := make([]whoshere.Address, len(b.Nodes))
	for i, n := range b.Nodes {
		addrs[i] = n.Address()
	}
	return addrs
}

// New opens the next node of the cluster.
func (b *Builder) New(ctx context.Context, name string, opts ...whoshere.Option) (*whoshere.Node, error) {
	addr := whoshere.Address("localhost:" + strconv.Itoa(b.PortRangeStart+len(b.Nodes)))
	base := append([]whoshere.Option{whoshere.WithTransport(b.Network.NewTransport())}, b.DefaultOptions...)
	if len(b.Nodes) == 0 {
		base = append(base, whoshere.Genesis())
	}
	n, err := whoshere.Open(ctx, name, addr, b.Addresses(), append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	b.Nodes = append(b.Nodes, n)
	return n, nil
}

// Close closes every node opened by the builder.
func (b *Builder) Close() error {
	var err error
	for _, n := range b.Nodes {
		err = errors.CombineErrors(err, n.Close())
	}
	return err
}
