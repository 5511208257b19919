package whoshere

import (
	"context"
	"sync"

	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/membership"
	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type (
	// Address is the "host:port" a node serves gossip on.
	Address = peer.Address
	// Record is a single node's name, address and epoch.
	Record = peer.Record
	// Snapshot is a sorted view of the cluster.
	Snapshot = peer.Snapshot
	// Identity is a node's answer to WhoAreYou.
	Identity = gossip.Identity
)

// Node is a running cluster member. It serves Gossip and WhoAreYou calls and
// gossips its view of the cluster to its peers until closed.
type Node struct {
	*options
	host      peer.Host
	clock     *epoch.Clock
	table     *membership.Table
	gossip    *gossip.Gossip
	cancel    context.CancelFunc
	wg        *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

// Name returns the node's configured name.
func (n *Node) Name() string { return n.host.Name }

// Address returns the address the node serves on.
func (n *Node) Address() Address { return n.host.Address }

// Epoch returns the node's current epoch.
func (n *Node) Epoch() uint32 { return n.clock.Value() }

// Members returns the node's view of the cluster, including itself, sorted by
// address.
func (n *Node) Members() Snapshot { return n.table.Snapshot() }

// Peers returns the node's view of the cluster, excluding itself.
func (n *Node) Peers() Snapshot { return n.table.Peers() }

// WhoAreYou answers the same way the node does to a remote WhoAreYou call.
func (n *Node) WhoAreYou(ctx context.Context) (Identity, error) {
	return n.gossip.Service().WhoAreYou(ctx, gossip.WhoRequest{})
}

// Wait blocks until the node stops, either because the context passed to Open
// was cancelled or because its transport failed.
func (n *Node) Wait() error { return n.wg.Wait() }

// Close stops gossiping, stops serving, and releases the node's transport.
// Calling Close more than once returns the result of the first call.
func (n *Node) Close() error {
	n.closeOnce.Do(func() {
		n.cancel()
		n.closeErr = errors.CombineErrors(n.wg.Wait(), n.transport.Close())
		n.logger.Info("closed", zap.Stringer("host", n.host.Address))
	})
	return n.closeErr
}
