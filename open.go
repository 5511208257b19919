// Package whoshere runs a node of a leaderless cluster membership service.
// Every node periodically gossips the names, addresses and epochs of the nodes
// it knows about to a couple of its peers, and merges what it hears back,
// until every node knows about every other.
package whoshere

import (
	"context"
	"net"

	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/membership"
	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Open starts a node named name serving on addr. seeds are the addresses of
// existing cluster members to contact until the node has discovered peers of
// its own. Pass Genesis when starting the first node of a cluster.
//
// Open binds the node's transport before returning, so a bind failure is
// returned directly. The node runs until ctx is cancelled or Close is called.
func Open(ctx context.Context, name string, addr Address, seeds []Address, opts ...Option) (*Node, error) {
	o := newOptions(name, addr, seeds, opts...)
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	if err := o.transport.Configure(o.addr); err != nil {
		return nil, err
	}
	o.addr = resolvePort(o.addr, o.transport)

	var (
		host  = peer.Host{Name: o.name, Address: o.addr}
		clock = epoch.New(o.start())
		table = membership.New(host, clock, membership.Config{Logger: o.logger.Named("membership")})
	)
	o.gossip.Table = table
	o.gossip.Transport = o.transport.Gossip()
	o.gossip.IdentityTransport = o.transport.Identity()
	o.gossip.Seeds = o.seeds
	g, err := gossip.New(o.gossip)
	if err != nil {
		return nil, errors.CombineErrors(err, o.transport.Close())
	}

	o.logger.Info("opening node",
		zap.String("name", host.Name),
		zap.Stringer("host", host.Address),
		zap.Uint32("epoch", clock.Value()),
		zap.Stringers("seeds", o.seeds),
		zap.Duration("interval", o.gossip.Interval),
	)

	ctx, cancel := context.WithCancel(ctx)
	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error { return o.transport.Serve(ctx) })
	wg.Go(func() error { return g.Gossip(ctx) })

	return &Node{
		options: o,
		host:    host,
		clock:   clock,
		table:   table,
		gossip:  g,
		cancel:  cancel,
		wg:      wg,
	}, nil
}

func validateOptions(o *options) error {
	if !o.addr.Valid() {
		return errors.Newf("[whoshere] - invalid address %q", o.addr)
	}
	for _, s := range o.seeds {
		if !s.Valid() {
			return errors.Newf("[whoshere] - invalid seed address %q", s)
		}
	}
	if o.gossip.Interval <= 0 {
		return errors.Newf("[whoshere] - gossip interval must be positive, got %s", o.gossip.Interval)
	}
	if o.gossip.Fanout <= 0 {
		return errors.Newf("[whoshere] - gossip fanout must be positive, got %d", o.gossip.Fanout)
	}
	return nil
}

// resolvePort swaps an ephemeral port in addr for the one the transport bound
// to. The configured host is always kept, as it is what peers dial.
func resolvePort(addr Address, t Transport) Address {
	host, port, err := net.SplitHostPort(string(addr))
	if err != nil || port != "0" {
		return addr
	}
	bt, ok := t.(boundTransport)
	if !ok || bt.Addr() == "" {
		return addr
	}
	_, bound, err := net.SplitHostPort(string(bt.Addr()))
	if err != nil {
		return addr
	}
	return Address(net.JoinHostPort(host, bound))
}
