package mock

import (
	"context"

	"github.com/arya-analytics/whoshere"
	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/peer"
	tmock "github.com/arya-analytics/whoshere/transport/mock"
)

// Network is an in-memory network shared by every node built on it.
type Network struct {
	Gossip   *tmock.Network[gossip.Message, gossip.Message]
	Identity *tmock.Network[gossip.WhoRequest, gossip.Identity]
}

func NewNetwork() *Network {
	return &Network{
		Gossip:   tmock.NewNetwork[gossip.Message, gossip.Message](),
		Identity: tmock.NewNetwork[gossip.WhoRequest, gossip.Identity](),
	}
}

// Disconnect makes addr unreachable on both networks.
func (n *Network) Disconnect(addr peer.Address) {
	n.Gossip.Disconnect(addr)
	n.Identity.Disconnect(addr)
}

// Reconnect reverses Disconnect.
func (n *Network) Reconnect(addr peer.Address) {
	n.Gossip.Reconnect(addr)
	n.Identity.Reconnect(addr)
}

func (n *Network) NewTransport() whoshere.Transport { return &transport{net: n} }

// transport is an in-memory, synchronous implementation of whoshere.Transport.
type transport struct {
	net      *Network
	gossip   *tmock.Unary[gossip.Message, gossip.Message]
	identity *tmock.Unary[gossip.WhoRequest, gossip.Identity]
}

var _ whoshere.Transport = (*transport)(nil)

// Configure implements whoshere.Transport.
func (t *transport) Configure(addr peer.Address) error {
	t.gossip = t.net.Gossip.RouteUnary(addr)
	t.identity = t.net.Identity.RouteUnary(addr)
	return nil
}

// Serve implements whoshere.Transport. Requests are served synchronously by
// the sender, so Serve only waits for ctx.
func (t *transport) Serve(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Gossip implements whoshere.Transport.
func (t *transport) Gossip() gossip.Transport { return t.gossip }

// Identity implements whoshere.Transport.
func (t *transport) Identity() gossip.IdentityTransport { return t.identity }

// Close implements whoshere.Transport.
func (t *transport) Close() error { return nil }
