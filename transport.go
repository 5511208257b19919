package whoshere

import (
	"context"

	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/peer"
)

// Transport is the network surface a Node serves and dials through.
type Transport interface {
	// Configure binds the transport to the node's address. A failure to bind
	// aborts Open.
	Configure(addr peer.Address) error
	// Serve handles inbound calls until ctx is cancelled.
	Serve(ctx context.Context) error
	// Gossip carries Gossip calls.
	Gossip() gossip.Transport
	// Identity carries WhoAreYou calls.
	Identity() gossip.IdentityTransport
	// Close releases outbound resources once serving has stopped.
	Close() error
}

// boundTransport is implemented by transports that may bind to an address
// other than the one requested, e.g. an ephemeral port.
type boundTransport interface {
	Addr() peer.Address
}
