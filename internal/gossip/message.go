package gossip

import (
	"context"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/transport"
)

// Message is the snapshot exchanged by a single Gossip call, in both
// directions.
type Message struct {
	Records peer.Snapshot
}

// WhoRequest asks a node to identify itself.
type WhoRequest struct{}

// Identity is a node's answer to a WhoRequest.
type Identity struct {
	Name    string
	Records peer.Snapshot
}

type (
	// Transport carries Gossip calls.
	Transport = transport.Unary[Message, Message]
	// IdentityTransport carries WhoAreYou calls.
	IdentityTransport = transport.Unary[WhoRequest, Identity]
)

// Service is the RPC surface a gossip node serves.
type Service interface {
	// Gossip merges the records of msg into the node's table and returns the
	// node's post-merge snapshot.
	Gossip(ctx context.Context, msg Message) (Message, error)
	// WhoAreYou returns the node's name and its current view of the cluster.
	// It never mutates state.
	WhoAreYou(ctx context.Context, req WhoRequest) (Identity, error)
}
