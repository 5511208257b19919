// Package transport defines the request/response contract gossip components
// use to talk to their peers, independent of the wire implementation.
package transport

import (
	"context"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
)

// Unary is a synchronous request/response transport. Send either returns the
// target's response or fails. Handle binds the function that serves requests
// addressed to this transport.
type Unary[I, O any] interface {
	Send(ctx context.Context, target peer.Address, req I) (O, error)
	Handle(handler func(ctx context.Context, req I) (O, error))
}

var (
	// ErrUnreachable is returned when no server can be reached at a target.
	ErrUnreachable = errors.New("[transport] - target unreachable")
	// ErrNoHandler is returned when a server has no handler bound.
	ErrNoHandler = errors.New("[transport] - no handler bound")
)
