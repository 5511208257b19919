// Package mock implements an in-memory, synchronous network for testing
// components built on transport.Unary. Every send is recorded.
package mock

import (
	"context"
	"strconv"
	"sync"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/transport"
	"github.com/cockroachdb/errors"
)

// Entry is a single recorded exchange on a Network.
type Entry[I, O any] struct {
	Host     peer.Address
	Target   peer.Address
	Request  I
	Response O
	Error    error
}

// Network routes requests between in-memory Unary transports.
type Network[I, O any] struct {
	mu      sync.Mutex
	routes  map[peer.Address]*Unary[I, O]
	down    map[peer.Address]bool
	Entries []Entry[I, O]
}

func NewNetwork[I, O any]() *Network[I, O] {
	return &Network[I, O]{
		routes: make(map[peer.Address]*Unary[I, O]),
		down:   make(map[peer.Address]bool),
	}
}

// RouteUnary adds a transport to the network at addr. If addr is empty, the
// network assigns the next free localhost address.
func (n *Network[I, O]) RouteUnary(addr peer.Address) *Unary[I, O] {
	n.mu.Lock()
	defer n.mu.Unlock()
	if addr == "" {
		addr = peer.Address("localhost:" + strconv.Itoa(len(n.routes)))
	}
	t := &Unary[I, O]{Address: addr, Network: n}
	n.routes[addr] = t
	return t
}

// Disconnect makes addr unreachable until Reconnect is called.
func (n *Network[I, O]) Disconnect(addr peer.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.down[addr] = true
}

func (n *Network[I, O]) Reconnect(addr peer.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.down, addr)
}

// EntriesFrom returns the recorded exchanges initiated by host, in order.
func (n *Network[I, O]) EntriesFrom(host peer.Address) []Entry[I, O] {
	n.mu.Lock()
	defer n.mu.Unlock()
	var entries []Entry[I, O]
	for _, e := range n.Entries {
		if e.Host == host {
			entries = append(entries, e)
		}
	}
	return entries
}

func (n *Network[I, O]) resolve(target peer.Address) (func(context.Context, I) (O, error), error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	t, ok := n.routes[target]
	if !ok || n.down[target] {
		return nil, errors.Wrapf(transport.ErrUnreachable, "no route to %s", target)
	}
	if t.handler == nil {
		return nil, errors.Wrapf(transport.ErrNoHandler, "at %s", target)
	}
	return t.handler, nil
}

func (n *Network[I, O]) record(e Entry[I, O]) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Entries = append(n.Entries, e)
}

// Unary is an in-memory implementation of transport.Unary.
type Unary[I, O any] struct {
	Address peer.Address
	Network *Network[I, O]
	handler func(context.Context, I) (O, error)
}

var _ transport.Unary[int, int] = (*Unary[int, int])(nil)

// Send implements transport.Unary.
func (u *Unary[I, O]) Send(ctx context.Context, target peer.Address, req I) (res O, err error) {
	defer func() {
		u.Network.record(Entry[I, O]{Host: u.Address, Target: target, Request: req, Response: res, Error: err})
	}()
	if err = ctx.Err(); err != nil {
		return res, err
	}
	handler, err := u.Network.resolve(target)
	if err != nil {
		return res, err
	}
	return handler(ctx, req)
}

// Handle implements transport.Unary.
func (u *Unary[I, O]) Handle(handler func(context.Context, I) (O, error)) {
	u.Network.mu.Lock()
	defer u.Network.mu.Unlock()
	u.handler = handler
}
