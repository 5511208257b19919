// Package gossip drives membership dissemination: a periodic scheduler that
// pushes the host's view of the cluster to a bounded number of peers, and the
// server that merges views pushed by others.
package gossip

import (
	"context"
	"time"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/internal/ring"
	"github.com/arya-analytics/whoshere/internal/telemetry"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type Gossip struct {
	Config
	server *Server
}

// New validates cfg and binds the gossip server to its transports.
func New(cfg Config) (*Gossip, error) {
	cfg = cfg.Merge(DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Gossip{Config: cfg, server: &Server{Config: cfg}}
	g.Transport.Handle(g.server.Gossip)
	if g.IdentityTransport != nil {
		g.IdentityTransport.Handle(g.server.WhoAreYou)
	}
	return g, nil
}

// Service returns the RPC surface served by g.
func (g *Gossip) Service() Service { return g.server }

// Gossip runs a round every Interval until ctx is cancelled. Rounds never
// overlap.
func (g *Gossip) Gossip(ctx context.Context) error {
	t := time.NewTicker(g.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if _, err := g.GossipOnce(ctx); err != nil && ctx.Err() == nil {
				g.Logger.Error("gossip round failed", zap.Error(err))
			}
		}
	}
}

// Round summarizes a single gossip round.
type Round struct {
	// Snapshot is the view of the cluster that was pushed.
	Snapshot peer.Snapshot
	// Targets is the ring order the round walked.
	Targets []peer.Address
	// Attempts is the number of pushes issued.
	Attempts int
	// Successes is the number of pushes that returned a response.
	Successes int
}

// Failures is the number of pushes that did not return a response.
func (r Round) Failures() int { return r.Attempts - r.Successes }

// GossipOnce runs a single round. It publishes the host's record, then pushes
// the snapshot to targets in ring order until Fanout pushes succeed or every
// target has been tried once. Each failed push bumps the host's epoch. Push
// failures are never returned; GossipOnce only fails if ctx is cancelled.
func (g *Gossip) GossipOnce(ctx context.Context) (Round, error) {
	g.Metrics.Ticks.Inc()
	var (
		host = g.Table.Host.Address
		snap = g.Table.Publish()
		msg  = Message{Records: snap}
		r    = Round{Snapshot: snap}
	)
	g.Logger.Info("membership",
		zap.Stringer("host", host),
		zap.Uint64("digest", snap.Digest()),
		zap.Array("members", snap),
	)
	r.Targets = ring.Targets(append(append([]peer.Address{}, g.Seeds...), g.Table.Addresses()...), host)
	defer func() { g.Metrics.Observe(g.Table.Clock.Value(), g.Table.Len()) }()
	for _, target := range r.Targets {
		if r.Successes >= g.Fanout {
			break
		}
		if err := ctx.Err(); err != nil {
			return r, err
		}
		r.Attempts++
		res, err := g.Transport.Send(ctx, target, msg)
		if err != nil {
			if ctx.Err() != nil {
				return r, ctx.Err()
			}
			g.Metrics.Push(false)
			e := g.Table.Clock.Increment()
			g.Logger.Debug("push failed",
				zap.Stringer("host", host),
				zap.Stringer("peer", target),
				zap.Uint32("epoch", e),
				zap.Error(errors.Wrapf(err, "[gossip] - failed to push to %s", target)),
			)
			continue
		}
		r.Successes++
		g.Metrics.Push(true)
		stats := g.Table.Merge(res.Records)
		g.Metrics.Merged(telemetry.OriginResponse, stats.Added)
		g.Logger.Debug("push",
			zap.Stringer("host", host),
			zap.Stringer("peer", target),
			zap.Int("sent", len(msg.Records)),
			zap.Int("received", len(res.Records)),
			zap.Int("added", stats.Added),
		)
	}
	if r.Successes == 0 && len(r.Targets) > 0 {
		g.Logger.Warn("no peers reachable", zap.Stringer("host", host), zap.Int("attempts", r.Attempts))
	}
	return r, nil
}
