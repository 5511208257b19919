package gossip

import (
	"context"

	"github.com/arya-analytics/whoshere/internal/telemetry"
	"go.uber.org/zap"
)

// Server implements Service on top of a membership table.
type Server struct {
	Config
}

var _ Service = (*Server)(nil)

// NewServer returns a Server for cfg without validating a transport, for
// callers that serve RPCs without running a scheduler.
func NewServer(cfg Config) (*Server, error) {
	cfg = cfg.Merge(DefaultConfig())
	if cfg.Table == nil {
		return nil, ErrNoTable
	}
	return &Server{Config: cfg}, nil
}

// Gossip implements Service. Malformed records are skipped silently.
func (s *Server) Gossip(ctx context.Context, msg Message) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	s.Metrics.Requests.WithLabelValues("gossip").Inc()
	stats := s.Table.Merge(msg.Records)
	s.Metrics.Merged(telemetry.OriginInbound, stats.Added)
	s.Logger.Debug("received gossip",
		zap.Stringer("host", s.Table.Host.Address),
		zap.Int("size", len(msg.Records)),
		zap.Int("added", stats.Added),
		zap.Int("refreshed", stats.Refreshed),
		zap.Int("skipped", stats.Skipped),
	)
	return Message{Records: s.Table.Snapshot()}, nil
}

// WhoAreYou implements Service.
func (s *Server) WhoAreYou(ctx context.Context, _ WhoRequest) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}
	s.Metrics.Requests.WithLabelValues("whoareyou").Inc()
	return Identity{Name: s.Table.Host.Name, Records: s.Table.Published()}, nil
}
