package gossip

import (
	"time"

	"github.com/arya-analytics/whoshere/internal/membership"
	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/internal/telemetry"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	defaultInterval = 5 * time.Second
	defaultFanout   = 2
)

var (
	ErrNoTable     = errors.New("gossip membership table required")
	ErrNoTransport = errors.New("gossip transport required")
)

type Config struct {
	// Table is the membership state shared by the scheduler and the server.
	Table *membership.Table
	// Transport is used to push snapshots to peers and to serve pushes from them.
	Transport Transport
	// IdentityTransport serves WhoAreYou calls. Optional.
	IdentityTransport IdentityTransport
	// Seeds are addresses gossiped to in addition to the peers in Table. They
	// never create records on their own.
	Seeds []peer.Address
	// Interval is the time between gossip rounds.
	Interval time.Duration
	// Fanout is the number of successful pushes after which a round stops.
	Fanout int
	// Metrics
	Metrics *telemetry.Metrics
	// Logger
	Logger *zap.Logger
}

func (cfg Config) Merge(def Config) Config {
	if cfg.Table == nil {
		cfg.Table = def.Table
	}
	if cfg.Transport == nil {
		cfg.Transport = def.Transport
	}
	if cfg.IdentityTransport == nil {
		cfg.IdentityTransport = def.IdentityTransport
	}
	if cfg.Seeds == nil {
		cfg.Seeds = def.Seeds
	}
	if cfg.Interval == 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Fanout == 0 {
		cfg.Fanout = def.Fanout
	}
	if cfg.Metrics == nil {
		cfg.Metrics = def.Metrics
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}

func (cfg Config) Validate() error {
	if cfg.Table == nil {
		return ErrNoTable
	}
	if cfg.Transport == nil {
		return ErrNoTransport
	}
	if cfg.Interval <= 0 {
		return errors.Newf("gossip interval must be positive, got %s", cfg.Interval)
	}
	if cfg.Fanout <= 0 {
		return errors.Newf("gossip fanout must be positive, got %d", cfg.Fanout)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Interval: defaultInterval,
		Fanout:   defaultFanout,
		Metrics:  telemetry.New(nil),
		Logger:   zap.NewNop(),
	}
}
