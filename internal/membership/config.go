package membership

import (
	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/peer"
	"go.uber.org/zap"
)

type Config struct {
	// Host is the identity of the node owning the table. Records carrying the
	// host's address are never stored.
	Host peer.Host
	// Clock is the host's epoch. Merges advance it to the highest epoch seen.
	Clock *epoch.Clock
	// Logger
	Logger *zap.Logger
}

func (cfg Config) Merge(def Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{Clock: epoch.New(0), Logger: zap.NewNop()}
}
