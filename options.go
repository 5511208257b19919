package whoshere

import (
	"time"

	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/telemetry"
	"github.com/arya-analytics/whoshere/transport/grpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	// name is the node's human readable name. It does not need to be unique.
	name string
	// addr is the address the node serves gossip on.
	addr Address
	// seeds are the addresses contacted before any peer is known.
	seeds []Address
	// genesis starts the node's epoch at epoch.Genesis instead of zero.
	genesis bool
	// gossip configures the scheduler. Its Table, Transport and Seeds are set
	// by Open.
	gossip gossip.Config
	// registerer receives the node's metrics. Metrics are still collected when
	// nil, they are just not exported.
	registerer prometheus.Registerer
	// transport is the network the node runs on. Defaults to gRPC.
	transport Transport
	logger    *zap.Logger
}

func newOptions(name string, addr Address, seeds []Address, opts ...Option) *options {
	o := &options{name: name, addr: addr, seeds: seeds}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	def := defaultOptions()

	// |||| LOGGER ||||

	if o.logger == nil {
		o.logger = def.logger
	}

	// |||| GOSSIP ||||

	o.gossip.Logger = o.logger.Named("gossip")
	if o.gossip.Metrics == nil {
		o.gossip.Metrics = telemetry.New(o.registerer)
	}
	o.gossip = o.gossip.Merge(def.gossip)

	// |||| TRANSPORT ||||

	if o.transport == nil {
		o.transport = grpc.New(grpc.Config{Logger: o.logger.Named("transport")})
	}
}

func defaultOptions() *options {
	return &options{
		gossip: gossip.DefaultConfig(),
		logger: zap.NewNop(),
	}
}

func (o *options) start() uint32 {
	if o.genesis {
		return epoch.Genesis
	}
	return 0
}

// Genesis marks the node as the first node of a new cluster, starting its
// epoch at one instead of zero.
func Genesis() Option { return func(o *options) { o.genesis = true } }

// WithTransport sets a custom network transport for the node.
func WithTransport(t Transport) Option { return func(o *options) { o.transport = t } }

func WithLogger(logger *zap.Logger) Option { return func(o *options) { o.logger = logger } }

// WithInterval sets the time between gossip rounds.
func WithInterval(interval time.Duration) Option {
	return func(o *options) { o.gossip.Interval = interval }
}

// WithFanout sets the number of successful pushes after which a gossip round
// stops.
func WithFanout(fanout int) Option { return func(o *options) { o.gossip.Fanout = fanout } }

// WithRegisterer registers the node's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}
