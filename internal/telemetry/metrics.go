// Package telemetry exposes Prometheus metrics for a gossip node.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "whoshere"

// Push results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Merge origins.
const (
	// OriginInbound labels merges of records pushed to this node.
	OriginInbound = "inbound"
	// OriginResponse labels merges of snapshots returned by a pushed peer.
	OriginResponse = "response"
)

// Metrics is the set of collectors a single node reports to.
type Metrics struct {
	Ticks        prometheus.Counter
	Pushes       *prometheus.CounterVec
	Merges       *prometheus.CounterVec
	RecordsAdded prometheus.Counter
	Requests     *prometheus.CounterVec
	Epoch        prometheus.Gauge
	Members      prometheus.Gauge
}

// New builds a metric set and registers it with reg. A nil reg leaves the
// metrics unregistered but fully usable.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gossip",
			Name:      "ticks_total",
			Help:      "Total number of gossip rounds started.",
		}),
		Pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gossip",
			Name:      "pushes_total",
			Help:      "Total number of gossip pushes, by result.",
		}, []string{"result"}),
		Merges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Total number of snapshots merged into the membership table, by origin.",
		}, []string{"origin"}),
		RecordsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_added_total",
			Help:      "Total number of peers discovered.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of inbound RPCs served, by method.",
		}, []string{"method"}),
		Epoch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "epoch",
			Help:      "Current epoch of this node.",
		}),
		Members: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "members",
			Help:      "Number of peers in the membership table, excluding this node.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Ticks, m.Pushes, m.Merges, m.RecordsAdded, m.Requests, m.Epoch, m.Members)
	}
	return m
}

// Push records the result of a single push attempt.
func (m *Metrics) Push(ok bool) {
	if ok {
		m.Pushes.WithLabelValues(ResultSuccess).Inc()
		return
	}
	m.Pushes.WithLabelValues(ResultFailure).Inc()
}

// Merged records a merge from origin that discovered added peers.
func (m *Metrics) Merged(origin string, added int) {
	m.Merges.WithLabelValues(origin).Inc()
	m.RecordsAdded.Add(float64(added))
}

// Observe sets the node's current epoch and table size.
func (m *Metrics) Observe(epoch uint32, members int) {
	m.Epoch.Set(float64(epoch))
	m.Members.Set(float64(members))
}

// Handler serves the metrics gathered by g. Mount it with
// router.Handle("/metrics", telemetry.Handler(reg)).
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
