package telemetry_test

import (
	"io"
	"net/http/httptest"

	"github.com/arya-analytics/whoshere/internal/telemetry"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	var (
		reg *prometheus.Registry
		m   *telemetry.Metrics
	)
	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		m = telemetry.New(reg)
	})
	It("Should count pushes by result", func() {
		m.Push(true)
		m.Push(true)
		m.Push(false)
		Expect(testutil.ToFloat64(m.Pushes.WithLabelValues(telemetry.ResultSuccess))).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.Pushes.WithLabelValues(telemetry.ResultFailure))).To(Equal(1.0))
	})
	It("Should count merges and discovered peers", func() {
		m.Merged(telemetry.OriginInbound, 3)
		m.Merged(telemetry.OriginResponse, 0)
		Expect(testutil.ToFloat64(m.Merges.WithLabelValues(telemetry.OriginInbound))).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.RecordsAdded)).To(Equal(3.0))
	})
	It("Should observe the epoch and table size", func() {
		m.Observe(4, 2)
		Expect(testutil.ToFloat64(m.Epoch)).To(Equal(4.0))
		Expect(testutil.ToFloat64(m.Members)).To(Equal(2.0))
	})
	It("Should allow independent metric sets per node", func() {
		Expect(func() { telemetry.New(prometheus.NewRegistry()) }).ToNot(Panic())
		Expect(func() { telemetry.New(nil).Push(true) }).ToNot(Panic())
	})
	It("Should expose registered metrics over HTTP", func() {
		m.Observe(9, 1)
		rec := httptest.NewRecorder()
		telemetry.Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		body, err := io.ReadAll(rec.Body)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("whoshere_epoch 9"))
	})
})
