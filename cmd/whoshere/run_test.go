package main

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
	"github.com/oklog/run"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parse", func() {
	It("Should read the positional arguments", func() {
		cfg, err := parse([]string{"alpha", "127.0.0.1", "7000", "127.0.0.1:7001", "127.0.0.1:7002"})
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Name).To(Equal("alpha"))
		Expect(cfg.HostPort()).To(Equal(peer.Address("127.0.0.1:7000")))
		Expect(cfg.Seeds()).To(Equal([]peer.Address{"127.0.0.1:7001", "127.0.0.1:7002"}))
		Expect(cfg.Genesis).To(BeFalse())
		Expect(cfg.Interval).To(Equal(5 * time.Second))
		Expect(cfg.Fanout).To(Equal(2))
	})

	It("Should mark a genesis node", func() {
		cfg, err := parse([]string{"-e", "alpha", "127.0.0.1", "7000"})
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Genesis).To(BeTrue())
		Expect(cfg.Neighbors).To(BeEmpty())
	})

	It("Should require a name, address and port", func() {
		_, err := parse([]string{"alpha", "127.0.0.1"})
		Expect(err).To(HaveOccurred())
	})

	It("Should reject a malformed port", func() {
		_, err := parse([]string{"alpha", "127.0.0.1", "http"})
		Expect(err).To(MatchError(ContainSubstring("invalid port")))
	})

	It("Should reject a malformed neighbor", func() {
		_, err := parse([]string{"alpha", "127.0.0.1", "7000", "127.0.0.1"})
		Expect(err).To(HaveOccurred())
	})

	Describe("Config file", func() {
		var path string
		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "node.yaml")
			Expect(os.WriteFile(path, []byte(`
name: beta
address: 127.0.0.1
port: 7100
neighbors: [127.0.0.1:7101]
interval: 1s
fanout: 3
`), 0o644)).To(Succeed())
		})

		It("Should start from the file alone", func() {
			cfg, err := parse([]string{"-config", path})
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Name).To(Equal("beta"))
			Expect(cfg.Interval).To(Equal(time.Second))
			Expect(cfg.Fanout).To(Equal(3))
		})

		It("Should let arguments and set flags override the file", func() {
			cfg, err := parse([]string{"-config", path, "-fanout", "4", "gamma", "127.0.0.1", "7200"})
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Name).To(Equal("gamma"))
			Expect(cfg.Port).To(Equal(7200))
			Expect(cfg.Neighbors).To(ConsistOf("127.0.0.1:7101"))
			Expect(cfg.Fanout).To(Equal(4))
			Expect(cfg.Interval).To(Equal(time.Second))
		})
	})
})

var _ = Describe("exitErr", func() {
	It("Should treat a stop on signal as a clean exit", func() {
		Expect(exitErr(signalError{sig: syscall.SIGTERM})).To(Succeed())
		Expect(exitErr(nil)).To(Succeed())
	})

	It("Should fail the process when an actor dies", func() {
		var g run.Group
		g.Add(func() error { return errors.New("[transport] - server stopped") }, func(error) {})
		stop := make(chan struct{})
		g.Add(func() error { <-stop; return signalError{sig: syscall.SIGINT} }, func(error) { close(stop) })
		Expect(exitErr(g.Run())).To(MatchError(ContainSubstring("server stopped")))
	})
})
