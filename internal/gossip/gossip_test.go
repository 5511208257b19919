package gossip_test

import (
	"context"
	"fmt"
	"time"

	"github.com/arya-analytics/whoshere/internal/epoch"
	"github.com/arya-analytics/whoshere/internal/gossip"
	"github.com/arya-analytics/whoshere/internal/membership"
	"github.com/arya-analytics/whoshere/internal/peer"
	tmock "github.com/arya-analytics/whoshere/transport/mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type testNode struct {
	table  *membership.Table
	clock  *epoch.Clock
	gossip *gossip.Gossip
	addr   peer.Address
}

type testCluster struct {
	net   *tmock.Network[gossip.Message, gossip.Message]
	idNet *tmock.Network[gossip.WhoRequest, gossip.Identity]
}

func newTestCluster() *testCluster {
	return &testCluster{
		net:   tmock.NewNetwork[gossip.Message, gossip.Message](),
		idNet: tmock.NewNetwork[gossip.WhoRequest, gossip.Identity](),
	}
}

func (c *testCluster) node(name string, addr peer.Address, start uint32, seeds ...peer.Address) testNode {
	var (
		t     = c.net.RouteUnary(addr)
		it    = c.idNet.RouteUnary(addr)
		clock = epoch.New(start)
		host  = peer.Host{Name: name, Address: t.Address}
		table = membership.New(host, clock, membership.Config{})
	)
	g, err := gossip.New(gossip.Config{
		Table:             table,
		Transport:         t,
		IdentityTransport: it,
		Seeds:             seeds,
		Interval:          5 * time.Millisecond,
		Logger:            zap.NewNop(),
	})
	Expect(err).ToNot(HaveOccurred())
	return testNode{table: table, clock: clock, gossip: g, addr: t.Address}
}

var _ = Describe("Gossip", func() {
	var (
		ctx     context.Context
		cluster *testCluster
	)
	BeforeEach(func() {
		ctx = context.Background()
		cluster = newTestCluster()
	})

	Describe("Bootstrap", func() {
		It("Should converge a genesis node and a joining node", func() {
			a := cluster.node("a", "h1:1", epoch.Genesis, "h2:1")
			b := cluster.node("b", "h2:1", 0, "h1:1")
			for i := 0; i < 2; i++ {
				_, err := a.gossip.GossipOnce(ctx)
				Expect(err).ToNot(HaveOccurred())
				_, err = b.gossip.GossipOnce(ctx)
				Expect(err).ToNot(HaveOccurred())
			}
			ra, ok := a.table.Get(b.addr)
			Expect(ok).To(BeTrue())
			Expect(ra.Name).To(Equal("b"))
			Expect(ra.Epoch).To(BeNumerically(">=", 1))
			rb, ok := b.table.Get(a.addr)
			Expect(ok).To(BeTrue())
			Expect(rb.Name).To(Equal("a"))
			Expect(rb.Epoch).To(BeNumerically(">=", 1))
			Expect(a.clock.Value()).To(Equal(b.clock.Value()))
			Expect(a.table.Snapshot().Digest()).To(Equal(b.table.Snapshot().Digest()))
		})
		It("Should learn about peers through the pushed peer's response", func() {
			a := cluster.node("a", "h1:1", 0, "h2:1")
			b := cluster.node("b", "h2:1", 0)
			c := cluster.node("c", "h3:1", 0, "h2:1")
			_, err := c.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			_, err = a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(a.table.Addresses()).To(ConsistOf(b.addr, c.addr))
		})
		It("Should disseminate through a chain of seeds", func() {
			nodes := make([]testNode, 5)
			for i := range nodes {
				var seeds []peer.Address
				if i > 0 {
					seeds = append(seeds, nodes[i-1].addr)
				}
				nodes[i] = cluster.node(fmt.Sprintf("n%d", i), peer.Address(fmt.Sprintf("h%d:1", i)), 0, seeds...)
			}
			for round := 0; round < 6; round++ {
				for _, n := range nodes {
					_, err := n.gossip.GossipOnce(ctx)
					Expect(err).ToNot(HaveOccurred())
				}
			}
			for _, n := range nodes {
				Expect(n.table.Len()).To(Equal(len(nodes) - 1))
			}
		})
	})

	Describe("Failure handling", func() {
		It("Should bump the epoch exactly once for a sole unreachable target", func() {
			a := cluster.node("a", "h1:1", 3, "h9:9")
			r, err := a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Attempts).To(Equal(1))
			Expect(r.Failures()).To(Equal(1))
			Expect(a.clock.Value()).To(Equal(uint32(4)))
		})
		It("Should move on to the next target after a failure", func() {
			a := cluster.node("a", "h1:1", 0, "h2:1", "h3:1", "h4:1")
			cluster.node("b", "h2:1", 0)
			cluster.node("c", "h3:1", 0)
			cluster.node("d", "h4:1", 0)
			cluster.net.Disconnect("h2:1")
			r, err := a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Attempts).To(Equal(3))
			Expect(r.Successes).To(Equal(2))
			Expect(a.clock.Value()).To(Equal(uint32(1)))
			targets := make([]peer.Address, 0)
			for _, e := range cluster.net.EntriesFrom(a.addr) {
				targets = append(targets, e.Target)
			}
			Expect(targets).To(Equal([]peer.Address{"h2:1", "h3:1", "h4:1"}))
		})
		It("Should terminate after a single pass when every target fails", func() {
			a := cluster.node("a", "h3:1", 0, "h1:1", "h2:1", "h4:1", "h5:1")
			r, err := a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Attempts).To(Equal(4))
			Expect(r.Targets).To(Equal([]peer.Address{"h4:1", "h5:1", "h1:1", "h2:1"}))
			Expect(a.clock.Value()).To(Equal(uint32(4)))
		})
		It("Should not bump the epoch when the round is cancelled", func() {
			a := cluster.node("a", "h1:1", 0, "h2:1")
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := a.gossip.GossipOnce(cctx)
			Expect(err).To(MatchError(context.Canceled))
			Expect(a.clock.Value()).To(Equal(uint32(0)))
		})
	})

	Describe("Fanout", func() {
		It("Should stop after two successful pushes", func() {
			seeds := []peer.Address{"h2:1", "h3:1", "h4:1", "h5:1", "h6:1"}
			a := cluster.node("a", "h1:1", 0, seeds...)
			for i, s := range seeds {
				cluster.node(fmt.Sprintf("p%d", i), s, 0)
			}
			r, err := a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Attempts).To(Equal(2))
			Expect(r.Successes).To(Equal(2))
			Expect(cluster.net.EntriesFrom(a.addr)).To(HaveLen(2))
			Expect(a.clock.Value()).To(Equal(uint32(0)))
		})
		It("Should push to nobody when only the host is known", func() {
			a := cluster.node("a", "h1:1", 0)
			r, err := a.gossip.GossipOnce(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Targets).To(BeEmpty())
			Expect(r.Attempts).To(BeZero())
		})
	})

	Describe("Gossip", func() {
		It("Should run rounds until the context is cancelled", func() {
			a := cluster.node("a", "h1:1", epoch.Genesis, "h2:1")
			b := cluster.node("b", "h2:1", 0, "h1:1")
			cctx, cancel := context.WithCancel(ctx)
			errA, errB := make(chan error, 1), make(chan error, 1)
			go func() { errA <- a.gossip.Gossip(cctx) }()
			go func() { errB <- b.gossip.Gossip(cctx) }()
			Eventually(func() uint32 {
				r, _ := a.table.Get(b.addr)
				return r.Epoch
			}).Should(BeNumerically(">=", 1))
			Eventually(b.table.Len).Should(Equal(1))
			cancel()
			Eventually(errA).Should(Receive(BeNil()))
			Eventually(errB).Should(Receive(BeNil()))
		})
	})
})
