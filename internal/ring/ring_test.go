package ring_test

import (
	"math/rand"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/arya-analytics/whoshere/internal/ring"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Targets", func() {
	known := []peer.Address{"h:5", "h:1", "h:4", "h:2"}

	It("Should start immediately after the host and wrap around", func() {
		Expect(ring.Targets(known, "h:3")).To(Equal([]peer.Address{"h:4", "h:5", "h:1", "h:2"}))
	})
	It("Should start at the beginning when the host sorts last", func() {
		Expect(ring.Targets(known, "h:9")).To(Equal([]peer.Address{"h:1", "h:2", "h:4", "h:5"}))
	})
	It("Should exclude the host when it is already known", func() {
		targets := ring.Targets(append(known, "h:3"), "h:3")
		Expect(targets).To(Equal([]peer.Address{"h:4", "h:5", "h:1", "h:2"}))
		Expect(targets).ToNot(ContainElement(peer.Address("h:3")))
	})
	It("Should collapse duplicate addresses", func() {
		Expect(ring.Targets([]peer.Address{"h:2", "h:2", "h:1"}, "h:0")).To(Equal([]peer.Address{"h:1", "h:2"}))
	})
	It("Should return nothing when only the host is known", func() {
		Expect(ring.Targets([]peer.Address{"h:1"}, "h:1")).To(BeEmpty())
		Expect(ring.Targets(nil, "h:1")).To(BeEmpty())
	})
	It("Should return one entry per distinct peer", func() {
		Expect(ring.Targets(known, "h:3")).To(HaveLen(len(known)))
	})
	It("Should be independent of input order", func() {
		expected := ring.Targets(known, "h:3")
		for i := 0; i < 20; i++ {
			shuffled := append([]peer.Address{}, known...)
			rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			Expect(ring.Targets(shuffled, "h:3")).To(Equal(expected))
		}
	})
	It("Should not modify its input", func() {
		in := []peer.Address{"h:2", "h:1"}
		ring.Targets(in, "h:0")
		Expect(in).To(Equal([]peer.Address{"h:2", "h:1"}))
	})
	It("Should rotate as membership grows", func() {
		Expect(ring.Targets([]peer.Address{"h:1", "h:3"}, "h:2")[0]).To(Equal(peer.Address("h:3")))
		Expect(ring.Targets([]peer.Address{"h:1", "h:3", "h:25"}, "h:2")[0]).To(Equal(peer.Address("h:25")))
	})
})
