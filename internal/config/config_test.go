package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arya-analytics/whoshere/internal/config"
	"github.com/arya-analytics/whoshere/internal/peer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("Parse", func() {
		It("Should decode every field", func() {
			n, err := config.Parse([]byte(`
name: alpha
address: 10.0.0.1
port: 7000
neighbors: [10.0.0.2:7000, "node-c:7000"]
genesis: true
interval: 250ms
fanout: 3
diagnostics: 127.0.0.1:9100
debug: true
`))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(config.Node{
				Name:        "alpha",
				Address:     "10.0.0.1",
				Port:        7000,
				Neighbors:   []string{"10.0.0.2:7000", "node-c:7000"},
				Genesis:     true,
				Interval:    250 * time.Millisecond,
				Fanout:      3,
				Diagnostics: "127.0.0.1:9100",
				Debug:       true,
			}))
			Expect(n.Validate()).To(Succeed())
		})

		It("Should keep defaults for omitted fields", func() {
			n, err := config.Parse([]byte("name: alpha\nport: 7000\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(n.Interval).To(Equal(5 * time.Second))
			Expect(n.Fanout).To(Equal(2))
			Expect(n.Address).To(Equal("127.0.0.1"))
			Expect(n.Validate()).To(Succeed())
		})

		It("Should fail on malformed YAML", func() {
			_, err := config.Parse([]byte("port: ["))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		var n config.Node
		BeforeEach(func() {
			n = config.Default()
			n.Port = 7000
		})
		It("Should reject a malformed neighbor", func() {
			n.Neighbors = []string{"10.0.0.2"}
			Expect(n.Validate()).To(MatchError(ContainSubstring("Neighbors[0]")))
		})
		It("Should reject an out of range port", func() {
			n.Port = 70000
			Expect(n.Validate()).To(MatchError(ContainSubstring("Port")))
		})
		It("Should reject a non-positive fanout", func() {
			n.Fanout = 0
			Expect(n.Validate()).To(MatchError(ContainSubstring("Fanout")))
		})
		It("Should reject a missing address", func() {
			n.Address = ""
			Expect(n.Validate()).To(HaveOccurred())
		})
	})

	It("Should join the address and port", func() {
		n := config.Node{Address: "::1", Port: 7000}
		Expect(n.HostPort()).To(Equal(peer.Address("[::1]:7000")))
		Expect(n.HostPort().Valid()).To(BeTrue())
	})

	It("Should convert neighbors to seeds", func() {
		n := config.Node{Neighbors: []string{"a:1", "b:2"}}
		Expect(n.Seeds()).To(Equal([]peer.Address{"a:1", "b:2"}))
	})

	Describe("Load", func() {
		It("Should load a file from disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "node.yaml")
			Expect(os.WriteFile(path, []byte("name: beta\nport: 7001\n"), 0o644)).To(Succeed())
			n, err := config.Load(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(n.Name).To(Equal("beta"))
			Expect(n.HostPort()).To(Equal(peer.Address("127.0.0.1:7001")))
		})
		It("Should fail on a missing file", func() {
			_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})
})
