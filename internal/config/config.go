// Package config loads node configuration from YAML files.
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/arya-analytics/whoshere/internal/peer"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Node is the configuration of a single node. Command line arguments
// override the values loaded from a file.
type Node struct {
	// Name is the node's human readable name.
	Name string `yaml:"name"`
	// Address is the host or IP the node binds to.
	Address string `yaml:"address" validate:"required,ip|hostname"`
	// Port is the port the node binds to. Zero picks an ephemeral port.
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
	// Neighbors are the host:port addresses of existing cluster members.
	Neighbors []string `yaml:"neighbors" validate:"dive,hostname_port"`
	// Genesis marks the node as the first node of a new cluster.
	Genesis bool `yaml:"genesis"`
	// Interval is the time between gossip rounds.
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
	// Fanout is the number of successful pushes after which a round stops.
	Fanout int `yaml:"fanout" validate:"gt=0"`
	// Diagnostics is the address the diagnostics HTTP server listens on.
	// Empty disables it.
	Diagnostics string `yaml:"diagnostics" validate:"omitempty,hostname_port"`
	// Debug enables development logging.
	Debug bool `yaml:"debug"`
}

func Default() Node {
	return Node{
		Address:  "127.0.0.1",
		Interval: 5 * time.Second,
		Fanout:   2,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field of n.
func (n Node) Validate() error {
	return errors.Wrap(validate.Struct(n), "[config] - invalid configuration")
}

// HostPort returns the address the node serves gossip on.
func (n Node) HostPort() peer.Address {
	return peer.Address(net.JoinHostPort(n.Address, strconv.Itoa(n.Port)))
}

// Seeds returns Neighbors as addresses.
func (n Node) Seeds() []peer.Address {
	seeds := make([]peer.Address, len(n.Neighbors))
	for i, nb := range n.Neighbors {
		seeds[i] = peer.Address(nb)
	}
	return seeds
}

// Parse decodes data over the defaults. It does not validate the result, as
// command line arguments may still complete it.
func Parse(data []byte) (Node, error) {
	n := Default()
	if err := yaml.Unmarshal(data, &n); err != nil {
		return n, errors.Wrap(err, "[config] - failed to parse")
	}
	return n, nil
}

// Load reads and parses the file at path.
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrapf(err, "[config] - failed to read %s", path)
	}
	return Parse(data)
}
