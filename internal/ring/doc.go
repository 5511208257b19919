// Package ring selects gossip targets by walking the sorted address ring
// forward from the host's own position. Selection is a pure function of the
// known addresses, so every node's walk order is reproducible and rotates as
// membership grows.
package ring
