// Package epoch implements the process-wide logical version counter a node
// gossips alongside its identity. The counter is shared between the gossip
// scheduler and concurrently executing RPC handlers, and every update is a
// lock-free monotonic operation.
package epoch

import "sync/atomic"

// Genesis is the initial value of a clock on the node that founds a cluster.
const Genesis uint32 = 1

// Clock is a monotonically non-decreasing epoch counter. The zero value is a
// clock at epoch 0 and is ready to use.
type Clock struct {
	value atomic.Uint32
}

// New returns a clock starting at the given epoch.
func New(start uint32) *Clock {
	c := &Clock{}
	c.value.Store(start)
	return c
}

// Value returns the current epoch.
func (c *Clock) Value() uint32 { return c.value.Load() }

// AdvanceTo raises the clock to v. It is a no-op if v is not greater than the
// current epoch. Returns true if the clock moved.
func (c *Clock) AdvanceTo(v uint32) bool {
	for {
		cur := c.value.Load()
		if v <= cur {
			return false
		}
		if c.value.CompareAndSwap(cur, v) {
			return true
		}
	}
}

// Increment bumps the clock by one and returns the new epoch. The clock
// saturates instead of wrapping around.
func (c *Clock) Increment() uint32 {
	for {
		cur := c.value.Load()
		if cur == ^uint32(0) {
			return cur
		}
		if c.value.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}
