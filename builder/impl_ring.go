// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_ring.go - Ring(n, oneWay): a cycle of n rooms.
//
// Contract:
//   • n ≥ 2.
//   • oneWay: room i has a single exit East to (i+1) mod n. A full tour
//     needs exactly n-1 moves and there is no way back.
//   • two-way: i East→ i+1 with the West return; the cycle closes with
//     (n-1) North→ 0 and 0 South→ (n-1). For n == 2 the closing pair is
//     a second, parallel corridor between the two rooms.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 2
)

// Ring returns a Constructor that builds an n-room cycle.
func Ring(n int, oneWay bool) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodRing, b, cfg, n); err != nil {
			return err
		}
		if oneWay {
			for i := 0; i < n; i++ {
				u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
				if err := b.Link(u, core.East, v); err != nil {
					return fmt.Errorf("%s: Link(%s-e-%s): %w", methodRing, u, v, err)
				}
			}
			return nil
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(methodRing, b, cfg.idFn(i), core.East, cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return connect(methodRing, b, cfg.idFn(n-1), core.North, cfg.idFn(0))
	}
}
