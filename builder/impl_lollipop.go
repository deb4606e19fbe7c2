// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_lollipop.go - Lollipop(tail, loop): a cycle with a corridor attached.
//
// Contract:
//   • loop ≥ 3, tail ≥ 1.
//   • Loop rooms idFn(0..loop-1) form a two-way Ring; the tail rooms
//     idFn(loop..loop+tail-1) run North from room idFn(0), two-way.
//   • The start is idFn(0), the junction. Any full tour from the junction
//     must walk back through rooms it already visited, so the search has
//     to resolve at least one dead end.
//
// Complexity: O(tail+loop) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const (
	methodLollipop  = "Lollipop"
	minLollipopLoop = 3
	minLollipopTail = 1
)

// Lollipop returns a Constructor for a loop-room cycle with a tail-room stick.
func Lollipop(tail, loop int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if loop < minLollipopLoop {
			return fmt.Errorf("%s: loop=%d < %d: %w", methodLollipop, loop, minLollipopLoop, ErrTooFewVertices)
		}
		if tail < minLollipopTail {
			return fmt.Errorf("%s: tail=%d < %d: %w", methodLollipop, tail, minLollipopTail, ErrTooFewVertices)
		}
		if err := Ring(loop, false)(b, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodLollipop, err)
		}
		prev := cfg.idFn(0)
		for i := loop; i < loop+tail; i++ {
			id := cfg.idFn(i)
			if err := b.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodLollipop, id, err)
			}
			if err := connect(methodLollipop, b, prev, core.North, id); err != nil {
				return err
			}
			prev = id
		}
		return nil
	}
}
