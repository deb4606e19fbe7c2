// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_islands.go - Islands(sizes...): disconnected two-way corridors.
//
// Contract:
//   • At least two islands, every size ≥ 1.
//   • Island k holds rooms "i<k>-<j>" for j in [0..size), linked East.
//   • The start defaults to "i0-0"; nothing links one island to another,
//     so full coverage is unreachable by construction.
//
// Complexity: O(sum(sizes)) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const (
	methodIslands = "Islands"
	minIslands    = 2
)

// islandID formats room j of island k.
func islandID(k, j int) string {
	return fmt.Sprintf("i%d-%d", k, j)
}

// Islands returns a Constructor that lays out len(sizes) separate corridors.
func Islands(sizes ...int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if len(sizes) < minIslands {
			return fmt.Errorf("%s: %d islands < %d: %w", methodIslands, len(sizes), minIslands, ErrTooFewVertices)
		}
		for k, size := range sizes {
			if size < 1 {
				return fmt.Errorf("%s: island %d size=%d: %w", methodIslands, k, size, ErrTooFewVertices)
			}
			for j := 0; j < size; j++ {
				if err := b.AddNode(islandID(k, j)); err != nil {
					return fmt.Errorf("%s: AddNode: %w", methodIslands, err)
				}
				if j > 0 {
					if err := connect(methodIslands, b, islandID(k, j-1), core.East, islandID(k, j)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
