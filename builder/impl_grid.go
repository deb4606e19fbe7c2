// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_grid.go - Grid(rows, cols): an orthogonal two-way room grid.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1.
//   • Room "r,c" links East to "r,c+1" and South to "r+1,c", both two-way.
//   • The start defaults to "0,0". cfg.idFn is not used.
//
// Complexity: O(rows*cols) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// cellID formats the grid coordinate (r, c) as "r,c".
func cellID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols grid of rooms.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := b.AddNode(cellID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode: %w", methodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(methodGrid, b, cellID(r, c), core.East, cellID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, b, cellID(r, c), core.South, cellID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
