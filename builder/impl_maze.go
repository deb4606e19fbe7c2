// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_maze.go - Maze(rows, cols): a random spanning tree over a grid.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, cfg.rng != nil (ErrNeedRandSource otherwise).
//   • Carves a perfect maze with an iterative randomized DFS starting at
//     "0,0": every room is reachable and there are no cycles, so every
//     leaf is a dead end the search must back out of.
//   • IDs are "r,c" as in Grid; the start defaults to "0,0".
//
// Determinism: identical seeds produce identical mazes.
// Complexity: O(rows*cols) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const methodMaze = "Maze"

type cell struct{ r, c int }

// Maze returns a Constructor that carves a rows×cols perfect maze.
func Maze(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodMaze, rows, cols, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := b.AddNode(cellID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode: %w", methodMaze, err)
				}
			}
		}

		seen := make([]bool, rows*cols)
		seen[0] = true
		stack := []cell{{0, 0}}
		dirs := core.Directions()
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			var open []core.Direction
			for _, d := range dirs {
				n, ok := step(top, d, rows, cols)
				if ok && !seen[n.r*cols+n.c] {
					open = append(open, d)
				}
			}
			if len(open) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			d := open[cfg.rng.Intn(len(open))]
			n, _ := step(top, d, rows, cols)
			if err := connect(methodMaze, b, cellID(top.r, top.c), d, cellID(n.r, n.c)); err != nil {
				return err
			}
			seen[n.r*cols+n.c] = true
			stack = append(stack, n)
		}
		return nil
	}
}

// step moves one cell in direction d, reporting whether it stays on the grid.
func step(from cell, d core.Direction, rows, cols int) (cell, bool) {
	switch d {
	case core.North:
		from.r--
	case core.South:
		from.r++
	case core.East:
		from.c++
	case core.West:
		from.c--
	}
	return from, from.r >= 0 && from.r < rows && from.c >= 0 && from.c < cols
}
