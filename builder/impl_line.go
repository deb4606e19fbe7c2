// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// impl_line.go - Line(n, dir): a two-way corridor of n rooms.
//
// Contract:
//   • n ≥ 1 (a single room is a valid corridor).
//   • Room i exits along dir to room i+1 and back along dir.Opposite().
//   • IDs come from cfg.idFn(0..n-1); the start defaults to idFn(0).
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

const (
	methodLine   = "Line"
	minLineNodes = 1
)

// Line returns a Constructor that lays n rooms out along dir.
func Line(n int, dir core.Direction) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodLine, n, minLineNodes, ErrTooFewVertices)
		}
		if !dir.Valid() {
			return fmt.Errorf("%s: %w", methodLine, core.ErrUnknownDirection)
		}
		if err := addNodes(methodLine, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(methodLine, b, cfg.idFn(i), dir, cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
