// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// api.go - thin public entry point for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMap(bopts, cons...). Creates the core.Builder,
//     resolves cfg, runs cons in order, builds the Graph.
//   • All constructors are implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coverwalk/core"
)

// Constructor applies a deterministic mutation to a core.Builder using the
// resolved builderConfig. Constructors validate parameters early and
// return sentinel errors; they never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildMap resolves bopts, applies every constructor in order and builds
// the resulting graph. Constructor errors are wrapped with "BuildMap: %w".
func BuildMap(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := core.NewBuilder()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}
	if cfg.start != "" {
		b.SetStart(cfg.start)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildMap: %w", err)
	}
	return g, nil
}

// addNodes registers ids 0..n-1 through cfg.idFn, in ascending order.
func addNodes(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := b.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}
	return nil
}

// connect wraps core.Builder.Connect with method context.
func connect(method string, b *core.Builder, u string, d core.Direction, v string) error {
	if err := b.Connect(u, d, v); err != nil {
		return fmt.Errorf("%s: Connect(%s-%s-%s): %w", method, u, d, v, err)
	}
	return nil
}
