// SPDX-License-Identifier: MIT
// Package: coverwalk/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn  = DefaultIDFn ("0","1","2",...)
//   • rng   = nil         (pure/deterministic unless seeded)
//   • start = ""          (first node added)
//
// Option constructors validate and panic on meaningless inputs (nil
// functions); constructors themselves never panic.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Start node; empty means the first node added.
	start string
}

// BuilderOption customizes constructor behavior by mutating builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the index → ID generator used by index-based
// constructors (Line, Ring, Lollipop). Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithStart designates the start node of the built graph.
func WithStart(id string) BuilderOption {
	return func(c *builderConfig) { c.start = id }
}

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}
