package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/coverage"
	"github.com/katalvlaran/coverwalk/directions"
)

var errVerify = errors.New("coverwalk: route failed verification")

// solveFlags holds the flags of the solve command.
type solveFlags struct {
	graphFile  string
	fixture    string
	workers    int
	maxLength  int
	strategy   string
	seed       int64
	restarts   int
	timeout    time.Duration
	verify     bool
	logLevel   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coverwalk",
		Short:         "Find a route that visits every room of a map",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd(), newValidateCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	f := solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a full-coverage route and print its moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.graphFile, "graph", "", "YAML graph document")
	fl.StringVar(&f.fixture, "fixture", "", "generated graph, e.g. grid:3x4, ring:5, lollipop:3,3")
	fl.IntVar(&f.workers, "workers", coverage.DefaultOptions().Workers, "number of search workers")
	fl.IntVar(&f.maxLength, "max-length", 0, "route length limit in rooms (0 = exhaustive search)")
	fl.StringVar(&f.strategy, "strategy", coverage.Exhaustive.String(), "exhaustive or random")
	fl.Int64Var(&f.seed, "seed", 0, "seed for random strategy and maze fixtures")
	fl.IntVar(&f.restarts, "restarts", coverage.DefaultMaxRestarts, "random walks per worker")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (0 = no timeout)")
	fl.BoolVar(&f.verify, "verify", false, "replay the moves and check every room is visited")
	fl.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")
	fl.BoolVar(&f.jsonOutput, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("graph", "fixture")
	cmd.MarkFlagsOneRequired("graph", "fixture")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var graphFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a graph document and report its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraphFile(graphFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rooms, start %s\n", g.NodeCount(), g.Start())
			return nil
		},
	}
	cmd.Flags().StringVar(&graphFile, "graph", "", "YAML graph document")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

// solveOutput is the --json form of a result.
type solveOutput struct {
	RunID      string   `json:"run_id"`
	Strategy   string   `json:"strategy"`
	Phase      string   `json:"phase"`
	Path       []string `json:"path"`
	Moves      string   `json:"moves"`
	Candidates int      `json:"candidates"`
	ElapsedMS  int64    `json:"elapsed_ms"`
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}
	strategy, err := coverage.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}

	var g *core.Graph
	if f.fixture != "" {
		g, err = parseFixture(f.fixture, f.seed)
	} else {
		g, err = loadGraphFile(f.graphFile)
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	res, err := coverage.Solve(ctx, g,
		coverage.WithWorkers(f.workers),
		coverage.WithMaxLength(f.maxLength),
		coverage.WithStrategy(strategy),
		coverage.WithSeed(f.seed),
		coverage.WithMaxRestarts(f.restarts),
		coverage.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	moves, err := directions.Reconstruct(g, res.Path)
	if err != nil {
		return err
	}
	if f.verify {
		if err := verifyRoute(g, moves); err != nil {
			return err
		}
		logger.Info("route verified", slog.Int("rooms", g.NodeCount()), slog.Int("moves", len(moves)))
	}

	out := cmd.OutOrStdout()
	if !f.jsonOutput {
		fmt.Fprintln(out, directions.Format(moves))
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(solveOutput{
		RunID:      res.RunID,
		Strategy:   res.Strategy.String(),
		Phase:      res.Phase.String(),
		Path:       res.Path,
		Moves:      directions.Format(moves),
		Candidates: res.Candidates,
		ElapsedMS:  res.Elapsed.Milliseconds(),
	})
}

// verifyRoute replays moves from the start and checks every room is seen.
func verifyRoute(g *core.Graph, moves []core.Direction) error {
	rooms, err := directions.Follow(g, g.Start(), moves)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerify, err)
	}
	seen := make(map[string]struct{}, g.NodeCount())
	for _, id := range rooms {
		seen[id] = struct{}{}
	}
	if len(seen) != g.NodeCount() {
		return fmt.Errorf("%w: visited %d of %d rooms", errVerify, len(seen), g.NodeCount())
	}
	return nil
}

// newLogger builds the stderr text logger for level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("coverwalk: bad --log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
