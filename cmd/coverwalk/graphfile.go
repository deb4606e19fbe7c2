package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coverwalk/builder"
	"github.com/katalvlaran/coverwalk/core"
)

var errBadFixture = errors.New("coverwalk: malformed fixture")

// graphDocument is the YAML form of a room graph:
//
//	start: hall
//	rooms:
//	  hall: {n: kitchen, e: study}
//	  kitchen: {s: hall}
//	  study: {w: hall}
//
// Rooms are added in document order, so without start the first room is
// the start. Exits are one-way; list the reverse exit explicitly.
type graphDocument struct {
	Start string    `yaml:"start"`
	Rooms yaml.Node `yaml:"rooms"`
}

// loadGraphFile reads and builds the graph document at path.
func loadGraphFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := decodeGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// decodeGraph builds a graph from a YAML document.
func decodeGraph(r io.Reader) (*core.Graph, error) {
	var doc graphDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrGraphInput, err)
	}
	if doc.Rooms.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: rooms must be a mapping", core.ErrGraphInput)
	}

	type room struct {
		id    string
		exits [4]string
	}
	rooms := make([]room, 0, len(doc.Rooms.Content)/2)
	for i := 0; i+1 < len(doc.Rooms.Content); i += 2 {
		key, val := doc.Rooms.Content[i], doc.Rooms.Content[i+1]
		var raw map[string]string
		if err := val.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: room %q (line %d): %v", core.ErrGraphInput, key.Value, key.Line, err)
		}
		rm := room{id: key.Value}
		for name, to := range raw {
			d, err := core.ParseDirection(name)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", rm.id, err)
			}
			if rm.exits[d] != "" {
				return nil, fmt.Errorf("%w: room %q lists %s twice", core.ErrExitExists, rm.id, d)
			}
			rm.exits[d] = to
		}
		rooms = append(rooms, rm)
	}

	b := core.NewBuilder()
	for _, rm := range rooms {
		if err := b.AddNode(rm.id); err != nil {
			return nil, err
		}
	}
	for _, rm := range rooms {
		for _, d := range core.Directions() {
			if to := rm.exits[d]; to != "" {
				if err := b.Link(rm.id, d, to); err != nil {
					return nil, err
				}
			}
		}
	}
	if doc.Start != "" {
		b.SetStart(doc.Start)
	}
	return b.Build()
}

// parseFixture builds one of the generated graphs:
//
//	line:N  ring:N  oneway:N  grid:RxC  maze:RxC  lollipop:TAIL,LOOP  islands:A,B,...
func parseFixture(fixture string, seed int64) (*core.Graph, error) {
	kind, arg, ok := strings.Cut(fixture, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q: want kind:args", errBadFixture, fixture)
	}
	var (
		cons builder.Constructor
		opts []builder.BuilderOption
	)
	switch kind {
	case "line", "ring", "oneway":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadFixture, fixture, err)
		}
		switch kind {
		case "line":
			cons = builder.Line(n, core.East)
		case "ring":
			cons = builder.Ring(n, false)
		default:
			cons = builder.Ring(n, true)
		}
	case "grid", "maze":
		dims, err := ints(arg, "x", 2)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadFixture, fixture, err)
		}
		cons = builder.Grid(dims[0], dims[1])
		if kind == "maze" {
			cons = builder.Maze(dims[0], dims[1])
			opts = append(opts, builder.WithSeed(seed))
		}
	case "lollipop":
		parts, err := ints(arg, ",", 2)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadFixture, fixture, err)
		}
		cons = builder.Lollipop(parts[0], parts[1])
	case "islands":
		sizes, err := ints(arg, ",", -1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadFixture, fixture, err)
		}
		cons = builder.Islands(sizes...)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errBadFixture, kind)
	}
	return builder.BuildMap(opts, cons)
}

// ints splits s on sep into integers; want < 0 accepts any count.
func ints(s, sep string, want int) ([]int, error) {
	fields := strings.Split(s, sep)
	if want >= 0 && len(fields) != want {
		return nil, fmt.Errorf("want %d values separated by %q", want, sep)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
