package core

import (
	"fmt"
	"strings"
)

// Direction labels one exit of a node.
type Direction uint8

// The enumeration order below is the canonical iteration order for exits.
const (
	North Direction = iota
	South
	East
	West
)

// numDirections is the size of the Direction enumeration.
const numDirections = 4

// directionOrder is the fixed order in which exits are enumerated.
var directionOrder = [numDirections]Direction{North, South, East, West}

var directionNames = [numDirections]string{"n", "s", "e", "w"}

// Directions returns every Direction in canonical order.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	copy(out, directionOrder[:])
	return out
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

// String returns the short form ("n", "s", "e", "w").
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Opposite returns the direction that leads back, e.g. North → South.
// The result for an invalid direction is itself.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// MarshalText encodes d in its short form.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText accepts anything ParseDirection accepts.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses "n", "north", "s", "south", "e", "east", "w" or
// "west", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "e", "east":
		return East, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
