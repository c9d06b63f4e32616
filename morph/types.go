package morph

import "errors"

// Sentinel errors for morph operations.
var (
	// ErrBadRadius indicates a negative or NaN structuring radius.
	ErrBadRadius = errors.New("morph: radius must be a non-negative number")
	// ErrBadWidth indicates a non-positive or NaN band width.
	ErrBadWidth = errors.New("morph: band width must be positive")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("morph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("morph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns (dr, dc) neighbor steps for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
