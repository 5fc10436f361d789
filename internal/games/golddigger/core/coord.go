// Package core provides the mining simulation for Gold Digger.
// This package is UI-agnostic and deterministic for a given seed and delta sequence.
package core

import "fmt"

// Coord represents a cell on the world grid.
// X increases to the right, Y increases with depth.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord in the given direction.
// DirNone returns c unchanged.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is a directional input held by the player.
// The declaration order is the input priority: Right beats Left beats Down beats Up.
type Dir uint8

const (
	DirNone Dir = iota
	DirRight
	DirLeft
	DirDown
	DirUp
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// PickDirection resolves simultaneously held directions to a single one.
func PickDirection(right, left, down, up bool) Dir {
	switch {
	case right:
		return DirRight
	case left:
		return DirLeft
	case down:
		return DirDown
	case up:
		return DirUp
	default:
		return DirNone
	}
}
