// Package sim implements the grid simulation shared by all snake variants:
// a fixed-tick move/collide/eat loop over a rectangular grid, with optional
// fused explosive food and debris obstacles. The package is pure logic with
// an injected RNG; rendering, input mapping and timing live in the platform.
package sim

import "math"

// Cell is a grid coordinate (column, row). Value type, never mutated.
type Cell struct {
	X, Y int
}

// Dist returns the Euclidean distance to another cell in grid units.
func (c Cell) Dist(o Cell) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Dist2 returns the squared Euclidean distance to another cell.
func (c Cell) Dist2(o Cell) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Direction is one of the four unit movement vectors.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit vector for the direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Shift returns the neighboring cell one step in the given direction.
func (c Cell) Shift(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
