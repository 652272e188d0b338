package entity

import (
	"fmt"
	"math"
)

// Coordinate is a cell on the unbounded plane. Y grows downwards.
type Coordinate struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

// Play is a coordinate together with the player who marked it.
type Play struct {
	Player Player     `json:"player"`
	At     Coordinate `json:"at"`
}

func At(x, y int64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Step moves by (dx, dy) and reports false when the result would not fit in int64.
func (that Coordinate) Step(dx, dy int64) (Coordinate, bool) {
	x, ok := addInt64(that.X, dx)
	if !ok {
		return that, false
	}

	y, ok := addInt64(that.Y, dy)
	if !ok {
		return that, false
	}

	return Coordinate{X: x, Y: y}, true
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}

func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}
