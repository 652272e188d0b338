package board

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// MaxCells is the largest number of cells a box lays out row by row.
const MaxCells = 1 << 26

// BoundingBox is the smallest rectangle enclosing every mark so far.
// All four edges are inclusive: Right and Bottom are the last occupied column and row,
// so a mark on the int64 limit is enclosed like any other. The zero value is empty.
type BoundingBox struct {
	Left   int64
	Top    int64
	Right  int64
	Bottom int64

	occupied bool
}

// NewBoundingBox returns a box spanning [left, right] x [top, bottom].
// Reversed edges yield the empty box.
func NewBoundingBox(left, top, right, bottom int64) BoundingBox {
	if left > right || top > bottom {
		return BoundingBox{}
	}
	return BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom, occupied: true}
}

// Extend grows the box just enough to include at. It never shrinks.
func (that BoundingBox) Extend(at entity.Coordinate) BoundingBox {
	if !that.occupied {
		return BoundingBox{Left: at.X, Top: at.Y, Right: at.X, Bottom: at.Y, occupied: true}
	}

	that.Left = min(that.Left, at.X)
	that.Top = min(that.Top, at.Y)
	that.Right = max(that.Right, at.X)
	that.Bottom = max(that.Bottom, at.Y)

	return that
}

func (that BoundingBox) Empty() bool {
	return !that.occupied
}

// Width is the number of columns. ok is false when the count does not fit in an int64,
// which only happens for boxes wider than half the plane.
func (that BoundingBox) Width() (width int64, ok bool) {
	if !that.occupied {
		return 0, true
	}
	return span(that.Left, that.Right)
}

// Height is Width for rows.
func (that BoundingBox) Height() (height int64, ok bool) {
	if !that.occupied {
		return 0, true
	}
	return span(that.Top, that.Bottom)
}

// Cells is Width times Height, or false when that exceeds MaxCells.
func (that BoundingBox) Cells() (int, bool) {
	width, ok := that.Width()
	if !ok {
		return 0, false
	}

	height, ok := that.Height()
	if !ok {
		return 0, false
	}

	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || lo > MaxCells {
		return 0, false
	}

	return int(lo), true
}

// Center is the middle cell of the box, rounded towards the top left.
func (that BoundingBox) Center() entity.Coordinate {
	if !that.occupied {
		return entity.At(0, 0)
	}
	return entity.At(middle(that.Left, that.Right), middle(that.Top, that.Bottom))
}

func (that BoundingBox) Contains(at entity.Coordinate) bool {
	return that.occupied &&
		at.X >= that.Left && at.X <= that.Right &&
		at.Y >= that.Top && at.Y <= that.Bottom
}

// Index returns the row-major offset of at inside the box.
// Boxes with more than MaxCells cells have no index.
func (that BoundingBox) Index(at entity.Coordinate) (int, bool) {
	if !that.Contains(at) {
		return 0, false
	}

	if _, ok := that.Cells(); !ok {
		return 0, false
	}

	width, _ := that.Width()
	return int((at.Y-that.Top)*width + (at.X - that.Left)), true
}

// Each visits every coordinate row by row until fn returns false.
func (that BoundingBox) Each(fn func(at entity.Coordinate) bool) {
	if !that.occupied {
		return
	}

	for y := that.Top; ; y++ {
		for x := that.Left; ; x++ {
			if !fn(entity.At(x, y)) {
				return
			}
			if x == that.Right {
				break
			}
		}
		if y == that.Bottom {
			return
		}
	}
}

func (that BoundingBox) String() string {
	if !that.occupied {
		return "[empty]"
	}
	return fmt.Sprintf("[%d..%d]x[%d..%d]", that.Left, that.Right, that.Top, that.Bottom)
}

// span counts the integers in [first, last]. The difference is taken in uint64,
// where it is exact for any pair of int64 values.
func span(first, last int64) (int64, bool) {
	diff := uint64(last) - uint64(first)
	if diff >= math.MaxInt64 {
		return 0, false
	}
	return int64(diff) + 1, true
}

func middle(first, last int64) int64 {
	return first + int64((uint64(last)-uint64(first))/2)
}
