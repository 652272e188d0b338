package area

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/board"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/rules"
)

// Snapshot is a detached copy of a GameArea's visible state.
// Only occupied cells are stored; the dense layout is built on request.
type Snapshot struct {
	Bounds board.BoundingBox
	Winner entity.Player
	Line   rules.Line
	Moves  int

	cells map[entity.Coordinate]entity.Player
}

// At returns the occupant of a cell, Nobody when it is empty.
func (that Snapshot) At(at entity.Coordinate) entity.Player {
	return that.cells[at]
}

func (that Snapshot) Width() (int64, bool) {
	return that.Bounds.Width()
}

func (that Snapshot) Height() (int64, bool) {
	return that.Bounds.Height()
}

// Len is the number of occupied cells.
func (that Snapshot) Len() int {
	return len(that.cells)
}

// AllPlays lays the bounding box out row by row, Nobody for empty cells.
func (that Snapshot) AllPlays() ([]entity.Player, error) {
	count, ok := that.Bounds.Cells()
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAreaTooLarge, that.Bounds)
	}

	cells := make([]entity.Player, 0, count)
	that.Bounds.Each(func(at entity.Coordinate) bool {
		cells = append(cells, that.cells[at])
		return true
	})

	return cells, nil
}

// Plays lists the occupied cells ordered by x, then y.
func (that Snapshot) Plays() []entity.Play {
	plays := make([]entity.Play, 0, len(that.cells))
	for at, player := range that.cells {
		plays = append(plays, entity.Play{Player: player, At: at})
	}

	slices.SortFunc(plays, func(a, b entity.Play) int {
		if c := cmp.Compare(a.At.X, b.At.X); c != 0 {
			return c
		}
		return cmp.Compare(a.At.Y, b.At.Y)
	})

	return plays
}

func (that Snapshot) HasWinner() bool {
	return that.Winner != entity.Nobody
}
