package board

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// SparseBoard stores only the cells that have been marked, keyed by column then row.
type SparseBoard struct {
	columns map[int64]map[int64]entity.Player
	count   int
}

func NewSparseBoard() *SparseBoard {
	return &SparseBoard{
		columns: make(map[int64]map[int64]entity.Player),
	}
}

// Mark records player at the coordinate, replacing any previous occupant.
func (that *SparseBoard) Mark(at entity.Coordinate, player entity.Player) {
	column, ok := that.columns[at.X]
	if !ok {
		column = make(map[int64]entity.Player)
		that.columns[at.X] = column
	}

	if _, taken := column[at.Y]; !taken {
		that.count++
	}

	column[at.Y] = player
}

// Get returns the play at the coordinate, if any.
func (that *SparseBoard) Get(at entity.Coordinate) (entity.Play, bool) {
	player, ok := that.columns[at.X][at.Y]
	if !ok {
		return entity.Play{}, false
	}
	return entity.Play{Player: player, At: at}, true
}

// All returns the occupant of every cell in box in row-major order, Nobody for empty cells.
// Boxes with more than MaxCells cells are refused with apperror.ErrAreaTooLarge.
func (that *SparseBoard) All(box BoundingBox) ([]entity.Player, error) {
	count, ok := box.Cells()
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAreaTooLarge, box)
	}

	cells := make([]entity.Player, 0, count)

	box.Each(func(at entity.Coordinate) bool {
		cells = append(cells, that.columns[at.X][at.Y])
		return true
	})

	return cells, nil
}

// Copy returns every stored play as a flat map detached from the board.
func (that *SparseBoard) Copy() map[entity.Coordinate]entity.Player {
	cells := make(map[entity.Coordinate]entity.Player, that.count)

	for x, column := range that.columns {
		for y, player := range column {
			cells[entity.At(x, y)] = player
		}
	}

	return cells
}

// Plays lists every stored play ordered by x, then y.
func (that *SparseBoard) Plays() []entity.Play {
	plays := make([]entity.Play, 0, that.count)

	for x, column := range that.columns {
		for y, player := range column {
			plays = append(plays, entity.Play{Player: player, At: entity.At(x, y)})
		}
	}

	slices.SortFunc(plays, func(a, b entity.Play) int {
		if c := cmp.Compare(a.At.X, b.At.X); c != 0 {
			return c
		}
		return cmp.Compare(a.At.Y, b.At.Y)
	})

	return plays
}

func (that *SparseBoard) Len() int {
	return that.count
}
