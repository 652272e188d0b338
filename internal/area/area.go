package area

import (
	"github.com/rocketscienceinc/connectfive/internal/board"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/rules"
)

// GameArea is the playing field: the marks, the area they cover and the first winner.
// It is not safe for concurrent use.
type GameArea struct {
	board  *board.SparseBoard
	bounds board.BoundingBox
	moves  int

	winner      entity.Player
	winningLine rules.Line
}

func New() *GameArea {
	return &GameArea{
		board: board.NewSparseBoard(),
	}
}

// Mark places player at (x, y), overwriting whatever was there.
// Only the marked cell is checked for a win, and the first winner is kept for good.
// Values other than Naught and Cross are ignored.
func (that *GameArea) Mark(player entity.Player, x, y int64) {
	if !player.Valid() {
		return
	}

	at := entity.At(x, y)

	that.bounds = that.bounds.Extend(at)
	that.board.Mark(at, player)
	that.moves++

	if that.winner != entity.Nobody || !rules.IsWin(that.board, at, player) {
		return
	}

	that.winner = player
	that.winningLine, _ = rules.LongestLine(that.board, at)
}

func (that *GameArea) Winner() (entity.Player, bool) {
	return that.winner, that.winner != entity.Nobody
}

// WinningLine is the full line that decided the game, as it stood when it was completed.
func (that *GameArea) WinningLine() (rules.Line, bool) {
	return that.winningLine, that.winner != entity.Nobody
}

// LongestLine reports the longest run through (x, y) for its current occupant.
func (that *GameArea) LongestLine(x, y int64) (rules.Line, bool) {
	return rules.LongestLine(that.board, entity.At(x, y))
}

// Width is the number of columns of the bounding box, false when it does not fit in an int64.
func (that *GameArea) Width() (int64, bool) {
	return that.bounds.Width()
}

func (that *GameArea) Height() (int64, bool) {
	return that.bounds.Height()
}

func (that *GameArea) Bounds() board.BoundingBox {
	return that.bounds
}

// AllPlays returns the occupant of every cell of the bounding box in row-major order.
// It fails with apperror.ErrAreaTooLarge when the box holds more than board.MaxCells cells.
func (that *GameArea) AllPlays() ([]entity.Player, error) {
	return that.board.All(that.bounds)
}

// Plays lists the occupied cells ordered by x, then y.
func (that *GameArea) Plays() []entity.Play {
	return that.board.Plays()
}

// Moves counts the accepted Mark calls, overwrites included.
func (that *GameArea) Moves() int {
	return that.moves
}

// Snapshot copies the occupied cells, not the whole bounding box.
func (that *GameArea) Snapshot() Snapshot {
	return Snapshot{
		Bounds: that.bounds,
		Winner: that.winner,
		Line:   that.winningLine,
		Moves:  that.moves,

		cells: that.board.Copy(),
	}
}
