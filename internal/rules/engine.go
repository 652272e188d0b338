package rules

import (
	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// WinningLength is the run length that ends the game.
const WinningLength = 5

// CellReader is the read side of a board.
type CellReader interface {
	Get(at entity.Coordinate) (entity.Play, bool)
}

// LongestLine returns the longest run through at, owned by whoever occupies at.
// Runs are followed to their end, so lines longer than WinningLength are reported in full.
func LongestLine(board CellReader, at entity.Coordinate) (Line, bool) {
	play, ok := board.Get(at)
	if !ok {
		return Line{}, false
	}

	var longest Line
	for _, dir := range Directions {
		line := RunThrough(board, at, play.Player, dir, 0)
		if line.Length > longest.Length {
			longest = line
		}
	}

	return longest, true
}

// IsWin reports whether a run of at least WinningLength cells owned by player passes through at.
// At most WinningLength-1 cells are examined on each side per direction.
func IsWin(board CellReader, at entity.Coordinate, player entity.Player) bool {
	if !owns(board, at, player) {
		return false
	}

	for _, dir := range Directions {
		if RunThrough(board, at, player, dir, WinningLength).Length >= WinningLength {
			return true
		}
	}

	return false
}

// RunThrough measures the run of player's cells through at along dir.
// Each side is followed for at most limit-1 cells; limit <= 0 follows it to the first gap.
// The returned line always counts at itself, even if it is not yet on the board.
func RunThrough(board CellReader, at entity.Coordinate, player entity.Player, dir Direction, limit int) Line {
	back, start := walk(board, at, player, -dir.DX, -dir.DY, limit)
	forward, _ := walk(board, at, player, dir.DX, dir.DY, limit)

	return Line{
		Player:    player,
		Start:     start,
		Direction: dir,
		Length:    back + 1 + forward,
	}
}

// walk counts consecutive cells owned by player beyond from, returning the count and the last such cell.
func walk(board CellReader, from entity.Coordinate, player entity.Player, dx, dy int64, limit int) (int, entity.Coordinate) {
	count, last := 0, from

	for limit <= 0 || count < limit-1 {
		next, ok := last.Step(dx, dy)
		if !ok || !owns(board, next, player) {
			break
		}

		count++
		last = next
	}

	return count, last
}

func owns(board CellReader, at entity.Coordinate, player entity.Player) bool {
	play, ok := board.Get(at)
	return ok && play.Player == player
}
