package render

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// Board is the read-only view a presentation layer needs.
type Board interface {
	Width() (int64, bool)
	Height() (int64, bool)
	AllPlays() ([]entity.Player, error)
}

const (
	topLeft     = "⌜"
	topRight    = "⌝"
	bottomLeft  = "⌞"
	bottomRight = "⌟"
	topEdge     = "⎺"
	bottomEdge  = "⎽"
	side        = "|"
)

// Glyph is the character drawn for a cell's occupant.
func Glyph(player entity.Player) rune {
	switch player {
	case entity.Cross:
		return 'x'
	case entity.Naught:
		return 'o'
	default:
		return ' '
	}
}

// Format draws the board inside a frame, one text row per board row.
func Format(board Board) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, board); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write is Format onto w. The last line has no trailing newline.
// Nothing is written when the board cannot be laid out.
func Write(w io.Writer, board Board) error {
	width, wok := board.Width()
	height, hok := board.Height()
	if !wok || !hok {
		return fmt.Errorf("failed to measure board: %w", apperror.ErrAreaTooLarge)
	}

	cells, err := board.AllPlays()
	if err != nil {
		return fmt.Errorf("failed to lay out board: %w", err)
	}

	if hi, lo := bits.Mul64(uint64(width), uint64(height)); hi != 0 || lo != uint64(len(cells)) {
		return fmt.Errorf("board has %d cells, expected %dx%d", len(cells), width, height)
	}

	out := bufio.NewWriter(w)

	out.WriteString(topLeft)
	out.WriteString(strings.Repeat(topEdge, int(width)))
	out.WriteString(topRight + "\n")

	for row := int64(0); row < height; row++ {
		out.WriteString(side)
		for _, cell := range cells[row*width : (row+1)*width] {
			out.WriteRune(Glyph(cell))
		}
		out.WriteString(side + "\n")
	}

	out.WriteString(bottomLeft)
	out.WriteString(strings.Repeat(bottomEdge, int(width)))
	out.WriteString(bottomRight)

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
