package rules

import (
	"fmt"

	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// Direction is the unit step of a line family.
type Direction struct {
	DX int64 `json:"dx"`
	DY int64 `json:"dy"`
}

var (
	Horizontal   = Direction{DX: 1, DY: 0}
	Vertical     = Direction{DX: 0, DY: 1}
	MainDiagonal = Direction{DX: 1, DY: 1}
	AntiDiagonal = Direction{DX: -1, DY: 1}

	// Directions is the scan order; on equal lengths the earlier family wins.
	Directions = [4]Direction{Horizontal, Vertical, MainDiagonal, AntiDiagonal}
)

func (that Direction) String() string {
	switch that {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case MainDiagonal:
		return "main diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return fmt.Sprintf("(%d, %d)", that.DX, that.DY)
	}
}

// Line is a run of Length cells owned by Player, starting at Start and stepping by Direction.
type Line struct {
	Player    entity.Player     `json:"player"`
	Start     entity.Coordinate `json:"start"`
	Direction Direction         `json:"direction"`
	Length    int               `json:"length"`
}

// End is the last cell of the line.
func (that Line) End() entity.Coordinate {
	if that.Length == 0 {
		return that.Start
	}

	n := int64(that.Length - 1)
	return entity.At(that.Start.X+n*that.Direction.DX, that.Start.Y+n*that.Direction.DY)
}

// Cells lists the coordinates of the line from Start to End.
func (that Line) Cells() []entity.Coordinate {
	cells := make([]entity.Coordinate, 0, that.Length)

	at := that.Start
	for i := 0; i < that.Length; i++ {
		cells = append(cells, at)
		at, _ = at.Step(that.Direction.DX, that.Direction.DY)
	}

	return cells
}

func (that Line) Contains(at entity.Coordinate) bool {
	for _, cell := range that.Cells() {
		if cell == at {
			return true
		}
	}
	return false
}

func (that Line) String() string {
	return fmt.Sprintf("%s %s line of %d from %s to %s", that.Player, that.Direction, that.Length, that.Start, that.End())
}
