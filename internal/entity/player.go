package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
)

// Player identifies who occupies a cell. The zero value means the cell is empty.
type Player uint8

const (
	Nobody Player = iota
	Naught
	Cross
)

// ParsePlayer accepts "naught", "o", "cross" and "x" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naught", "o":
		return Naught, nil
	case "cross", "x":
		return Cross, nil
	default:
		return Nobody, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, s)
	}
}

// Valid reports whether that is one of the two playing sides.
func (that Player) Valid() bool {
	return that == Naught || that == Cross
}

// Opponent returns the other side. Nobody has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case Naught:
		return Cross
	case Cross:
		return Naught
	default:
		return Nobody
	}
}

func (that Player) String() string {
	switch that {
	case Naught:
		return "Naught"
	case Cross:
		return "Cross"
	default:
		return ""
	}
}
