package script

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
)

const randomFirst = "random"

// Script is a scripted game: an optional starting position followed by alternating moves.
type Script struct {
	First  entity.Player
	Preset []entity.Play
	Moves  []entity.Coordinate
}

type document struct {
	First string    `yaml:"first"`
	Board string    `yaml:"board"`
	Moves [][]int64 `yaml:"moves"`
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	return script, nil
}

// Parse decodes a YAML script. An empty or "random" first player is picked at random.
func Parse(data []byte) (*Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script: %w", err)
	}

	first, err := ParseFirst(doc.First)
	if err != nil {
		return nil, err
	}

	script := &Script{First: first}

	if strings.TrimSpace(doc.Board) != "" {
		if script.Preset, err = ParseTemplate(doc.Board); err != nil {
			return nil, fmt.Errorf("failed to parse board: %w", err)
		}
	}

	for i, move := range doc.Moves {
		if len(move) != 2 {
			return nil, fmt.Errorf("%w: move %d has %d values, expected [x, y]", apperror.ErrInvalidMove, i+1, len(move))
		}
		script.Moves = append(script.Moves, entity.At(move[0], move[1]))
	}

	if len(script.Preset) == 0 && len(script.Moves) == 0 {
		return nil, apperror.ErrEmptyScript
	}

	return script, nil
}

// PlayerFor returns who makes the i-th scripted move (zero based).
func (that *Script) PlayerFor(i int) entity.Player {
	if i%2 == 0 {
		return that.First
	}
	return that.First.Opponent()
}

// Interleave merges two move lists a, b, a, b, ... until both are exhausted.
func Interleave(a, b []entity.Coordinate) []entity.Coordinate {
	moves := make([]entity.Coordinate, 0, len(a)+len(b))

	for i := 0; i < max(len(a), len(b)); i++ {
		if i < len(a) {
			moves = append(moves, a[i])
		}
		if i < len(b) {
			moves = append(moves, b[i])
		}
	}

	return moves
}

// RandomPlayer flips a coin between the two sides.
func RandomPlayer() entity.Player {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return entity.Naught
	}
	return entity.Cross
}

// ParseFirst reads a side name; empty or "random" flips a coin.
func ParseFirst(value string) (entity.Player, error) {
	if value = strings.TrimSpace(value); value == "" || strings.EqualFold(value, randomFirst) {
		return RandomPlayer(), nil
	}

	player, err := entity.ParsePlayer(value)
	if err != nil {
		return entity.Nobody, fmt.Errorf("failed to parse first player: %w", err)
	}

	return player, nil
}
