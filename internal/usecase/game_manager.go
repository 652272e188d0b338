package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/area"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/rules"
	"github.com/rocketscienceinc/connectfive/internal/script"
)

// WinListener is told once, when a game gets its winner.
type WinListener interface {
	OnWin(ctx context.Context, sessionID string, winner entity.Player, line rules.Line)
}

// Move is what a single mark left behind. It is cheap to build whatever the size of the board.
type Move struct {
	Player entity.Player
	At     entity.Coordinate
	Moves  int
	Winner entity.Player
	Line   rules.Line
}

func (that Move) HasWinner() bool {
	return that.Winner != entity.Nobody
}

// Result summarises a scripted game.
type Result struct {
	Applied  int
	Skipped  int
	Snapshot area.Snapshot
}

// GameManager serialises all access to one GameArea. Marks take the lock,
// reads are served from snapshots copied under it on request.
type GameManager struct {
	logger   *slog.Logger
	listener WinListener

	mu   sync.Mutex
	id   string
	game *area.GameArea
}

func NewGameManager(logger *slog.Logger, listener WinListener) *GameManager {
	id := uuid.NewString()

	return &GameManager{
		logger:   logger.With("component", "game_manager", "session", id),
		listener: listener,

		id:   id,
		game: area.New(),
	}
}

func (that *GameManager) ID() string {
	return that.id
}

// Mark places player at (x, y). Any cell may be marked or re-marked.
func (that *GameManager) Mark(ctx context.Context, player entity.Player, x, y int64) (Move, error) {
	if err := ctx.Err(); err != nil {
		return Move{}, fmt.Errorf("failed to mark: %w", err)
	}

	if !player.Valid() {
		return Move{}, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	that.mu.Lock()
	_, hadWinner := that.game.Winner()
	that.game.Mark(player, x, y)
	move := Move{Player: player, At: entity.At(x, y), Moves: that.game.Moves()}
	move.Winner, _ = that.game.Winner()
	move.Line, _ = that.game.WinningLine()
	that.mu.Unlock()

	that.logger.Debug("marked", "player", player.String(), "x", x, "y", y, "moves", move.Moves)

	if !hadWinner && move.HasWinner() {
		that.logger.Info("game won", "winner", move.Winner.String(), "line", move.Line.String())

		if that.listener != nil {
			that.listener.OnWin(ctx, that.id, move.Winner, move.Line)
		}
	}

	return move, nil
}

// Play applies a script: the preset position first, then the moves in turn,
// stopping as soon as somebody wins.
func (that *GameManager) Play(ctx context.Context, s *script.Script) (Result, error) {
	log := that.logger.With("method", "Play")

	var result Result
	_, _, won := that.Winner()

	for _, play := range s.Preset {
		move, err := that.Mark(ctx, play.Player, play.At.X, play.At.Y)
		if err != nil {
			return result, fmt.Errorf("failed to place preset: %w", err)
		}
		won = move.HasWinner()
	}

	for i, at := range s.Moves {
		if won {
			result.Skipped = len(s.Moves) - i
			log.Info("script stopped after win", "skipped", result.Skipped)
			break
		}

		move, err := that.Mark(ctx, s.PlayerFor(i), at.X, at.Y)
		if err != nil {
			return result, fmt.Errorf("failed to play move %d: %w", i+1, err)
		}

		result.Applied++
		won = move.HasWinner()
	}

	result.Snapshot = that.Snapshot()

	return result, nil
}

// Winner reports the first winner and the line that made it, if there is one.
func (that *GameManager) Winner() (entity.Player, rules.Line, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	winner, ok := that.game.Winner()
	line, _ := that.game.WinningLine()

	return winner, line, ok
}

func (that *GameManager) Snapshot() area.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Snapshot()
}

func (that *GameManager) LongestLine(x, y int64) (rules.Line, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.LongestLine(x, y)
}
