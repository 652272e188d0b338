package usecase

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/rules"
	"github.com/rocketscienceinc/connectfive/internal/script"
)

type mockWinListener struct {
	mock.Mock
}

func (that *mockWinListener) OnWin(ctx context.Context, sessionID string, winner entity.Player, line rules.Line) {
	that.Called(ctx, sessionID, winner, line)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGameManager_Mark(t *testing.T) {
	ctx := context.Background()

	t.Run("Notifies the listener once on the winning mark", func(t *testing.T) {
		// Given: a manager with a listener expecting Cross to win
		listener := &mockWinListener{}
		manager := NewGameManager(newTestLogger(), listener)

		expectedLine := rules.Line{Player: entity.Cross, Start: entity.At(0, 0), Direction: rules.Horizontal, Length: 5}
		listener.On("OnWin", mock.Anything, manager.ID(), entity.Cross, expectedLine).Return().Once()

		// When: Cross marks five in a row and keeps playing
		var moves []Move
		for x := int64(0); x < 7; x++ {
			move, err := manager.Mark(ctx, entity.Cross, x, 0)
			require.NoError(t, err)
			moves = append(moves, move)
		}

		// Then: the listener was called exactly once
		listener.AssertExpectations(t)
		listener.AssertNumberOfCalls(t, "OnWin", 1)

		// And: each move reports the winner from the fifth mark on
		assert.False(t, moves[3].HasWinner())
		assert.Equal(t, Move{Player: entity.Cross, At: entity.At(4, 0), Moves: 5, Winner: entity.Cross, Line: expectedLine}, moves[4])
		assert.Equal(t, expectedLine, moves[6].Line)

		snapshot := manager.Snapshot()
		assert.Equal(t, entity.Cross, snapshot.Winner)

		width, ok := snapshot.Width()
		require.True(t, ok)
		assert.Equal(t, int64(7), width)
	})

	t.Run("Marks at opposite ends of the plane", func(t *testing.T) {
		// Given: a manager and two marks too far apart to lay out
		manager := NewGameManager(newTestLogger(), nil)

		// When: marking both, then a corner of the plane
		for _, at := range []entity.Coordinate{entity.At(-1<<62, 0), entity.At(1<<62, 0), entity.At(math.MaxInt64, math.MaxInt64)} {
			move, err := manager.Mark(ctx, entity.Cross, at.X, at.Y)
			require.NoError(t, err)
			assert.Equal(t, at, move.At)
		}

		// Then: the snapshot still answers point queries
		snapshot := manager.Snapshot()
		assert.Equal(t, 3, snapshot.Moves)
		assert.Equal(t, entity.Cross, snapshot.At(entity.At(1<<62, 0)))
		assert.True(t, snapshot.Bounds.Contains(entity.At(math.MaxInt64, math.MaxInt64)))

		_, ok := snapshot.Width()
		assert.False(t, ok)
	})

	t.Run("Works without a listener", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), nil)

		for y := int64(0); y < 5; y++ {
			_, err := manager.Mark(ctx, entity.Naught, 0, y)
			require.NoError(t, err)
		}

		assert.Equal(t, entity.Naught, manager.Snapshot().Winner)
	})

	t.Run("Rejects an unknown player", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), nil)

		_, err := manager.Mark(ctx, entity.Nobody, 0, 0)

		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
		assert.Zero(t, manager.Snapshot().Moves)
	})

	t.Run("Rejects a cancelled context", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), nil)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := manager.Mark(cancelled, entity.Cross, 0, 0)

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, manager.Snapshot().Moves)
	})

	t.Run("Serialises concurrent marks", func(t *testing.T) {
		// Given: many goroutines marking disjoint cells
		listener := &mockWinListener{}
		listener.On("OnWin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
		manager := NewGameManager(newTestLogger(), listener)

		const workers, perWorker = 8, 50

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(row int64) {
				defer wg.Done()
				for x := int64(0); x < perWorker; x++ {
					_, _ = manager.Mark(ctx, entity.Cross, x, row*2)
				}
			}(int64(w))
		}
		wg.Wait()

		// Then: every mark landed and the winner was announced once
		snapshot := manager.Snapshot()
		assert.Equal(t, workers*perWorker, snapshot.Moves)
		assert.Equal(t, entity.Cross, snapshot.Winner)
		listener.AssertNumberOfCalls(t, "OnWin", 1)
	})
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Stops at the first win", func(t *testing.T) {
		// Given: the interleaved example game where the first player completes a row
		moves := script.Interleave(
			[]entity.Coordinate{entity.At(0, 0), entity.At(1, 0), entity.At(4, 0), entity.At(3, 0), entity.At(2, 0)},
			[]entity.Coordinate{entity.At(2, 1), entity.At(3, 2), entity.At(6, 5), entity.At(4, 3), entity.At(5, 4)},
		)
		s := &script.Script{First: entity.Naught, Moves: moves}
		manager := NewGameManager(newTestLogger(), nil)

		// When: playing it
		result, err := manager.Play(ctx, s)

		// Then: Naught wins on its fifth move and the last reply is skipped
		require.NoError(t, err)
		assert.Equal(t, 9, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, entity.Naught, result.Snapshot.Winner)
		assert.Equal(t, 5, result.Snapshot.Line.Length)
	})

	t.Run("Preset position then moves", func(t *testing.T) {
		plays, err := script.ParseTemplate("xxxx.\n.....\noooo.")
		require.NoError(t, err)

		s := &script.Script{
			First:  entity.Cross,
			Preset: plays,
			Moves:  []entity.Coordinate{entity.At(4, 0), entity.At(4, 2)},
		}
		manager := NewGameManager(newTestLogger(), nil)

		result, err := manager.Play(ctx, s)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, entity.Cross, result.Snapshot.Winner)
	})

	t.Run("Game already won skips every move", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), nil)
		for x := int64(0); x < 5; x++ {
			_, err := manager.Mark(ctx, entity.Naught, x, 0)
			require.NoError(t, err)
		}

		result, err := manager.Play(ctx, &script.Script{First: entity.Cross, Moves: []entity.Coordinate{entity.At(0, 1), entity.At(1, 1)}})

		require.NoError(t, err)
		assert.Zero(t, result.Applied)
		assert.Equal(t, 2, result.Skipped)

		winner, line, ok := manager.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.Naught, winner)
		assert.Equal(t, 5, line.Length)
	})

	t.Run("Cancelled context aborts the script", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		manager := NewGameManager(newTestLogger(), nil)
		_, err := manager.Play(cancelled, &script.Script{First: entity.Cross, Moves: []entity.Coordinate{entity.At(0, 0)}})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGameManager_LongestLine(t *testing.T) {
	ctx := context.Background()
	manager := NewGameManager(newTestLogger(), nil)

	for x := int64(0); x < 3; x++ {
		_, err := manager.Mark(ctx, entity.Naught, x, x)
		require.NoError(t, err)
	}

	line, ok := manager.LongestLine(1, 1)

	require.True(t, ok)
	assert.Equal(t, rules.MainDiagonal, line.Direction)
	assert.Equal(t, 3, line.Length)
}
