package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/connectfive/internal/area"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/render"
	"github.com/rocketscienceinc/connectfive/internal/usecase"
)

const help = "arrows/hjkl move, enter mark, q quit"

type game interface {
	Mark(ctx context.Context, player entity.Player, x, y int64) (usecase.Move, error)
	Snapshot() area.Snapshot
}

var (
	styleStatus = tcell.StyleDefault.Bold(true)
	styleGrid   = tcell.StyleDefault.Dim(true)
	styleCross  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleNaught = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleWin    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// View draws a game on a terminal and turns key presses into marks.
// The cursor roams the unbounded plane; the screen follows it.
type View struct {
	logger *slog.Logger
	screen tcell.Screen
	game   game

	cursor   entity.Coordinate
	turn     entity.Player
	snapshot area.Snapshot
	message  string
}

// New places the cursor in the middle of whatever has been played so far.
func New(logger *slog.Logger, screen tcell.Screen, game game, first entity.Player) *View {
	snapshot := game.Snapshot()

	return &View{
		logger: logger.With("component", "tui"),
		screen: screen,
		game:   game,

		cursor:   snapshot.Bounds.Center(),
		turn:     first,
		snapshot: snapshot,
	}
}

// Run draws and handles events until the user quits, the screen is finalised or ctx is done.
func (that *View) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := that.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	that.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !that.HandleEvent(ctx, ev) {
				return nil
			}
			that.Draw()
		}
	}
}

// HandleEvent applies one event and reports whether the view should keep running.
func (that *View) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return that.handleKey(ctx, ev)
	case *tcell.EventResize:
		that.screen.Sync()
	}

	return true
}

func (that *View) Cursor() entity.Coordinate {
	return that.cursor
}

// Turn is the side whose mark the next enter places.
func (that *View) Turn() entity.Player {
	return that.turn
}

func (that *View) Message() string {
	return that.message
}

func (that *View) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		that.move(0, -1)
	case tcell.KeyDown:
		that.move(0, 1)
	case tcell.KeyLeft:
		that.move(-1, 0)
	case tcell.KeyRight:
		that.move(1, 0)
	case tcell.KeyEnter:
		that.mark(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			that.move(0, -1)
		case 'j':
			that.move(0, 1)
		case 'h':
			that.move(-1, 0)
		case 'l':
			that.move(1, 0)
		case ' ':
			that.mark(ctx)
		}
	}

	return true
}

func (that *View) move(dx, dy int64) {
	if next, ok := that.cursor.Step(dx, dy); ok {
		that.cursor = next
	}
}

func (that *View) mark(ctx context.Context) {
	if that.snapshot.HasWinner() {
		that.message = "game over"
		return
	}

	move, err := that.game.Mark(ctx, that.turn, that.cursor.X, that.cursor.Y)
	if err != nil {
		that.logger.Error("failed to mark", "error", err)
		that.message = err.Error()
		return
	}

	that.snapshot = that.game.Snapshot()
	that.message = ""

	if !move.HasWinner() {
		that.turn = that.turn.Opponent()
	}
}

// Draw renders the status line and the part of the plane around the cursor.
func (that *View) Draw() {
	that.screen.Clear()

	width, height := that.screen.Size()
	rows := height - 1

	that.drawText(0, 0, that.status(), styleStatus)

	origin, ok := that.cursor.Step(-int64(width/2), -int64(rows/2))
	if !ok {
		origin = that.cursor
	}

	winning := make(map[entity.Coordinate]struct{})
	if that.snapshot.HasWinner() {
		for _, at := range that.snapshot.Line.Cells() {
			winning[at] = struct{}{}
		}
	}

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < width; sx++ {
			at, ok := origin.Step(int64(sx), int64(sy))
			if !ok {
				continue
			}

			char, style := that.cell(at, winning)
			if at == that.cursor {
				style = style.Reverse(true)
			}
			that.screen.SetContent(sx, sy+1, char, nil, style)
		}
	}

	that.screen.Show()
}

func (that *View) cell(at entity.Coordinate, winning map[entity.Coordinate]struct{}) (rune, tcell.Style) {
	occupant := that.snapshot.At(at)

	switch {
	case occupant == entity.Nobody && that.snapshot.Bounds.Contains(at):
		return '·', styleGrid
	case occupant == entity.Nobody:
		return ' ', tcell.StyleDefault
	}

	if _, ok := winning[at]; ok {
		return render.Glyph(occupant), styleWin
	}
	if occupant == entity.Cross {
		return render.Glyph(occupant), styleCross
	}
	return render.Glyph(occupant), styleNaught
}

func (that *View) status() string {
	var text string
	if that.snapshot.HasWinner() {
		text = fmt.Sprintf("%s has won with a line of %d", that.snapshot.Winner, that.snapshot.Line.Length)
	} else {
		text = fmt.Sprintf("%s to move at %s", that.turn, that.cursor)
	}

	if that.message != "" {
		return text + " | " + that.message
	}
	return text + " | " + help
}

func (that *View) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
