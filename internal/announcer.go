package application

import (
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/rules"
)

// announcer prints the end of a game.
type announcer struct {
	out io.Writer
}

func newAnnouncer(out io.Writer) *announcer {
	return &announcer{out: out}
}

func (that *announcer) OnWin(_ context.Context, _ string, winner entity.Player, line rules.Line) {
	_, _ = fmt.Fprintf(that.out, "%s has won!\nLongest line: %s\n", winner, line)
}
