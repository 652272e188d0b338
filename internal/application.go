package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/connectfive/internal/config"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/rocketscienceinc/connectfive/internal/render"
	"github.com/rocketscienceinc/connectfive/internal/script"
	"github.com/rocketscienceinc/connectfive/internal/tui"
	"github.com/rocketscienceinc/connectfive/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	manager := usecase.NewGameManager(logger, newAnnouncer(os.Stdout))

	next, err := playScript(ctx, logger, conf, manager, os.Stdout)
	if err != nil {
		return err
	}

	if !conf.Interactive {
		return nil
	}

	if err = runInteractive(ctx, logger, manager, next); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	if err = render.Write(os.Stdout, manager.Snapshot()); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout)

	return nil
}

// playScript plays the configured script, or the built-in example, prints the result
// and returns the side to move next.
func playScript(ctx context.Context, logger *slog.Logger, conf *config.Config, manager *usecase.GameManager, out io.Writer) (entity.Player, error) {
	log := logger.With("component", "app")

	s, err := loadScript(conf)
	if err != nil {
		return entity.Nobody, err
	}

	log.Info("Playing script", "session", manager.ID(), "first", s.First.String(), "moves", len(s.Moves))

	result, err := manager.Play(ctx, s)
	if err != nil {
		return entity.Nobody, fmt.Errorf("failed to play script: %w", err)
	}

	if err = render.Write(out, result.Snapshot); err != nil {
		return entity.Nobody, fmt.Errorf("failed to print board: %w", err)
	}
	_, _ = fmt.Fprintln(out)

	return s.PlayerFor(result.Applied), nil
}

func loadScript(conf *config.Config) (*script.Script, error) {
	if conf.ScriptPath != "" {
		s, err := script.Load(conf.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("could not load script: %w", err)
		}
		return s, nil
	}

	first, err := script.ParseFirst(conf.FirstPlayer)
	if err != nil {
		return nil, fmt.Errorf("invalid first player in config: %w", err)
	}

	return exampleScript(first), nil
}

// exampleScript is a short game the first player wins by filling the middle of a row.
func exampleScript(first entity.Player) *script.Script {
	firstMoves := []entity.Coordinate{entity.At(0, 0), entity.At(1, 0), entity.At(4, 0), entity.At(3, 0), entity.At(2, 0)}
	secondMoves := []entity.Coordinate{entity.At(2, 1), entity.At(3, 2), entity.At(6, 5), entity.At(4, 3), entity.At(5, 4)}

	return &script.Script{
		First: first,
		Moves: script.Interleave(firstMoves, secondMoves),
	}
}

func runInteractive(ctx context.Context, logger *slog.Logger, manager *usecase.GameManager, first entity.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not initialise screen: %w", err)
	}
	defer screen.Fini()

	return tui.New(logger, screen, manager, first).Run(ctx)
}
