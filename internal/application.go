package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/repository"
	"github.com/rocketscienceinc/gomoku/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku/internal/usecase"
	"github.com/rocketscienceinc/gomoku/transport/console"
)

// RunApp - runs one match on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, quitting the match", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var resultRepo repository.ResultRepository
	if conf.Results.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Results.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisStorage.Connection, conf.Results.HistoryLimit)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	keyboard := console.NewKeyboard(ctx, screen)

	first, second, err := playerNames(ctx, keyboard, conf.Players)
	if err != nil {
		log.Info("Name prompt interrupted", "error", err)
		return nil
	}

	controller, err := gomoku.NewGameController(conf.Board.SideLength, first, second)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	manager := usecase.NewMatchManager(logger, controller, keyboard, console.NewRenderer(screen), resultRepo)

	if _, err = manager.Play(ctx); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if err = keyboard.WaitAnyKey(ctx); err != nil {
		log.Info("Exit without key press", "error", err)
	}

	return nil
}

// playerNames asks for names when configured to, using the configured ones as defaults.
func playerNames(ctx context.Context, keyboard *console.Keyboard, conf config.Players) (string, string, error) {
	if !conf.PromptNames {
		return conf.First, conf.Second, nil
	}

	defaults := entity.NewPlayers()
	defaults[0].SetName(conf.First)
	defaults[1].SetName(conf.Second)

	first, err := keyboard.Prompt(ctx, fmt.Sprintf("First player (%s): ", defaults[0].Name), defaults[0].Name)
	if err != nil {
		return "", "", fmt.Errorf("failed to read first name: %w", err)
	}

	second, err := keyboard.Prompt(ctx, fmt.Sprintf("Second player (%s): ", defaults[1].Name), defaults[1].Name)
	if err != nil {
		return "", "", fmt.Errorf("failed to read second name: %w", err)
	}

	return first, second, nil
}
