package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

const (
	recordTimeout = 5 * time.Second
	recentShown   = 5
)

type inputSource interface {
	NextIntent(ctx context.Context) (gomoku.Intent, error)
}

type renderer interface {
	Render(snapshot entity.Snapshot) error
	RenderSummary(snapshot entity.Snapshot, summary entity.MatchSummary) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
	CountWins(ctx context.Context, name string) (int64, error)
}

type game interface {
	ProcessMove(intent gomoku.Intent) (gomoku.Outcome, error)
	Snapshot() entity.Snapshot
	Players() [2]entity.Player
}

// MatchManager drives one match: it feeds intents from the input source to the
// game, redraws after each of them and records the outcome.
type MatchManager struct {
	logger *slog.Logger

	game       game
	input      inputSource
	renderer   renderer
	resultRepo resultRepo

	now func() time.Time
}

// NewMatchManager wires a match. resultRepo may be nil, then results are not recorded.
func NewMatchManager(logger *slog.Logger, game game, input inputSource, renderer renderer, resultRepo resultRepo) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),

		game:       game,
		input:      input,
		renderer:   renderer,
		resultRepo: resultRepo,

		now: time.Now,
	}
}

// Play runs the match until it is won or aborted and returns its summary.
func (that *MatchManager) Play(ctx context.Context) (*entity.MatchSummary, error) {
	log := that.logger.With("method", "Play")

	snapshot := that.game.Snapshot()
	if err := that.renderer.Render(snapshot); err != nil {
		return nil, fmt.Errorf("failed to render board: %w", err)
	}

	log.Info("match started", "side", snapshot.Board.Side, "first", snapshot.Active.Name)

	for !snapshot.Status.IsTerminal() {
		intent, err := that.input.NextIntent(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read intent: %w", err)
		}

		outcome, err := that.game.ProcessMove(intent)
		if err != nil {
			return nil, fmt.Errorf("failed to process intent %s: %w", intent, err)
		}

		log.Debug("intent processed",
			"intent", intent.String(),
			"applied", outcome.Applied,
			"status", outcome.Status,
		)

		snapshot = that.game.Snapshot()
		if err = that.renderer.Render(snapshot); err != nil {
			return nil, fmt.Errorf("failed to render board: %w", err)
		}
	}

	summary := &entity.MatchSummary{
		Result: entity.NewMatchResult(snapshot, that.game.Players(), that.now()),
	}

	log.Info("match finished",
		"id", summary.Result.ID,
		"status", summary.Result.Status,
		"winner", summary.Result.Winner,
		"moves", summary.Result.Moves,
	)

	that.recordResult(ctx, summary)

	if err := that.renderer.RenderSummary(snapshot, *summary); err != nil {
		return nil, fmt.Errorf("failed to render summary: %w", err)
	}

	return summary, nil
}

// recordResult stores the result and fills in the recent history and the winner's tally. Storage
// failures are logged and the match still ends normally.
func (that *MatchManager) recordResult(ctx context.Context, summary *entity.MatchSummary) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "id", summary.Result.ID)

	// a quit by signal cancels ctx, the result is still saved
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := that.resultRepo.Save(ctx, summary.Result); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	recent, err := that.resultRepo.Recent(ctx, recentShown)
	if err != nil {
		log.Error("failed to get recent results", "error", err)
	} else {
		summary.Recent = recent
	}

	if !summary.Result.HasWinner() {
		return
	}

	wins, err := that.resultRepo.CountWins(ctx, summary.Result.Winner)
	if err != nil {
		log.Error("failed to count wins", "error", err)
		return
	}

	summary.Wins = wins
	summary.WinsRecorded = true
}
