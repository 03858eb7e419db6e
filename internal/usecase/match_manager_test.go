package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	errKeyboardGone = errors.New("keyboard gone")
	errRedisDown    = errors.New("redis down")
	errScreenGone   = errors.New("screen gone")
)

// fiveOnRowTwo makes Alice fill row 2 of a 5x5 board while Bob plays on rows 0 and 4.
const fiveOnRowTwo = `
left left place
up up place
down down right place
up up right place
down down place
down down left left place
up up right right right place
down down left place
up up right right place`

type scriptedInput struct {
	intents []gomoku.Intent
	err     error
}

func newScriptedInput(t *testing.T, script string) *scriptedInput {
	t.Helper()

	input := &scriptedInput{}
	for _, word := range strings.Fields(script) {
		intent, err := gomoku.ParseIntent(word)
		require.NoError(t, err)
		input.intents = append(input.intents, intent)
	}

	return input
}

func (that *scriptedInput) NextIntent(_ context.Context) (gomoku.Intent, error) {
	if len(that.intents) == 0 {
		if that.err != nil {
			return gomoku.Intent{}, that.err
		}
		return gomoku.Quit(), nil
	}

	next := that.intents[0]
	that.intents = that.intents[1:]

	return next, nil
}

type mockRenderer struct {
	mock.Mock
}

func (that *mockRenderer) Render(snapshot entity.Snapshot) error {
	args := that.Called(snapshot)
	return args.Error(0)
}

func (that *mockRenderer) RenderSummary(snapshot entity.Snapshot, summary entity.MatchSummary) error {
	args := that.Called(snapshot, summary)
	return args.Error(0)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.MatchResult) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockResultRepo) Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error) {
	args := that.Called(ctx, limit)
	return args.Get(0).([]*entity.MatchResult), args.Error(1)
}

func (that *mockResultRepo) CountWins(ctx context.Context, name string) (int64, error) {
	args := that.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func newManager(t *testing.T, input inputSource, render renderer, repo resultRepo) *MatchManager {
	t.Helper()

	controller, err := gomoku.NewGameController(5, "Alice", "Bob")
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := NewMatchManager(logger, controller, input, render, repo)
	manager.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return manager
}

func TestMatchManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Records a won match and reports the tally", func(t *testing.T) {
		// Given: Alice completes five in a row and already has three recorded wins
		input := newScriptedInput(t, fiveOnRowTwo)
		intentCount := len(input.intents)

		render := &mockRenderer{}
		render.On("Render", mock.AnythingOfType("entity.Snapshot")).Return(nil)
		render.On("RenderSummary",
			mock.MatchedBy(func(s entity.Snapshot) bool { return s.Status == entity.StatusWon }),
			mock.MatchedBy(func(s entity.MatchSummary) bool { return s.WinsRecorded && s.Wins == 4 && len(s.Recent) == 2 }),
		).Return(nil).Once()

		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.MatchedBy(func(r *entity.MatchResult) bool {
			return r.Winner == "Alice" && r.Loser == "Bob" && r.Moves == 9 && r.Status == entity.StatusWon
		})).Return(nil).Once()
		earlier := &entity.MatchResult{ID: "earlier", Status: entity.StatusAborted}
		repo.On("Recent", mock.Anything, int64(recentShown)).
			Return([]*entity.MatchResult{{ID: "latest", Status: entity.StatusWon}, earlier}, nil).Once()
		repo.On("CountWins", mock.Anything, "Alice").Return(int64(4), nil).Once()

		manager := newManager(t, input, render, repo)

		// When: the match is played
		summary, err := manager.Play(ctx)

		// Then: Alice won on the ninth placement and the result was stored
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, summary.Result.Status)
		assert.Equal(t, "Alice", summary.Result.Winner)
		assert.Equal(t, 9, summary.Result.Moves)
		assert.Equal(t, 5, summary.Result.BoardSide)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), summary.Result.FinishedAt)
		assert.Equal(t, int64(4), summary.Wins)
		assert.True(t, summary.WinsRecorded)
		require.Len(t, summary.Recent, 2)
		assert.Same(t, earlier, summary.Recent[1])
		assert.Empty(t, input.intents)

		// Then: every processed intent was followed by a redraw
		render.AssertNumberOfCalls(t, "Render", intentCount+1)
		render.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Quit aborts the match without a tally", func(t *testing.T) {
		// Given: a player moves once and quits
		input := newScriptedInput(t, "up quit")

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)
		render.On("RenderSummary", mock.Anything, mock.Anything).Return(nil).Once()

		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.MatchedBy(func(r *entity.MatchResult) bool {
			return r.Status == entity.StatusAborted && r.Winner == ""
		})).Return(nil).Once()
		repo.On("Recent", mock.Anything, int64(recentShown)).Return([]*entity.MatchResult{}, nil).Once()

		manager := newManager(t, input, render, repo)

		// When: the match is played
		summary, err := manager.Play(ctx)

		// Then: it is aborted and no wins were counted
		require.NoError(t, err)
		assert.Equal(t, entity.StatusAborted, summary.Result.Status)
		assert.False(t, summary.WinsRecorded)
		render.AssertNumberOfCalls(t, "Render", 3)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "CountWins", mock.Anything, mock.Anything)
	})

	t.Run("Plays without a result repository", func(t *testing.T) {
		input := newScriptedInput(t, "quit")

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)
		render.On("RenderSummary", mock.Anything, mock.Anything).Return(nil).Once()

		manager := newManager(t, input, render, nil)

		summary, err := manager.Play(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusAborted, summary.Result.Status)
	})

	t.Run("Storage failure does not fail the match", func(t *testing.T) {
		// Given: a repository that cannot save
		input := newScriptedInput(t, fiveOnRowTwo)

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)
		render.On("RenderSummary", mock.Anything, mock.Anything).Return(nil).Once()

		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		manager := newManager(t, input, render, repo)

		// When: the match is played
		summary, err := manager.Play(ctx)

		// Then: the match still ends with a winner but no tally
		require.NoError(t, err)
		assert.Equal(t, "Alice", summary.Result.Winner)
		assert.False(t, summary.WinsRecorded)
		assert.Empty(t, summary.Recent)
		repo.AssertNotCalled(t, "Recent", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "CountWins", mock.Anything, mock.Anything)
	})

	t.Run("History failure still reports the tally", func(t *testing.T) {
		// Given: the result is saved but the history cannot be read
		input := newScriptedInput(t, fiveOnRowTwo)

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)
		render.On("RenderSummary", mock.Anything, mock.Anything).Return(nil).Once()

		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("Recent", mock.Anything, int64(recentShown)).Return([]*entity.MatchResult(nil), errRedisDown).Once()
		repo.On("CountWins", mock.Anything, "Alice").Return(int64(1), nil).Once()

		manager := newManager(t, input, render, repo)

		// When: the match is played
		summary, err := manager.Play(ctx)

		// Then: there is no history but the tally is shown
		require.NoError(t, err)
		assert.Empty(t, summary.Recent)
		assert.True(t, summary.WinsRecorded)
		assert.Equal(t, int64(1), summary.Wins)
		repo.AssertExpectations(t)
	})

	t.Run("Canceled context still records the result", func(t *testing.T) {
		// Given: the context is canceled, which the keyboard reports as Quit
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		input := newScriptedInput(t, "quit")

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)
		render.On("RenderSummary", mock.Anything, mock.Anything).Return(nil).Once()

		repo := &mockResultRepo{}
		repo.On("Save", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
			Return(nil).Once()
		repo.On("Recent", mock.Anything, mock.Anything).Return([]*entity.MatchResult{}, nil).Once()

		manager := newManager(t, input, render, repo)

		// When: the match is played
		_, err := manager.Play(canceled)

		// Then: the result was saved with a live context
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Input failure is returned", func(t *testing.T) {
		input := &scriptedInput{err: errKeyboardGone}

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(nil)

		manager := newManager(t, input, render, nil)

		summary, err := manager.Play(ctx)

		require.ErrorIs(t, err, errKeyboardGone)
		assert.Nil(t, summary)
	})

	t.Run("Render failure is returned", func(t *testing.T) {
		input := newScriptedInput(t, "quit")

		render := &mockRenderer{}
		render.On("Render", mock.Anything).Return(errScreenGone)

		manager := newManager(t, input, render, nil)

		summary, err := manager.Play(ctx)

		require.ErrorIs(t, err, errScreenGone)
		assert.Nil(t, summary)
	})
}
