package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Outcome reports what a processed intent did.
type Outcome struct {
	Intent  Intent
	Applied bool
	Status  entity.Status
}

// GameController runs one game: it owns the board and both players and
// turns intents into board mutations.
type GameController struct {
	board   *entity.Board
	players [2]*entity.Player
	active  int
	winner  *entity.Player
	status  entity.Status
	moves   int
}

// NewGameController creates a game on a board of the requested side with the
// given display names; empty names keep the defaults.
func NewGameController(side int, firstName, secondName string) (*GameController, error) {
	board, err := entity.NewBoard(side)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	players := entity.NewPlayers()
	players[0].SetName(firstName)
	players[1].SetName(secondName)

	return &GameController{
		board:   board,
		players: players,
		status:  entity.StatusOngoing,
	}, nil
}

// ProcessMove applies one intent. After the game has ended it changes
// nothing and returns apperror.ErrGameFinished.
func (that *GameController) ProcessMove(intent Intent) (Outcome, error) {
	if that.status.IsTerminal() {
		return Outcome{Intent: intent, Status: that.status}, apperror.ErrGameFinished
	}

	var applied bool

	switch intent.Kind {
	case KindMoveCursor:
		applied = that.board.MoveCursor(intent.Direction)
	case KindPlace:
		applied = that.placePiece()
	case KindQuit:
		that.status = entity.StatusAborted
		applied = true
	default:
		return Outcome{Intent: intent, Status: that.status}, fmt.Errorf("%w: kind %d", apperror.ErrInvalidIntent, intent.Kind)
	}

	return Outcome{Intent: intent, Applied: applied, Status: that.status}, nil
}

func (that *GameController) placePiece() bool {
	player := that.players[that.active]
	if !that.board.PlaceActivePiece(player) {
		return false
	}

	that.moves++

	if that.board.HasFiveInRow(that.board.Cursor(), player.Side) {
		that.winner = player
		that.status = entity.StatusWon
		return true
	}

	that.switchPlayer()

	return true
}

// switchPlayer hands the turn to the other of the two players.
func (that *GameController) switchPlayer() {
	that.active = 1 - that.active
}

func (that *GameController) Status() entity.Status {
	return that.status
}

func (that *GameController) ActivePlayer() entity.Player {
	return *that.players[that.active]
}

// Winner returns the winner, false when there is none.
func (that *GameController) Winner() (entity.Player, bool) {
	if that.winner == nil {
		return entity.Player{}, false
	}
	return *that.winner, true
}

func (that *GameController) Players() [2]entity.Player {
	return [2]entity.Player{*that.players[0], *that.players[1]}
}

func (that *GameController) Snapshot() entity.Snapshot {
	snapshot := entity.Snapshot{
		Board:  that.board.Snapshot(),
		Active: that.ActivePlayer(),
		Status: that.status,
		Moves:  that.moves,
	}

	if winner, ok := that.Winner(); ok {
		snapshot.Winner = &winner
	}

	return snapshot
}
