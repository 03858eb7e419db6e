package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchResult is the recorded outcome of a finished match.
type MatchResult struct {
	ID         string    `json:"id"`
	Status     Status    `json:"status"`
	Winner     string    `json:"winner,omitempty"`
	Loser      string    `json:"loser,omitempty"`
	BoardSide  int       `json:"board_side"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewMatchResult builds the result of a game from its final snapshot.
func NewMatchResult(snapshot Snapshot, players [2]Player, finishedAt time.Time) *MatchResult {
	result := &MatchResult{
		ID:         uuid.NewString(),
		Status:     snapshot.Status,
		BoardSide:  snapshot.Board.Side,
		Moves:      snapshot.Moves,
		FinishedAt: finishedAt.UTC(),
	}

	if snapshot.Winner != nil {
		result.Winner = snapshot.Winner.Name
		for _, player := range players {
			if player.ID != snapshot.Winner.ID {
				result.Loser = player.Name
			}
		}
	}

	return result
}

func (that *MatchResult) HasWinner() bool {
	return that.Winner != ""
}

// MatchSummary is what the player sees after a match.
type MatchSummary struct {
	Result       *MatchResult
	Wins         int64
	WinsRecorded bool
	// Recent lists the latest recorded matches, newest first; it includes Result once saved.
	Recent []*MatchResult
}
