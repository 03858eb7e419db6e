package entity

// CellView is what a renderer needs to draw one cell.
type CellView struct {
	Occupied bool `json:"occupied"`
	Owner    Side `json:"owner"`
	Cursor   bool `json:"cursor"`
}

type BoardView struct {
	Side   int          `json:"side"`
	Cells  [][]CellView `json:"cells"`
	Cursor Coordinate   `json:"cursor"`
}

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusAborted Status = "aborted"
)

func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusAborted
}

// Snapshot is the read-only state of a game after an intent was processed.
type Snapshot struct {
	Board  BoardView `json:"board"`
	Active Player    `json:"active"`
	Status Status    `json:"status"`
	Winner *Player   `json:"winner,omitempty"`
	Moves  int       `json:"moves"`
}
