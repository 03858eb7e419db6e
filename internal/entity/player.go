package entity

import "fmt"

type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

// Side is the colour a player places. There are exactly two.
type Side int

const (
	SideDark Side = iota
	SideLight
)

func (that Side) String() string {
	if that == SideDark {
		return "Dark"
	}
	return "Light"
}

// Opponent returns the other side.
func (that Side) Opponent() Side {
	if that == SideDark {
		return SideLight
	}
	return SideDark
}

type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
	Side Side     `json:"side"`
}

// NewPlayers returns the two players of a game. Player one plays Dark and moves first.
func NewPlayers() [2]*Player {
	return [2]*Player{
		newPlayer(PlayerOne, SideDark),
		newPlayer(PlayerTwo, SideLight),
	}
}

func newPlayer(id PlayerID, side Side) *Player {
	return &Player{
		ID:   id,
		Name: fmt.Sprintf("Player_%s", side),
		Side: side,
	}
}

// SetName binds a display name; an empty name keeps the current one.
func (that *Player) SetName(name string) {
	if name == "" {
		return
	}
	that.Name = name
}
