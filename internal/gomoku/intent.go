package gomoku

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type IntentKind int

const (
	KindMoveCursor IntentKind = iota + 1
	KindPlace
	KindQuit
)

// Intent is one request from the input source. The zero value is invalid;
// build intents with MoveCursor, Place, Quit or ParseIntent.
type Intent struct {
	Kind      IntentKind
	Direction entity.Direction
}

func MoveCursor(direction entity.Direction) (Intent, error) {
	if !direction.IsValid() {
		return Intent{}, fmt.Errorf("%w: direction %d", apperror.ErrInvalidIntent, direction)
	}

	return Intent{Kind: KindMoveCursor, Direction: direction}, nil
}

func Place() Intent {
	return Intent{Kind: KindPlace}
}

func Quit() Intent {
	return Intent{Kind: KindQuit}
}

// ParseIntent reads one of up, down, left, right, place or quit.
func ParseIntent(raw string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return MoveCursor(entity.DirectionUp)
	case "down":
		return MoveCursor(entity.DirectionDown)
	case "left":
		return MoveCursor(entity.DirectionLeft)
	case "right":
		return MoveCursor(entity.DirectionRight)
	case "place":
		return Place(), nil
	case "quit":
		return Quit(), nil
	default:
		return Intent{}, fmt.Errorf("%w: %q", apperror.ErrInvalidIntent, raw)
	}
}

func (that Intent) String() string {
	switch that.Kind {
	case KindMoveCursor:
		return that.Direction.String()
	case KindPlace:
		return "place"
	case KindQuit:
		return "quit"
	default:
		return "invalid"
	}
}
