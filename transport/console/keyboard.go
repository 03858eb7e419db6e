package console

import (
	"context"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

const maxNameLength = 32

var arrowDirections = map[tcell.Key]entity.Direction{
	tcell.KeyUp:    entity.DirectionUp,
	tcell.KeyDown:  entity.DirectionDown,
	tcell.KeyLeft:  entity.DirectionLeft,
	tcell.KeyRight: entity.DirectionRight,
}

// Keyboard turns terminal key presses into game intents.
type Keyboard struct {
	screen tcell.Screen
}

// NewKeyboard wakes up a blocked read when ctx is canceled so it can report Quit.
func NewKeyboard(ctx context.Context, screen tcell.Screen) *Keyboard {
	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	return &Keyboard{screen: screen}
}

// NextIntent blocks until a key maps to an intent. Unknown keys are skipped;
// a canceled context or a closed screen yields Quit.
func (that *Keyboard) NextIntent(ctx context.Context) (gomoku.Intent, error) {
	for {
		if ctx.Err() != nil {
			return gomoku.Quit(), nil
		}

		switch event := that.screen.PollEvent().(type) {
		case nil:
			return gomoku.Quit(), nil
		case *tcell.EventKey:
			if intent, ok := intentForKey(event); ok {
				return intent, nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
		}
	}
}

// WaitAnyKey blocks until any key is pressed.
func (that *Keyboard) WaitAnyKey(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch that.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		}
	}
}

// Prompt reads a line of text on the top row. Escape or an empty line returns fallback.
func (that *Keyboard) Prompt(ctx context.Context, label, fallback string) (string, error) {
	var input []rune

	for {
		that.drawPrompt(label, input)

		if err := ctx.Err(); err != nil {
			return fallback, err
		}

		polled := that.screen.PollEvent()
		if polled == nil {
			return fallback, nil
		}

		event, ok := polled.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch event.Key() {
		case tcell.KeyEnter:
			if name := strings.TrimSpace(string(input)); name != "" {
				return name, nil
			}
			return fallback, nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return fallback, nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case tcell.KeyRune:
			if len(input) < maxNameLength && unicode.IsPrint(event.Rune()) {
				input = append(input, event.Rune())
			}
		}
	}
}

func (that *Keyboard) drawPrompt(label string, input []rune) {
	that.screen.Clear()
	drawText(that.screen, 0, 0, statusStyle, label+string(input))
	that.screen.Show()
}

func intentForKey(event *tcell.EventKey) (gomoku.Intent, bool) {
	if direction, ok := arrowDirections[event.Key()]; ok {
		intent, err := gomoku.MoveCursor(direction)
		return intent, err == nil
	}

	switch event.Key() {
	case tcell.KeyEnter:
		return gomoku.Place(), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return gomoku.Quit(), true
	case tcell.KeyRune:
		switch unicode.ToLower(event.Rune()) {
		case ' ':
			return gomoku.Place(), true
		case 'q', 'e':
			return gomoku.Quit(), true
		}
	}

	return gomoku.Intent{}, false
}
