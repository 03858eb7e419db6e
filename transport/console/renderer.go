package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const (
	emptyGlyph  = '┼'
	pieceGlyph  = '●'
	cursorGlyph = '★'

	// cellWidth is the glyph plus the two spaces after it; every board row is followed by a blank line.
	cellWidth  = 3
	cellHeight = 2

	nameWidth = 15

	helpText = "Arrows move; Q/E quit; Enter/Space place; current player: "
)

var (
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)

	sideStyles = map[entity.Side]tcell.Style{
		entity.SideDark:  tcell.StyleDefault.Foreground(tcell.ColorRed),
		entity.SideLight: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// Renderer draws game snapshots on a terminal screen.
type Renderer struct {
	screen tcell.Screen
	moves  int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render redraws the board and the status line. It beeps when a piece was placed since the last frame.
func (that *Renderer) Render(snapshot entity.Snapshot) error {
	that.screen.Clear()

	for row, cells := range snapshot.Board.Cells {
		for col, cell := range cells {
			glyph, style := cellGlyph(cell)
			that.screen.SetContent(col*cellWidth, row*cellHeight, glyph, nil, style)
		}
	}

	name := runewidth.FillRight(runewidth.Truncate(snapshot.Active.Name, nameWidth, ""), nameWidth)
	drawText(that.screen, 0, that.statusLine(snapshot), statusStyle, helpText+name)

	that.screen.Show()

	placed := snapshot.Moves > that.moves
	that.moves = snapshot.Moves

	if placed {
		if err := that.screen.Beep(); err != nil {
			return fmt.Errorf("failed to beep: %w", err)
		}
	}

	return nil
}

// RenderSummary prints the end of game message under the last frame.
func (that *Renderer) RenderSummary(snapshot entity.Snapshot, summary entity.MatchSummary) error {
	y := that.statusLine(snapshot) + 2

	switch {
	case summary.Result.HasWinner() && snapshot.Winner != nil:
		drawText(that.screen, 0, y, sideStyles[snapshot.Winner.Side], "Winner: "+summary.Result.Winner)
	case summary.Result.HasWinner():
		drawText(that.screen, 0, y, statusStyle, "Winner: "+summary.Result.Winner)
	default:
		drawText(that.screen, 0, y, statusStyle, "Game aborted, no winner.")
	}

	if summary.WinsRecorded {
		y++
		drawText(that.screen, 0, y, statusStyle, fmt.Sprintf("%s has won %d game(s) so far.", summary.Result.Winner, summary.Wins))
	}

	if len(summary.Recent) > 0 {
		y += 2
		drawText(that.screen, 0, y, statusStyle, "Recent matches:")
		for _, result := range summary.Recent {
			y++
			drawText(that.screen, 0, y, statusStyle, "  "+describeResult(result))
		}
	}

	drawText(that.screen, 0, y+1, statusStyle, "Press any key to exit.")
	that.screen.Show()

	if err := that.screen.Beep(); err != nil {
		return fmt.Errorf("failed to beep: %w", err)
	}

	return nil
}

func describeResult(result *entity.MatchResult) string {
	finished := result.FinishedAt.Format("2006-01-02 15:04")
	if result.HasWinner() {
		return fmt.Sprintf("%s %s beat %s in %d moves", finished, result.Winner, result.Loser, result.Moves)
	}

	return fmt.Sprintf("%s aborted after %d moves", finished, result.Moves)
}

func (that *Renderer) statusLine(snapshot entity.Snapshot) int {
	return snapshot.Board.Side * cellHeight
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// cellGlyph picks what a cell shows: the cursor wins over a piece, a piece over the empty point.
func cellGlyph(cell entity.CellView) (rune, tcell.Style) {
	switch {
	case cell.Cursor:
		return cursorGlyph, cursorStyle
	case cell.Occupied:
		return pieceGlyph, sideStyles[cell.Owner]
	default:
		return emptyGlyph, emptyStyle
	}
}
