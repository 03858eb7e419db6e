package console

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	return screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()

	cells, width, _ := screen.GetContents()

	return cells[y*width+x]
}

func lineAt(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()

	var line strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			line.WriteRune(' ')
			continue
		}
		line.WriteString(string(runes))
	}

	return strings.TrimRight(line.String(), " ")
}
