package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

// WinLength is the number of same-side pieces in a line that wins the game.
const WinLength = 5

// axes lists one step of each line through a point: horizontal, vertical,
// diagonal and anti-diagonal. Each axis is scanned forward and backward.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board is the square grid of cells with the cursor on it.
type Board struct {
	side   int
	cells  [][]*Cell
	cursor Coordinate
}

// EffectiveSide returns the side length a board gets for the requested one.
// Odd input is kept, even input becomes the next odd number.
func EffectiveSide(requested int) int {
	return (requested/2)*2 + 1
}

func NewBoard(requested int) (*Board, error) {
	if requested < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, requested)
	}

	side := EffectiveSide(requested)

	cells := make([][]*Cell, side)
	for row := range cells {
		cells[row] = make([]*Cell, side)
		for col := range cells[row] {
			cells[row][col] = newCell(NewCoordinate(row, col))
		}
	}

	board := &Board{
		side:   side,
		cells:  cells,
		cursor: NewCoordinate(side/2, side/2),
	}
	board.cellAt(board.cursor).SetCursor()

	return board, nil
}

func (that *Board) Side() int {
	return that.side
}

func (that *Board) Cursor() Coordinate {
	return that.cursor
}

// Cell returns the cell at coord, or false when coord is off the board.
func (that *Board) Cell(coord Coordinate) (*Cell, bool) {
	if !that.contains(coord.Row, coord.Col) {
		return nil, false
	}
	return that.cellAt(coord), true
}

// MoveCursor shifts the cursor one step. A step off the board is ignored and reported as false.
func (that *Board) MoveCursor(direction Direction) bool {
	if !direction.IsValid() {
		return false
	}

	row, col := that.cursor.shift(direction.delta())
	if !that.contains(row, col) {
		return false
	}

	next := NewCoordinate(row, col)
	that.cellAt(that.cursor).ClearCursor()
	that.cellAt(next).SetCursor()
	that.cursor = next

	return true
}

// PlaceActivePiece puts a piece of the player under the cursor.
// It returns false without changing anything if the cell is occupied.
func (that *Board) PlaceActivePiece(player *Player) bool {
	return that.cellAt(that.cursor).PlacePiece(&Piece{Owner: player.Side})
}

// HasFiveInRow reports whether the piece at coord belongs to an unbroken line
// of at least WinLength pieces of side. Runs stop at the edge, at an empty
// cell and at an opposing piece.
func (that *Board) HasFiveInRow(coord Coordinate, side Side) bool {
	if !that.contains(coord.Row, coord.Col) {
		return false
	}

	for _, axis := range axes {
		count := 1 + that.run(coord, axis[0], axis[1], side) + that.run(coord, -axis[0], -axis[1], side)
		if count >= WinLength {
			return true
		}
	}

	return false
}

// run counts consecutive pieces of side starting next to coord in one direction.
func (that *Board) run(coord Coordinate, dRow, dCol int, side Side) int {
	steps := 0

	row, col := coord.Row+dRow, coord.Col+dCol
	for that.contains(row, col) && that.cells[row][col].OwnedBy(side) {
		steps++
		row += dRow
		col += dCol
	}

	return steps
}

// Snapshot copies the board into a read-only view.
func (that *Board) Snapshot() BoardView {
	cells := make([][]CellView, that.side)
	for row := range that.cells {
		cells[row] = make([]CellView, that.side)
		for col, cell := range that.cells[row] {
			view := CellView{Cursor: cell.HasCursor()}
			if piece := cell.Piece(); piece != nil {
				view.Occupied = true
				view.Owner = piece.Owner
			}
			cells[row][col] = view
		}
	}

	return BoardView{
		Side:   that.side,
		Cells:  cells,
		Cursor: that.cursor,
	}
}

func (that *Board) contains(row, col int) bool {
	return row >= 0 && row < that.side && col >= 0 && col < that.side
}

func (that *Board) cellAt(coord Coordinate) *Cell {
	return that.cells[coord.Row][coord.Col]
}
