package entity

// Piece is a placed stone. It never moves once it is on the board.
type Piece struct {
	Owner Side `json:"owner"`
}

// Cell is a single board point. It holds at most one piece and may carry the cursor.
type Cell struct {
	coord  Coordinate
	piece  *Piece
	cursor bool
}

func newCell(coord Coordinate) *Cell {
	return &Cell{coord: coord}
}

func (that *Cell) Coordinate() Coordinate {
	return that.coord
}

// PlacePiece attaches the piece if the cell is empty and reports whether it did.
func (that *Cell) PlacePiece(piece *Piece) bool {
	if that.HasPiece() {
		return false
	}

	that.piece = piece

	return true
}

// RemovePiece detaches and returns the occupant, nil if the cell is empty.
func (that *Cell) RemovePiece() *Piece {
	piece := that.piece
	that.piece = nil

	return piece
}

func (that *Cell) Piece() *Piece {
	return that.piece
}

func (that *Cell) HasPiece() bool {
	return that.piece != nil
}

// OwnedBy reports whether the cell holds a piece of the given side.
func (that *Cell) OwnedBy(side Side) bool {
	return that.piece != nil && that.piece.Owner == side
}

func (that *Cell) SetCursor() {
	that.cursor = true
}

// ClearCursor removes the cursor marker and reports whether it was there.
func (that *Cell) ClearCursor() bool {
	had := that.cursor
	that.cursor = false

	return had
}

func (that *Cell) HasCursor() bool {
	return that.cursor
}
