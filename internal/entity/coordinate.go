package entity

import "math"

// Coordinate is a grid position; both axes are always non-negative.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate stores the absolute value of each axis.
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: abs(row), Col: abs(col)}
}

func (that Coordinate) shift(dRow, dCol int) (int, int) {
	return that.Row + dRow, that.Col + dCol
}

// abs saturates at math.MaxInt, -math.MinInt does not fit in an int.
func abs(v int) int {
	if v == math.MinInt {
		return math.MaxInt
	}
	if v < 0 {
		return -v
	}
	return v
}
