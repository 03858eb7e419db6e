package entity

type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (that Direction) String() string {
	if name, ok := directionNames[that]; ok {
		return name
	}
	return "unknown"
}

func (that Direction) IsValid() bool {
	_, ok := directionNames[that]
	return ok
}

// delta returns the row and column step of the direction.
func (that Direction) delta() (int, int) {
	switch that {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
