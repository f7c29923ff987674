package grid

import "strings"

// Direction is a 4-bit adjacency mask, one bit per cardinal edge of a cell.
type Direction uint8

const (
	None  Direction = 0
	West  Direction = 1 << 0
	South Direction = 1 << 1
	East  Direction = 1 << 2
	North Direction = 1 << 3
	All   Direction = North | East | South | West
)

var directionNames = map[Direction]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Cardinals is the order in which neighbours are enumerated.
var Cardinals = [4]Direction{North, East, South, West}

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != None && d&other == other
}

// Delta returns the unit offset of a single direction.
// North points towards smaller y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the mask with every direction reversed.
func (d Direction) Opposite() Direction {
	var out Direction
	if d&North != 0 {
		out |= South
	}
	if d&East != 0 {
		out |= West
	}
	if d&South != 0 {
		out |= North
	}
	if d&West != 0 {
		out |= East
	}
	return out
}

func (d Direction) String() string {
	switch d & All {
	case None:
		return "NONE"
	case All:
		return "ALL"
	}
	names := make([]string, 0, 4)
	for _, c := range Cardinals {
		if d&c != 0 {
			names = append(names, directionNames[c])
		}
	}
	return strings.Join(names, "|")
}
