package game

import "fmt"

// Position is a cell on the board, X grows to the east and Y to the south.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Position) Move(d Direction) Position {
	v := d.vector()
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Manhattan returns the grid distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is the Action type of the Pacman game.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists every direction in the order legal actions are generated.
var Directions = []Direction{North, South, East, West, Stop}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Reverse returns the opposite direction, Stop reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

func (d Direction) vector() Position {
	switch d {
	case North:
		return Position{Y: -1}
	case South:
		return Position{Y: 1}
	case East:
		return Position{X: 1}
	case West:
		return Position{X: -1}
	default:
		return Position{}
	}
}

// Walls is the static part of a board, shared by every state of a game.
type Walls struct {
	Width  int
	Height int
	cells  []bool
}

func NewWalls(width, height int) *Walls {
	return &Walls{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

func (w *Walls) Set(p Position) {
	w.cells[p.Y*w.Width+p.X] = true
}

// Has reports whether p is a wall. Cells outside the board count as walls.
func (w *Walls) Has(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= w.Width || p.Y >= w.Height {
		return true
	}
	return w.cells[p.Y*w.Width+p.X]
}
