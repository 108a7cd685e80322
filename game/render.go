package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board, coloured according to profile. termenv.Ascii gives
// plain text.
func Render(gs *GameState, profile termenv.Profile) string {
	var (
		wall   = profile.String("%").Foreground(profile.Color("#2121DE"))
		pacman = profile.String("P").Foreground(profile.Color("#FFFF00")).Bold()
		brave  = profile.String("G").Foreground(profile.Color("#FF0000")).Bold()
		scared = profile.String("G").Foreground(profile.Color("#FFFFFF"))
		food   = profile.String(".").Foreground(profile.Color("#FFB8AE"))
		pellet = profile.String("o").Foreground(profile.Color("#FFB8AE")).Bold()
	)

	var b strings.Builder
	for y := 0; y < gs.walls.Height; y++ {
		for x := 0; x < gs.walls.Width; x++ {
			p := Position{X: x, Y: y}
			ghost := slices.IndexFunc(gs.ghosts, func(g Ghost) bool { return g.Position == p })
			switch {
			case gs.pacman == p:
				b.WriteString(pacman.String())
			case ghost >= 0 && gs.ghosts[ghost].Scared():
				b.WriteString(scared.String())
			case ghost >= 0:
				b.WriteString(brave.String())
			case gs.walls.Has(p):
				b.WriteString(wall.String())
			case gs.food[gs.index(p)]:
				b.WriteString(food.String())
			case slices.Contains(gs.capsules, p):
				b.WriteString(pellet.String())
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %.0f", gs.score)
	return b.String()
}

func (gs *GameState) String() string {
	return Render(gs, termenv.Ascii)
}
