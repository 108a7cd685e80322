package game

import (
	"errors"
	"fmt"
	"slices"
)

const (
	ScaredTime  = 40  // Ghost moves a capsule keeps ghosts scared for
	TimePenalty = 1   // Points lost per Pacman move
	FoodReward  = 10  // Points per food eaten
	WinReward   = 500 // Points for eating the last food
	LosePenalty = 500 // Points lost when caught by a brave ghost
	GhostReward = 200 // Points for eating a scared ghost
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrIllegalAction = errors.New("illegal action")
)

// Ghost is the dynamic state of one adversary.
type Ghost struct {
	Start       Position
	Position    Position
	Direction   Direction // Last move, Stop before the first one
	ScaredTimer int
}

// Scared reports whether the ghost is currently harmless to Pacman.
func (g Ghost) Scared() bool {
	return g.ScaredTimer > 0
}

// GameState is a Pacman position. Agent 0 is Pacman, agent i > 0 is ghost i-1.
type GameState struct {
	walls     *Walls // Static, shared between successors
	pacman    Position
	food      []bool // Indexed by Y*Width+X
	foodCount int
	capsules  []Position
	ghosts    []Ghost
	score     float64
	win       bool
	lose      bool
}

// NewGameState creates the initial state of a game.
func NewGameState(walls *Walls, pacman Position, food, capsules, ghosts []Position) *GameState {
	gs := &GameState{
		walls:    walls,
		pacman:   pacman,
		food:     make([]bool, walls.Width*walls.Height),
		capsules: slices.Clone(capsules),
		ghosts:   make([]Ghost, len(ghosts)),
	}
	for _, p := range food {
		if !gs.food[gs.index(p)] {
			gs.food[gs.index(p)] = true
			gs.foodCount++
		}
	}
	for i, p := range ghosts {
		gs.ghosts[i] = Ghost{Start: p, Position: p, Direction: Stop}
	}
	gs.win = gs.foodCount == 0
	return gs
}

func (gs *GameState) index(p Position) int {
	return p.Y*gs.walls.Width + p.X
}

func (gs *GameState) copy() *GameState {
	c := *gs
	c.capsules = slices.Clone(gs.capsules)
	c.ghosts = slices.Clone(gs.ghosts)
	// food is copied on write, see eat
	return &c
}

func (gs *GameState) NumAgents() int {
	return 1 + len(gs.ghosts)
}

func (gs *GameState) IsWin() bool {
	return gs.win
}

func (gs *GameState) IsLose() bool {
	return gs.lose
}

func (gs *GameState) Score() float64 {
	return gs.score
}

func (gs *GameState) Walls() *Walls {
	return gs.walls
}

func (gs *GameState) PacmanPosition() Position {
	return gs.pacman
}

// Food lists the remaining food in row-major order.
func (gs *GameState) Food() []Position {
	food := make([]Position, 0, gs.foodCount)
	for y := 0; y < gs.walls.Height; y++ {
		for x := 0; x < gs.walls.Width; x++ {
			if gs.food[y*gs.walls.Width+x] {
				food = append(food, Position{X: x, Y: y})
			}
		}
	}
	return food
}

func (gs *GameState) FoodCount() int {
	return gs.foodCount
}

func (gs *GameState) HasFood(p Position) bool {
	if gs.walls.Has(p) {
		return false
	}
	return gs.food[gs.index(p)]
}

func (gs *GameState) Capsules() []Position {
	return slices.Clone(gs.capsules)
}

func (gs *GameState) Ghosts() []Ghost {
	return slices.Clone(gs.ghosts)
}

// LegalActions returns the moves of an agent in the order North, South, East,
// West, Stop. Terminal states have no legal actions.
func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose || agent < 0 || agent >= gs.NumAgents() {
		return nil
	}
	if agent == 0 {
		return gs.pacmanActions()
	}
	return gs.ghostActions(agent - 1)
}

func (gs *GameState) pacmanActions() []Action {
	actions := make([]Action, 0, len(Directions))
	for _, d := range Directions {
		if d == Stop || !gs.walls.Has(gs.pacman.Move(d)) {
			actions = append(actions, d)
		}
	}
	return actions
}

// Ghosts cannot stop, and only turn back in a dead end.
func (gs *GameState) ghostActions(ghost int) []Action {
	g := gs.ghosts[ghost]
	possible := make([]Direction, 0, 4)
	for _, d := range Directions {
		if d != Stop && !gs.walls.Has(g.Position.Move(d)) {
			possible = append(possible, d)
		}
	}
	if len(possible) == 0 {
		return []Action{Stop}
	}

	reverse := g.Direction.Reverse()
	actions := make([]Action, 0, len(possible))
	for _, d := range possible {
		if d == reverse && reverse != Stop && len(possible) > 1 {
			continue
		}
		actions = append(actions, d)
	}
	return actions
}

// Successor applies an agent's action to a copy of the state.
func (gs *GameState) Successor(agent int, action Action) (State, error) {
	if gs.win || gs.lose {
		return nil, fmt.Errorf("agent %d cannot play %v: %w", agent, action, ErrGameOver)
	}
	d, ok := action.(Direction)
	if !ok || !slices.Contains(gs.LegalActions(agent), Action(d)) {
		return nil, fmt.Errorf("agent %d cannot play %v: %w", agent, action, ErrIllegalAction)
	}

	next := gs.copy()
	if agent == 0 {
		next.movePacman(d)
		if !next.win {
			for i := range next.ghosts {
				next.collide(i)
			}
		}
	} else {
		next.moveGhost(agent-1, d)
		next.collide(agent - 1)
	}
	return next, nil
}

func (gs *GameState) movePacman(d Direction) {
	gs.pacman = gs.pacman.Move(d)
	gs.score -= TimePenalty

	if gs.food[gs.index(gs.pacman)] {
		gs.eat(gs.pacman)
	}
	if i := slices.Index(gs.capsules, gs.pacman); i >= 0 {
		gs.capsules = slices.Delete(gs.capsules, i, i+1)
		for g := range gs.ghosts {
			gs.ghosts[g].ScaredTimer = ScaredTime
		}
	}
}

func (gs *GameState) eat(p Position) {
	gs.food = slices.Clone(gs.food)
	gs.food[gs.index(p)] = false
	gs.foodCount--
	gs.score += FoodReward
	if gs.foodCount == 0 {
		gs.score += WinReward
		gs.win = true
	}
}

func (gs *GameState) moveGhost(ghost int, d Direction) {
	g := &gs.ghosts[ghost]
	g.Position = g.Position.Move(d)
	g.Direction = d
	if g.ScaredTimer > 0 {
		g.ScaredTimer--
	}
}

func (gs *GameState) collide(ghost int) {
	g := &gs.ghosts[ghost]
	if g.Position != gs.pacman {
		return
	}
	if g.Scared() {
		gs.score += GhostReward
		*g = Ghost{Start: g.Start, Position: g.Start, Direction: Stop}
		return
	}
	if !gs.lose {
		gs.score -= LosePenalty
		gs.lose = true
	}
}
