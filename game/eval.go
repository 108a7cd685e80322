package game

import (
	"errors"
	"fmt"
)

var ErrUnknownEvaluation = errors.New("unknown evaluation function")

// EvaluateScore returns the game's own score, the default evaluation at every cutoff.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// Weights scale the terms of the composite evaluation. All weights must be
// non-negative for the evaluation to stay monotonic in food distance, scared
// time and score.
type Weights struct {
	Food       float64 // Scale of the inverse distance to the nearest food
	Danger     float64 // Penalty scale for closeness to a brave ghost
	Hunt       float64 // Reward scale for closeness to a scared ghost
	ScaredTime float64 // Reward per remaining scared ghost move
	Capsule    float64 // Bonus scale for fewer capsules while ghosts are scared
}

var DefaultWeights = Weights{
	Food:       1.0,
	Danger:     2.0,
	Hunt:       2.0,
	ScaredTime: 0.1,
	Capsule:    1.0,
}

// EvaluateComposite is the composite heuristic with DefaultWeights.
var EvaluateComposite = NewCompositeEvaluation(DefaultWeights)

// NewCompositeEvaluation combines the score with the distance to the nearest
// food, the distance to each ghost (penalised while brave, rewarded while
// scared), the remaining scared time and the number of capsules left while
// ghosts are scared. States that are not a Board evaluate to their score.
func NewCompositeEvaluation(w Weights) Evaluate {
	return func(s State) float64 {
		b, ok := s.(Board)
		if !ok {
			return s.Score()
		}

		pacman := b.PacmanPosition()
		value := b.Score() + w.Food*inverseNearest(pacman, b.Food())

		scared := false
		for _, g := range b.Ghosts() {
			distance := float64(Manhattan(pacman, g.Position))
			if g.Scared() {
				scared = true
				value += w.Hunt/(1+distance) + w.ScaredTime*float64(g.ScaredTimer)
			} else {
				value -= w.Danger / (1 + distance)
			}
		}

		if scared {
			value += w.Capsule / float64(1+len(b.Capsules()))
		}
		return value
	}
}

// inverseNearest returns 1/d for the nearest target at distance d, or 0 without targets.
func inverseNearest(from Position, targets []Position) float64 {
	if len(targets) == 0 {
		return 0
	}
	nearest := Manhattan(from, targets[0])
	for _, t := range targets[1:] {
		if d := Manhattan(from, t); d < nearest {
			nearest = d
		}
	}
	if nearest < 1 {
		nearest = 1
	}
	return 1.0 / float64(nearest)
}

// Evaluation looks up an evaluation function by name.
func Evaluation(name string) (Evaluate, error) {
	switch name {
	case "score", "scoreEvaluationFunction":
		return EvaluateScore, nil
	case "better", "betterEvaluationFunction", "composite":
		return EvaluateComposite, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvaluation, name)
	}
}
