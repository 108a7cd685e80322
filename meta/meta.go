// meta/meta.go
package meta

// DEPTH defines the default search depth in full rounds.
const DEPTH = 2

// GAMES defines the number of games per agent config in experiments.
const GAMES = 10

// MAX_MOVES defines the number of agent moves after which a game is stopped.
const MAX_MOVES = 1000
