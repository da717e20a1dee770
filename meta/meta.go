// meta/meta.go
package meta

import "time"

// GAMES_PER_MATCH is the game budget of a single matchup. Must be odd.
const GAMES_PER_MATCH = 101

// MOVE_TIMEOUT is the time an agent gets to choose a column.
const MOVE_TIMEOUT = time.Second

// STEP_DELAY pauses after every move so games can be watched. Zero disables
// rendering.
const STEP_DELAY = 0 * time.Second

const ROWS = 6
const COLUMNS = 7
const CONNECT = 4

// TOURNAMENT_AGENTS lists the entrants by registry id. Repeats are allowed.
var TOURNAMENT_AGENTS = []string{
	"RandomAgent",
	"StayLowAgent",
	"CenterAgent",
	"RandomAgent",
	"StayLowAgent",
	"CenterAgent",
}
