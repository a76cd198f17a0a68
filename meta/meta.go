// meta/meta.go
package meta

// BoardSize is the number of rows and columns of every field.
const BoardSize = 6

// MaxPlacementAttempts bounds the random tries for a single ship before the
// whole field is regenerated.
const MaxPlacementAttempts = 2000

// MaxTurns caps a self-play match. A 6x6 board needs at most 72 turns.
const MaxTurns = 200

// DefaultMatches is the number of self-play matches per experiment.
const DefaultMatches = 100

// DefaultFleet lists the ship lengths placed on each field.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}
