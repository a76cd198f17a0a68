package game

import (
	"fmt"
	"sync"

	"battleship/meta"
	"battleship/utils"
)

// CellState is what a renderer shows for a cell.
type CellState int

const (
	Empty CellState = iota
	ShipIntact
	ShipHit
	Miss
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case ShipIntact:
		return "ship"
	case ShipHit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// ShotResult is the outcome of a shot.
type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotHitAndSunk
)

// IsHit is true for both hits and sinking hits.
func (r ShotResult) IsHit() bool {
	return r == ShotHit || r == ShotHitAndSunk
}

func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotHitAndSunk:
		return "sunk"
	default:
		return fmt.Sprintf("ShotResult(%d)", int(r))
	}
}

// Field is one side of the game: its ships, the cells already fired upon and
// the projected grid. A hidden field never shows intact ship cells.
type Field struct {
	mu       sync.Mutex
	grid     [meta.BoardSize][meta.BoardSize]CellState
	ships    []*Ship
	shotAt   CellSet
	occupied CellSet
	hidden   bool
}

func NewField(hidden bool) *Field {
	return &Field{
		shotAt:   NewCellSet(),
		occupied: NewCellSet(),
		hidden:   hidden,
	}
}

// Reset drops every ship and shot, keeping the hidden flag.
func (f *Field) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.grid = [meta.BoardSize][meta.BoardSize]CellState{}
	f.ships = nil
	f.shotAt = NewCellSet()
	f.occupied = NewCellSet()
}

// AddShip registers a ship without any collision check; placement is
// responsible for valid input.
func (f *Field) AddShip(ship *Ship) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ships = append(f.ships, ship)
	for _, c := range ship.Cells() {
		f.occupied.Add(c)
		if !f.hidden {
			f.grid[c.X][c.Y] = ShipIntact
		}
	}
}

// Shot fires at c. Sinking a ship marks its border as missed and unshootable.
func (f *Field) Shot(c Coordinate) (ShotResult, error) {
	if !c.Valid() {
		return ShotMiss, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.shotAt.Contains(c) {
		return ShotMiss, fmt.Errorf("%w: %v", ErrDuplicateShot, c)
	}
	f.shotAt.Add(c)

	if !f.occupied.Contains(c) {
		f.grid[c.X][c.Y] = Miss
		return ShotMiss, nil
	}

	f.grid[c.X][c.Y] = ShipHit
	for _, ship := range f.ships {
		if !ship.Contains(c) {
			continue
		}
		ship.ApplyHit()
		if !ship.IsSunk() {
			return ShotHit, nil
		}
		f.sink(ship)
		return ShotHitAndSunk, nil
	}
	// occupied and ships disagree, which AddShip never allows
	return ShotHit, nil
}

func (f *Field) sink(ship *Ship) {
	for _, c := range ship.Border() {
		f.grid[c.X][c.Y] = Miss
		f.shotAt.Add(c)
	}
	for _, c := range ship.Cells() {
		f.occupied.Remove(c)
	}
	i := utils.FindIndex(f.ships, ship)
	f.ships = append(f.ships[:i], f.ships[i+1:]...)
}

// IsShot reports whether c can no longer be fired upon.
func (f *Field) IsShot(c Coordinate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shotAt.Contains(c)
}

// ShotCount includes cells quarantined around sunk ships.
func (f *Field) ShotCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shotAt.Len()
}

// Cell returns the projected state of c, Empty for cells off the board.
func (f *Field) Cell(c Coordinate) CellState {
	if !c.Valid() {
		return Empty
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grid[c.X][c.Y]
}

// Grid returns a copy of the projected board indexed [x][y].
func (f *Field) Grid() [meta.BoardSize][meta.BoardSize]CellState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grid
}

// Ships returns the ships still afloat in insertion order.
func (f *Field) Ships() []*Ship {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Ship, len(f.ships))
	copy(out, f.ships)
	return out
}

func (f *Field) ShipsRemaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ships)
}

// Occupies reports whether a ship still afloat covers c.
func (f *Field) Occupies(c Coordinate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.occupied.Contains(c)
}

// Defeated is true once every ship has been sunk.
func (f *Field) Defeated() bool {
	return f.ShipsRemaining() == 0
}

func (f *Field) Hidden() bool {
	return f.hidden
}
