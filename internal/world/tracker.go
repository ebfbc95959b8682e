package world

import (
	"fmt"
	"math"
)

// Sector is one cell of the grid tiling world space.
type Sector struct {
	X, Y int
}

func (s Sector) String() string { return fmt.Sprintf("(%d, %d)", s.X, s.Y) }

// SectorOf returns the sector containing world point (x, y).
// Points outside world space are folded back onto the grid.
func (c Config) SectorOf(x, y float64) Sector {
	return Sector{
		X: floorMod(int(math.Floor(x/c.SectorWidth())), c.SectorsX),
		Y: floorMod(int(math.Floor(y/c.SectorHeight())), c.SectorsY),
	}
}

// Wrap folds (x, y) into [0, WorldWidth) x [0, WorldHeight).
func (c Config) Wrap(x, y float64) (float64, float64) {
	return wrap(x, c.WorldWidth), wrap(y, c.WorldHeight)
}

func wrap(v, size float64) float64 {
	return math.Mod(math.Mod(v, size)+size, size)
}

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}

// Tracker owns the player's world position. The stored position is always
// inside world space; the sector is derived from it on demand.
type Tracker struct {
	cfg  Config
	x, y float64
}

// NewTracker creates a tracker with the player at the world center.
func NewTracker(cfg Config) *Tracker {
	t := &Tracker{cfg: cfg}
	t.SetPosition(cfg.Center())
	return t
}

// Config returns the world grid the tracker wraps on.
func (t *Tracker) Config() Config { return t.cfg }

// Position returns the player's world coordinates.
func (t *Tracker) Position() (float64, float64) { return t.x, t.y }

// SetPosition places the player, wrapping into world space.
func (t *Tracker) SetPosition(x, y float64) {
	t.x, t.y = t.cfg.Wrap(x, y)
}

// ApplyMovement moves the player by an already scaled delta and wraps
// toroidally, so negative deltas re-enter from the far edge.
func (t *Tracker) ApplyMovement(dx, dy float64) {
	t.SetPosition(t.x+dx, t.y+dy)
}

// Sector returns the sector the player currently occupies.
func (t *Tracker) Sector() Sector {
	return t.cfg.SectorOf(t.x, t.y)
}
