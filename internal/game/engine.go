// Package game composes the world tracker, the starfield and the planets
// into the navigation engine the game loop drives once per frame.
package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spacehole-rogue/helmsman/internal/geom"
	"github.com/spacehole-rogue/helmsman/internal/starfield"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

// Config holds the engine tuning.
type Config struct {
	World world.Config
	Stars starfield.Config

	// SpeedScale converts flight speed to free-mode px/s and world
	// units per second.
	SpeedScale float64

	// LogSize is the number of comms lines kept.
	LogSize int
}

// DefaultConfig returns the tuning of the bridge.
func DefaultConfig() Config {
	return Config{
		World:      world.DefaultConfig(),
		Stars:      starfield.DefaultConfig(),
		SpeedScale: 10,
		LogSize:    50,
	}
}

// StarView is a star as the renderer draws it.
type StarView struct {
	X, Y float64
	Size int
}

// Engine is the navigation simulation. It owns the player position, the
// star pool and the planets, and is driven by one Update call per frame.
type Engine struct {
	cfg     Config
	tracker *world.Tracker
	stars   *starfield.Simulator
	planets *PlanetRegistry
	log     *MessageLog
	logger  *slog.Logger

	flightSpeed int
	viewport    *Viewport
	showAll     bool
	sector      world.Sector
	stats       starfield.Stats
}

// NewEngine creates an engine with the player at the world center and the
// given planets scattered around it.
func NewEngine(cfg Config, planets []world.PlanetDef, rng *rand.Rand) *Engine {
	e := &Engine{
		cfg:     cfg,
		tracker: world.NewTracker(cfg.World),
		stars:   starfield.New(cfg.Stars, rng),
		planets: NewPlanetRegistry(cfg.World, cfg.Stars.ScreenWidth, cfg.Stars.ScreenHeight),
		log:     NewMessageLog(cfg.LogSize),
		logger:  slog.With("component", "engine"),
	}
	x, y := e.tracker.Position()
	e.planets.Spawn(planets, x, y, rng)
	e.planets.UpdateScreenPositions(x, y)
	e.sector = e.tracker.Sector()

	e.log.Add("Navigation online.", MsgInfo)
	e.log.Add(fmt.Sprintf("Holding in sector %v.", e.sector), MsgNav)
	return e
}

// Update advances the simulation by dt seconds. The order is fixed: input,
// world position, starfield, planets. dt is applied as given.
func (e *Engine) Update(dt float64, in Inputs) {
	e.flightSpeed = min(max(in.FlightSpeed, 0), MaxFlightSpeed)
	e.viewport = in.Viewport
	e.showAll = in.ShowAll

	speed := float64(e.flightSpeed) * e.cfg.SpeedScale
	e.stars.SetVelocity(-in.MoveX*speed, -in.MoveY*speed)
	e.stars.SetRotation(in.Rotate)

	if in.MoveX != 0 || in.MoveY != 0 {
		e.tracker.ApplyMovement(in.MoveX*speed*dt, in.MoveY*speed*dt)
	}
	if s := e.tracker.Sector(); s != e.sector {
		e.logger.Info("sector changed", "from", e.sector.String(), "to", s.String())
		e.log.Add(fmt.Sprintf("Entering sector %v.", s), MsgNav)
		e.sector = s
	}

	view := starfield.View{FlightSpeed: e.flightSpeed}
	if e.viewport != nil {
		view.Mask = e.viewport.Mask
		view.Flow = e.viewport.Flow
	}
	e.stats = e.stars.Update(dt, view)
	if e.stats != (starfield.Stats{}) {
		e.logger.Debug("starfield update",
			"grown", e.stats.Grown,
			"growth_spawns", e.stats.GrowthSpawns,
			"exited", e.stats.Exited,
			"culled", e.stats.Culled,
			"trimmed", e.stats.Trimmed,
			"topped_up", e.stats.ToppedUp)
	}

	x, y := e.tracker.Position()
	e.planets.ApplyRotation(e.stars.RotationAngle(dt), geom.Pt(x, y))
	e.planets.UpdateScreenPositions(x, y)
}

func (e *Engine) sight() Sight {
	return Sight{
		PlayerSector: e.sector,
		Mask:         e.viewport.mask(),
		ShowAll:      e.showAll,
	}
}

// SelectAt selects the visible planet under screen point (x, y). It
// reports whether a planet was hit.
func (e *Engine) SelectAt(x, y float64) bool {
	name, ok := e.planets.SelectAt(geom.Pt(x, y), e.sight())
	if ok {
		e.log.Add(fmt.Sprintf("Selected %s.", name), MsgTarget)
	}
	return ok
}

// Target locks onto the selected planet. It reports false when nothing
// is selected.
func (e *Engine) Target() bool {
	name, ok := e.planets.TargetSelected()
	if ok {
		e.logger.Info("target locked", "planet", name)
		e.log.Add(fmt.Sprintf("Target locked: %s.", name), MsgTarget)
	}
	return ok
}

// VisibleStars returns the stars to draw: those inside the viewport mask,
// or all of them without a mask or in show-all mode.
func (e *Engine) VisibleStars() []StarView {
	var mask *geom.Mask
	if !e.showAll {
		mask = e.viewport.mask()
	}
	stars := e.stars.Visible(mask)
	out := make([]StarView, len(stars))
	for i, s := range stars {
		out[i] = StarView{X: s.X, Y: s.Y, Size: s.Size}
	}
	return out
}

// VisiblePlanets returns the planets to draw.
func (e *Engine) VisiblePlanets() []PlanetView {
	return e.planets.Visible(e.sight())
}

// TargetedName returns the name of the targeted planet.
func (e *Engine) TargetedName() (string, bool) { return e.planets.TargetedName() }

// Sector returns the player's current sector.
func (e *Engine) Sector() world.Sector { return e.sector }

// Position returns the player's world coordinates.
func (e *Engine) Position() (float64, float64) { return e.tracker.Position() }

// FlightSpeed returns the flight speed used by the last update.
func (e *Engine) FlightSpeed() int { return e.flightSpeed }

// Viewport returns the viewport of the last update, nil if unmasked.
func (e *Engine) Viewport() *Viewport { return e.viewport }

// Stats returns what the starfield did during the last update.
func (e *Engine) Stats() starfield.Stats { return e.stats }

// StarCount returns the star pool size.
func (e *Engine) StarCount() int { return e.stars.Len() }

// Log returns the comms log.
func (e *Engine) Log() *MessageLog { return e.log }

// Planets returns the planet registry.
func (e *Engine) Planets() *PlanetRegistry { return e.planets }
