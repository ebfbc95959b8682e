package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/helmsman/internal/geom"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

// planetMargin is how far off screen an unmasked planet still counts as
// visible.
const planetMargin = 50

// PlanetBody is the fixed description of a planet.
type PlanetBody struct {
	Name   string
	Radius float64
	Color  color.RGBA
}

// PlanetState is the mutable part of a planet: its world position, the
// screen position derived from it, and the player's selection marks.
type PlanetState struct {
	WorldX, WorldY   float64
	ScreenX, ScreenY float64
	Selected         bool
	Targeted         bool
}

// Sight describes what the player can currently see.
type Sight struct {
	PlayerSector world.Sector
	Mask         *geom.Mask // nil when no viewport is active
	ShowAll      bool
}

// PlanetView is a planet as the renderer draws it.
type PlanetView struct {
	Name     string
	X, Y     float64
	Radius   float64
	Color    color.RGBA
	Selected bool
	Targeted bool
}

// PlanetRegistry owns the planets. Each planet is an entity with a
// PlanetBody and a PlanetState; the registry keeps them in spawn order so
// hit-testing is deterministic.
type PlanetRegistry struct {
	ecs     *ecs.World
	cfg     world.Config
	screenW float64
	screenH float64

	spawner *ecs.Map2[PlanetBody, PlanetState]
	bodies  *ecs.Map[PlanetBody]
	states  *ecs.Map[PlanetState]
	order   []ecs.Entity
}

// NewPlanetRegistry creates an empty registry for a world and screen size.
func NewPlanetRegistry(cfg world.Config, screenW, screenH float64) *PlanetRegistry {
	w := ecs.NewWorld(16)
	return &PlanetRegistry{
		ecs:     w,
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
		spawner: ecs.NewMap2[PlanetBody, PlanetState](w),
		bodies:  ecs.NewMap[PlanetBody](w),
		states:  ecs.NewMap[PlanetState](w),
	}
}

// Add creates a planet at a world position.
func (r *PlanetRegistry) Add(body PlanetBody, worldX, worldY float64) {
	x, y := r.cfg.Wrap(worldX, worldY)
	e := r.spawner.NewEntity(&body, &PlanetState{WorldX: x, WorldY: y})
	r.order = append(r.order, e)
}

// Spawn creates one planet per definition, offset from (startX, startY) by
// a uniform random amount within the definition's spread.
func (r *PlanetRegistry) Spawn(defs []world.PlanetDef, startX, startY float64, rng *rand.Rand) {
	for _, d := range defs {
		ox := (rng.Float64()*2 - 1) * d.Spread[0]
		oy := (rng.Float64()*2 - 1) * d.Spread[1]
		r.Add(PlanetBody{
			Name:   d.Name,
			Radius: d.Radius,
			Color:  color.RGBA{d.Color[0], d.Color[1], d.Color[2], 0xff},
		}, startX+ox, startY+oy)
	}
}

// Len returns the number of planets.
func (r *PlanetRegistry) Len() int { return len(r.order) }

// UpdateScreenPositions projects every planet relative to the player, who
// is always drawn at the screen center.
func (r *PlanetRegistry) UpdateScreenPositions(playerX, playerY float64) {
	cx, cy := r.screenW/2, r.screenH/2
	for _, e := range r.order {
		st := r.states.Get(e)
		st.ScreenX = st.WorldX - playerX + cx
		st.ScreenY = st.WorldY - playerY + cy
	}
}

// ApplyRotation rotates every planet's world position about a world point.
func (r *PlanetRegistry) ApplyRotation(angle float64, about geom.Point) {
	if angle == 0 {
		return
	}
	for _, e := range r.order {
		st := r.states.Get(e)
		p := geom.Rotate(geom.Pt(st.WorldX, st.WorldY), angle, about)
		st.WorldX, st.WorldY = r.cfg.Wrap(p.X, p.Y)
	}
}

func (r *PlanetRegistry) visible(e ecs.Entity, s Sight) bool {
	if s.ShowAll {
		return true
	}
	st := r.states.Get(e)
	if r.cfg.SectorOf(st.WorldX, st.WorldY) != s.PlayerSector {
		return false
	}
	if s.Mask == nil {
		return st.ScreenX >= -planetMargin && st.ScreenX <= r.screenW+planetMargin &&
			st.ScreenY >= -planetMargin && st.ScreenY <= r.screenH+planetMargin
	}
	return s.Mask.IntersectsCircle(geom.Pt(st.ScreenX, st.ScreenY), r.bodies.Get(e).Radius)
}

// Visible returns the planets that can be seen, in spawn order.
func (r *PlanetRegistry) Visible(s Sight) []PlanetView {
	var out []PlanetView
	for _, e := range r.order {
		if r.visible(e, s) {
			out = append(out, r.view(e))
		}
	}
	return out
}

// All returns every planet, in spawn order.
func (r *PlanetRegistry) All() []PlanetView {
	out := make([]PlanetView, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, r.view(e))
	}
	return out
}

func (r *PlanetRegistry) view(e ecs.Entity) PlanetView {
	b, st := r.bodies.Get(e), r.states.Get(e)
	return PlanetView{
		Name:     b.Name,
		X:        st.ScreenX,
		Y:        st.ScreenY,
		Radius:   b.Radius,
		Color:    b.Color,
		Selected: st.Selected,
		Targeted: st.Targeted,
	}
}

// SelectAt selects the first visible planet whose disc contains p. It
// returns the planet's name and false if nothing was hit, in which case the
// current selection is kept.
func (r *PlanetRegistry) SelectAt(p geom.Point, s Sight) (string, bool) {
	for _, e := range r.order {
		if !r.visible(e, s) {
			continue
		}
		st, b := r.states.Get(e), r.bodies.Get(e)
		dx, dy := p.X-st.ScreenX, p.Y-st.ScreenY
		if dx*dx+dy*dy > b.Radius*b.Radius {
			continue
		}
		for _, other := range r.order {
			r.states.Get(other).Selected = false
		}
		st.Selected = true
		return b.Name, true
	}
	return "", false
}

// TargetSelected locks the target onto the selected planet. It returns
// false and changes nothing when no planet is selected.
func (r *PlanetRegistry) TargetSelected() (string, bool) {
	for _, e := range r.order {
		if !r.states.Get(e).Selected {
			continue
		}
		for _, other := range r.order {
			r.states.Get(other).Targeted = false
		}
		r.states.Get(e).Targeted = true
		return r.bodies.Get(e).Name, true
	}
	return "", false
}

// TargetedName returns the name of the targeted planet.
func (r *PlanetRegistry) TargetedName() (string, bool) {
	for _, e := range r.order {
		if r.states.Get(e).Targeted {
			return r.bodies.Get(e).Name, true
		}
	}
	return "", false
}
