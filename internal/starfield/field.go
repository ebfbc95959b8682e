package starfield

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/spacehole-rogue/helmsman/internal/geom"
)

// Config holds the starfield tuning.
type Config struct {
	// StarCount is the pool size N kept after every update.
	StarCount int

	// ScreenWidth and ScreenHeight bound free-roam stars.
	ScreenWidth  float64
	ScreenHeight float64

	// EdgeMargin is how far past the screen edge a star may drift before
	// it is culled. Free-mode respawns appear exactly on the margin.
	EdgeMargin float64

	// RotationSpeed is the spin rate in degrees per second at full input.
	RotationSpeed float64

	// SpawnAttempts bounds the growth-spawn search; the first
	// UniformAttempts sample the mask's bounding box uniformly, the rest
	// are Gaussian around its center.
	SpawnAttempts   int
	UniformAttempts int

	// ExitOffset is how far outside the mask's bounding box a star that
	// left the viewport is replaced.
	ExitOffset float64
}

// DefaultConfig returns the bridge starfield tuning.
func DefaultConfig() Config {
	return Config{
		StarCount:       300,
		ScreenWidth:     1300,
		ScreenHeight:    700,
		EdgeMargin:      10,
		RotationSpeed:   90,
		SpawnAttempts:   30,
		UniformAttempts: 20,
		ExitOffset:      5,
	}
}

// View is the per-update viewport context. A nil Mask selects free mode.
type View struct {
	Mask        *geom.Mask
	Flow        Flow
	FlightSpeed int // 0-100
}

// Stats counts what happened during one update.
type Stats struct {
	Grown        int // stars that latched to size 2
	GrowthSpawns int // stars added because another one grew
	Exited       int // stars replaced after leaving the mask
	Culled       int // stars replaced after leaving the screen
	Trimmed      int // surplus stars removed to keep the pool at N
	ToppedUp     int // stars added to refill the pool to N
}

// edge names a side of a rectangle.
type edge uint8

const (
	edgeLeft edge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// Simulator owns the star pool.
type Simulator struct {
	cfg    Config
	rng    *rand.Rand
	stars  []Star
	nextID uint64

	vx, vy float64 // px/s
	spin   float64 // deg/s, positive is clockwise on screen
}

// New creates a simulator with StarCount stars scattered over the screen.
func New(cfg Config, rng *rand.Rand) *Simulator {
	s := &Simulator{
		cfg:   cfg,
		rng:   rng,
		stars: make([]Star, 0, max(cfg.StarCount, 0)+1),
	}
	for i := 0; i < cfg.StarCount; i++ {
		s.stars = append(s.stars, s.newStar(geom.Pt(
			rng.Float64()*cfg.ScreenWidth,
			rng.Float64()*cfg.ScreenHeight,
		)))
	}
	return s
}

func (s *Simulator) newStar(p geom.Point) Star {
	s.nextID++
	return Star{ID: s.nextID, X: p.X, Y: p.Y, Size: 1}
}

// Config returns the simulator tuning.
func (s *Simulator) Config() Config { return s.cfg }

// Stars returns the pool. Callers must not modify it.
func (s *Simulator) Stars() []Star { return s.stars }

// Len returns the pool size.
func (s *Simulator) Len() int { return len(s.stars) }

// SetVelocity sets the free-mode drift in px/s.
func (s *Simulator) SetVelocity(vx, vy float64) {
	s.vx, s.vy = vx, vy
}

// Velocity returns the free-mode drift in px/s.
func (s *Simulator) Velocity() (float64, float64) { return s.vx, s.vy }

// SetRotation sets the spin direction: 1 clockwise, -1 counterclockwise,
// 0 none. Fractional values scale the rate.
func (s *Simulator) SetRotation(dir float64) {
	s.spin = dir * s.cfg.RotationSpeed
}

// RotationAngle returns the spin in radians accumulated over dt.
func (s *Simulator) RotationAngle(dt float64) float64 {
	return s.spin * dt * math.Pi / 180
}

// ScreenCenter returns the pivot free-mode stars rotate about.
func (s *Simulator) ScreenCenter() geom.Point {
	return geom.Pt(s.cfg.ScreenWidth/2, s.cfg.ScreenHeight/2)
}

type exitEvent struct {
	slot       int
	dirX, dirY float64
}

// Update advances every star by dt seconds.
//
// Stars inside view.Mask follow the flow field while the flight speed is
// above idle; every other star drifts with the free-mode velocity and
// rotates about the screen center. The pool holds exactly StarCount
// stars when Update returns.
func (s *Simulator) Update(dt float64, view View) Stats {
	var st Stats

	dx, dy := s.vx*dt, s.vy*dt
	angle := s.RotationAngle(dt)
	center := s.ScreenCenter()

	speed := 0.0
	if view.Mask != nil {
		speed = FlowSpeed(view.FlightSpeed)
	}

	var exits []exitEvent
	var grownAt []geom.Point

	for i := range s.stars {
		star := &s.stars[i]

		if speed > 0 && view.Mask.Contains(star.Pos()) {
			star.Mode = ModeViewport
			dirX, dirY := view.Flow.Direction(star.Pos())
			oldY := star.Y
			star.X += dirX * speed * dt
			star.Y += dirY * speed * dt

			if view.Flow.crossedGrowthLine(oldY, star.Y, dirY) && star.grow() {
				st.Grown++
				grownAt = append(grownAt, star.Pos())
			}
			if !view.Mask.Contains(star.Pos()) {
				exits = append(exits, exitEvent{slot: i, dirX: dirX, dirY: dirY})
			}
			continue
		}

		star.Mode = ModeFree
		star.X += dx
		star.Y += dy
		if angle != 0 {
			p := geom.Rotate(star.Pos(), angle, center)
			star.X, star.Y = p.X, p.Y
		}
	}

	for _, e := range exits {
		s.stars[e.slot] = s.newStar(s.exitSpawnPoint(view.Mask.Bounds(), e.dirX, e.dirY))
		st.Exited++
	}

	firstSpawn := len(s.stars)
	for _, p := range grownAt {
		s.stars = append(s.stars, s.newStar(s.growthSpawnPoint(view.Mask, p)))
		st.GrowthSpawns++
	}

	st.Culled = s.cull()
	st.Trimmed = s.trim(view.Mask, firstSpawn)
	st.ToppedUp = s.topUp()
	return st
}

// offScreen reports whether p is past the screen edge plus margin.
func (s *Simulator) offScreen(p geom.Point) bool {
	m := s.cfg.EdgeMargin
	return p.X < -m || p.X > s.cfg.ScreenWidth+m ||
		p.Y < -m || p.Y > s.cfg.ScreenHeight+m
}

// cull replaces every off-screen star with a fresh one on a spawn edge.
func (s *Simulator) cull() int {
	n := 0
	for i := range s.stars {
		if s.offScreen(s.stars[i].Pos()) {
			s.stars[i] = s.newStar(s.edgePoint(s.pickSpawnEdge()))
			n++
		}
	}
	return n
}

// trim removes surplus stars beyond StarCount. Stars outside the mask go
// first, then the oldest. Stars at or after protectFrom were spawned this
// update and are removed only if nothing else is left.
func (s *Simulator) trim(mask *geom.Mask, protectFrom int) int {
	surplus := len(s.stars) - max(s.cfg.StarCount, 0)
	if surplus <= 0 {
		return 0
	}

	order := make([]int, len(s.stars))
	for i := range order {
		order[i] = i
	}
	rank := func(i int) int {
		r := 0
		if i >= protectFrom {
			r += 2
		}
		if mask != nil && mask.Contains(s.stars[i].Pos()) {
			r++
		}
		return r
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		if s.stars[a].ID < s.stars[b].ID {
			return -1
		}
		if s.stars[a].ID > s.stars[b].ID {
			return 1
		}
		return 0
	})

	drop := make([]bool, len(s.stars))
	for _, i := range order[:surplus] {
		drop[i] = true
	}
	kept := s.stars[:0]
	for i, star := range s.stars {
		if !drop[i] {
			kept = append(kept, star)
		}
	}
	s.stars = kept
	return surplus
}

// topUp refills the pool to StarCount from the spawn edges.
func (s *Simulator) topUp() int {
	n := 0
	for len(s.stars) < s.cfg.StarCount {
		s.stars = append(s.stars, s.newStar(s.edgePoint(s.pickSpawnEdge())))
		n++
	}
	return n
}

// pickSpawnEdge picks the screen edge new free-mode stars enter from: the
// side opposite the drift, one of the two at random when drifting
// diagonally, any side when stationary.
func (s *Simulator) pickSpawnEdge() edge {
	var edges [2]edge
	n := 0
	switch {
	case s.vx > 0:
		edges[n] = edgeLeft
		n++
	case s.vx < 0:
		edges[n] = edgeRight
		n++
	}
	switch {
	case s.vy > 0:
		edges[n] = edgeTop
		n++
	case s.vy < 0:
		edges[n] = edgeBottom
		n++
	}
	if n == 0 {
		return edge(s.rng.IntN(4))
	}
	return edges[s.rng.IntN(n)]
}

// edgePoint returns a random point on the culling margin along e.
func (s *Simulator) edgePoint(e edge) geom.Point {
	w, h, m := s.cfg.ScreenWidth, s.cfg.ScreenHeight, s.cfg.EdgeMargin
	switch e {
	case edgeLeft:
		return geom.Pt(-m, s.rng.Float64()*h)
	case edgeRight:
		return geom.Pt(w+m, s.rng.Float64()*h)
	case edgeTop:
		return geom.Pt(s.rng.Float64()*w, -m)
	default:
		return geom.Pt(s.rng.Float64()*w, h+m)
	}
}

// exitSpawnPoint places the replacement for a star that left the mask just
// outside the bounding-box edge opposite its exit direction. Diagonal or
// undirected exits pick a random edge.
func (s *Simulator) exitSpawnPoint(b geom.Rect, dirX, dirY float64) geom.Point {
	var e edge
	switch {
	case dirX == 0 && dirY < 0:
		e = edgeBottom
	case dirX == 0 && dirY > 0:
		e = edgeTop
	case dirY == 0 && dirX > 0:
		e = edgeLeft
	case dirY == 0 && dirX < 0:
		e = edgeRight
	default:
		e = edge(s.rng.IntN(4))
	}

	off := s.cfg.ExitOffset
	switch e {
	case edgeLeft:
		return geom.Pt(b.MinX-off, b.MinY+s.rng.Float64()*b.Height())
	case edgeRight:
		return geom.Pt(b.MaxX+off, b.MinY+s.rng.Float64()*b.Height())
	case edgeTop:
		return geom.Pt(b.MinX+s.rng.Float64()*b.Width(), b.MinY-off)
	default:
		return geom.Pt(b.MinX+s.rng.Float64()*b.Width(), b.MaxY+off)
	}
}

// growthSpawnPoint finds a point inside mask for the star spawned when
// another one grows. The search is bounded; when every sample misses it
// falls back to the box center, then the grown star's position, then a
// vertex inside the polygon, then the first vertex. The last fallback is
// not guaranteed to be interior.
func (s *Simulator) growthSpawnPoint(mask *geom.Mask, grown geom.Point) geom.Point {
	b := mask.Bounds()
	c := b.Center()

	for attempt := 0; attempt < s.cfg.SpawnAttempts; attempt++ {
		var p geom.Point
		if attempt < s.cfg.UniformAttempts {
			p = geom.Pt(b.MinX+s.rng.Float64()*b.Width(), b.MinY+s.rng.Float64()*b.Height())
		} else {
			p = b.Clamp(geom.Pt(
				c.X+s.rng.NormFloat64()*b.Width()/4,
				c.Y+s.rng.NormFloat64()*b.Height()/4,
			))
		}
		if mask.Contains(p) {
			return p
		}
	}

	if mask.Contains(c) {
		return c
	}
	if mask.Contains(grown) {
		return grown
	}
	verts := mask.Vertices()
	for _, v := range verts {
		if mask.Contains(v) {
			return v
		}
	}
	if len(verts) > 0 {
		return verts[0]
	}
	return c
}

// Visible returns the stars a renderer should draw: those inside the mask
// when one is given, otherwise all of them.
func (s *Simulator) Visible(mask *geom.Mask) []Star {
	if mask == nil {
		return s.stars
	}
	out := make([]Star, 0, len(s.stars)/4)
	for i := range s.stars {
		if mask.Contains(s.stars[i].Pos()) {
			out = append(out, s.stars[i])
		}
	}
	return out
}
