package game

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/spacehole-rogue/helmsman/assets"
	"github.com/spacehole-rogue/helmsman/internal/geom"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

func newTestEngine(t *testing.T, planets ...world.PlanetDef) *Engine {
	t.Helper()
	return NewEngine(DefaultConfig(), planets, rand.New(rand.NewPCG(11, 12)))
}

func controlRoom(t *testing.T) *Viewport {
	t.Helper()
	cat, err := world.LoadCatalog(assets.Scenes)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	scene, ok := cat.Scene("Control Room")
	if !ok {
		t.Fatal("Control Room scene missing")
	}
	vp := NewViewport(scene)
	if vp == nil {
		t.Fatal("Control Room has no viewport")
	}
	return vp
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t)
	if x, y := e.Position(); x != startX || y != startY {
		t.Errorf("Position() = (%v, %v), want world center", x, y)
	}
	if e.Sector() != (world.Sector{X: 250, Y: 250}) {
		t.Errorf("Sector() = %v", e.Sector())
	}
	if e.StarCount() != 300 {
		t.Errorf("StarCount() = %d, want 300", e.StarCount())
	}
	if len(e.Log().Messages) == 0 {
		t.Error("comms log is empty")
	}
}

func TestUpdateMovesPlayerAgainstStars(t *testing.T) {
	e := newTestEngine(t)
	e.Update(0.5, Inputs{MoveX: 1, MoveY: -1, FlightSpeed: 10})

	x, y := e.Position()
	if math.Abs(x-(startX+50)) > 1e-9 || math.Abs(y-(startY-50)) > 1e-9 {
		t.Errorf("Position() = (%v, %v), want (%v, %v)", x, y, startX+50, startY-50)
	}
	if vx, vy := e.stars.Velocity(); vx != -100 || vy != 100 {
		t.Errorf("star velocity = (%v, %v), want (-100, 100)", vx, vy)
	}
}

func TestUpdateClampsFlightSpeed(t *testing.T) {
	e := newTestEngine(t)
	e.Update(0, Inputs{FlightSpeed: 250})
	if e.FlightSpeed() != 100 {
		t.Errorf("FlightSpeed() = %d, want 100", e.FlightSpeed())
	}
	e.Update(0, Inputs{FlightSpeed: -3})
	if e.FlightSpeed() != 0 {
		t.Errorf("FlightSpeed() = %d, want 0", e.FlightSpeed())
	}
}

func TestSectorChangeIsLogged(t *testing.T) {
	e := newTestEngine(t)
	e.Update(0.1, Inputs{MoveX: -1, FlightSpeed: 1})

	if e.Sector() != (world.Sector{X: 249, Y: 250}) {
		t.Fatalf("Sector() = %v, want (249, 250)", e.Sector())
	}
	last := e.Log().Recent(1)[0]
	if last.Priority != MsgNav || !strings.Contains(last.Text, "(249, 250)") {
		t.Errorf("last comms line = %+v", last)
	}
}

func TestUpdateRotatesPlanetsAboutPlayer(t *testing.T) {
	e := newTestEngine(t)
	e.Planets().Add(PlanetBody{Name: "A", Radius: 15}, startX+100, startY)

	e.Update(1, Inputs{Rotate: 1})

	a := e.Planets().All()[0]
	if math.Abs(a.X-650) > 1e-6 || math.Abs(a.Y-450) > 1e-6 {
		t.Errorf("planet at (%v, %v) after a quarter turn, want (650, 450)", a.X, a.Y)
	}
}

func TestSelectAndTargetThroughEngine(t *testing.T) {
	e := newTestEngine(t, world.PlanetDef{Name: "blue planet", Radius: 15, Color: [3]uint8{0, 100, 255}})
	e.Update(0, Inputs{FlightSpeed: 1})

	if e.Target() {
		t.Fatal("Target() succeeded with nothing selected")
	}
	if !e.SelectAt(655, 345) {
		t.Fatal("SelectAt missed the planet at the screen center")
	}
	if !e.Target() {
		t.Fatal("Target() failed with a selection")
	}
	if name, ok := e.TargetedName(); !ok || name != "blue planet" {
		t.Errorf("TargetedName() = %q, %v", name, ok)
	}
	if last := e.Log().Recent(1)[0]; last.Text != "Target locked: blue planet." {
		t.Errorf("last comms line = %q", last.Text)
	}
}

func TestViewportHidesPlanetsOutsideMask(t *testing.T) {
	e := newTestEngine(t)
	e.Planets().Add(PlanetBody{Name: "far", Radius: 15}, startX+350, startY+250)
	vp := controlRoom(t)

	e.Update(0, Inputs{FlightSpeed: 1, Viewport: vp})
	if n := len(e.VisiblePlanets()); n != 0 {
		t.Errorf("%d planets visible through the control room, want 0", n)
	}

	e.Update(0, Inputs{FlightSpeed: 1})
	if n := len(e.VisiblePlanets()); n != 1 {
		t.Errorf("%d planets visible unmasked, want 1", n)
	}

	e.Update(0, Inputs{FlightSpeed: 1, Viewport: vp, ShowAll: true})
	if n := len(e.VisiblePlanets()); n != 1 {
		t.Errorf("%d planets visible in show-all, want 1", n)
	}
}

func TestVisibleStars(t *testing.T) {
	e := newTestEngine(t)
	vp := controlRoom(t)

	e.Update(0.016, Inputs{FlightSpeed: 50, Viewport: vp})
	for _, s := range e.VisibleStars() {
		if !vp.Mask.Contains(geom.Pt(s.X, s.Y)) {
			t.Fatalf("visible star (%v, %v) outside the mask", s.X, s.Y)
		}
	}

	e.Update(0.016, Inputs{FlightSpeed: 50, Viewport: vp, ShowAll: true})
	if n := len(e.VisibleStars()); n != 300 {
		t.Errorf("show-all shows %d stars, want 300", n)
	}
}

func TestPoolAndGrowthHoldAcrossFrames(t *testing.T) {
	e := newTestEngine(t)
	vp := controlRoom(t)
	rng := rand.New(rand.NewPCG(21, 22))
	grown := map[uint64]bool{}

	for i := 0; i < 2000; i++ {
		in := Inputs{
			MoveX:       float64(rng.IntN(3) - 1),
			MoveY:       float64(rng.IntN(3) - 1),
			Rotate:      float64(rng.IntN(3) - 1),
			FlightSpeed: rng.IntN(101),
		}
		if i%400 < 300 {
			in.Viewport = vp
		}
		dt := 1.0 / 60
		if i%500 == 499 {
			dt = 3 // stall
		}
		e.Update(dt, in)

		if e.StarCount() != 300 {
			t.Fatalf("frame %d: %d stars, want 300", i, e.StarCount())
		}
		for _, s := range e.stars.Stars() {
			if grown[s.ID] && !s.Grown {
				t.Fatalf("frame %d: star %d shrank", i, s.ID)
			}
			if s.Grown {
				grown[s.ID] = true
			}
		}
		x, y := e.Position()
		cfg := DefaultConfig().World
		if x < 0 || x >= cfg.WorldWidth || y < 0 || y >= cfg.WorldHeight {
			t.Fatalf("frame %d: position (%v, %v) out of world", i, x, y)
		}
	}
}

func TestNewViewport(t *testing.T) {
	cat, err := world.LoadCatalog(assets.Scenes)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	open, _ := cat.Scene("Open Space")
	if vp := NewViewport(open); vp != nil {
		t.Errorf("unmasked scene got viewport %+v", vp)
	}
	if vp := NewViewport(nil); vp != nil {
		t.Error("nil scene got a viewport")
	}

	room := controlRoom(t)
	if room.Flow.SplitY != 290 || room.Flow.LeftX != 490 || room.Flow.RightX != 816 || room.Flow.GrowthBand != 5 {
		t.Errorf("Control Room flow = %+v", room.Flow)
	}

	deck, _ := cat.Scene("Observation Deck")
	vp := NewViewport(deck)
	if vp == nil {
		t.Fatal("Observation Deck has no viewport")
	}
	if vp.Flow.SplitY != 350 || vp.Flow.LeftX != 650 || vp.Flow.RightX != 650 {
		t.Errorf("Observation Deck flow = %+v, want centered on (650, 350)", vp.Flow)
	}
}
