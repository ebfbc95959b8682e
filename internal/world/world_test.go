package world

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/spacehole-rogue/helmsman/assets"
)

func TestDefaultConfigSectorSize(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WorldWidth != 650000 || cfg.WorldHeight != 350000 {
		t.Fatalf("world = %vx%v, want 650000x350000", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.SectorWidth() != 1300 || cfg.SectorHeight() != 700 {
		t.Errorf("sector = %vx%v, want 1300x700", cfg.SectorWidth(), cfg.SectorHeight())
	}
}

func TestTrackerStartsAtCenter(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	x, y := tr.Position()
	if x != 325000 || y != 175000 {
		t.Errorf("start = (%v, %v), want (325000, 175000)", x, y)
	}
	if s := tr.Sector(); s != (Sector{250, 250}) {
		t.Errorf("start sector = %v, want (250, 250)", s)
	}
}

func TestApplyMovementWrapsPastEdge(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	tr.SetPosition(649999.5, 1000)
	tr.ApplyMovement(1.1, 0)

	x, _ := tr.Position()
	if math.Abs(x-0.6) > 1e-6 {
		t.Errorf("wrapped x = %v, want 0.6", x)
	}
	if s := tr.Sector(); s.X != 0 {
		t.Errorf("sector x = %d, want 0", s.X)
	}
}

func TestApplyMovementWrapsNegative(t *testing.T) {
	tests := []struct {
		name         string
		startX       float64
		startY       float64
		dx, dy       float64
		wantX, wantY float64
	}{
		{"left of origin", 0.5, 10, -1, 0, 649999.5, 10},
		{"above origin", 10, 0, 0, -2.5, 10, 349997.5},
		{"several worlds negative", 100, 100, -3 * 650000, -2 * 350000, 100, 100},
		{"several worlds positive", 100, 100, 5*650000 + 1, 0, 101, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(DefaultConfig())
			tr.SetPosition(tt.startX, tt.startY)
			tr.ApplyMovement(tt.dx, tt.dy)
			x, y := tr.Position()
			if math.Abs(x-tt.wantX) > 1e-6 || math.Abs(y-tt.wantY) > 1e-6 {
				t.Errorf("position = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPositionAndSectorStayInRange(t *testing.T) {
	cfg := DefaultConfig()
	tr := NewTracker(cfg)
	rng := rand.New(rand.NewPCG(42, 1))

	for i := 0; i < 20000; i++ {
		// Mix of frame-sized steps and huge stall-sized jumps.
		scale := 50.0
		if i%97 == 0 {
			scale = 5e6
		}
		tr.ApplyMovement((rng.Float64()*2-1)*scale, (rng.Float64()*2-1)*scale)

		x, y := tr.Position()
		if x < 0 || x >= cfg.WorldWidth || y < 0 || y >= cfg.WorldHeight {
			t.Fatalf("step %d: position (%v, %v) out of world", i, x, y)
		}
		s := tr.Sector()
		if s.X < 0 || s.X >= cfg.SectorsX || s.Y < 0 || s.Y >= cfg.SectorsY {
			t.Fatalf("step %d: sector %v out of grid", i, s)
		}
	}
}

func TestSectorOf(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		x, y float64
		want Sector
	}{
		{"origin", 0, 0, Sector{0, 0}},
		{"last cell", 649999, 349999, Sector{499, 499}},
		{"sector boundary", 1300, 700, Sector{1, 1}},
		{"just before boundary", 1299.999, 699.999, Sector{0, 0}},
		{"negative folds", -1, -1, Sector{499, 499}},
		{"beyond world folds", 650000 + 2600, 0, Sector{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.SectorOf(tt.x, tt.y); got != tt.want {
				t.Errorf("SectorOf(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLoadCatalogEmbedded(t *testing.T) {
	cat, err := LoadCatalog(assets.Scenes)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if cat.Screen.Width != 1300 || cat.Screen.Height != 700 {
		t.Errorf("screen = %+v", cat.Screen)
	}

	room, ok := cat.Scene("Control Room")
	if !ok {
		t.Fatal("Control Room scene missing")
	}
	if !room.Masked() || len(room.Polygon()) != 8 {
		t.Errorf("Control Room mask = %v", room.Mask)
	}
	if !room.Helm {
		t.Error("Control Room should carry the helm")
	}
	if room.Flow == nil || room.Flow.SplitY != 290 || room.Flow.LeftX != 490 || room.Flow.RightX != 816 {
		t.Errorf("Control Room flow = %+v", room.Flow)
	}

	open, ok := cat.Scene("Open Space")
	if !ok || open.Masked() {
		t.Errorf("Open Space should exist and be unmasked")
	}

	deck, ok := cat.Scene("Observation Deck")
	if !ok || deck.Helm || !deck.Masked() || deck.Flow != nil {
		t.Errorf("Observation Deck = %+v, want a masked scene without helm or flow lines", deck)
	}
	if len(cat.Planets) != 2 || cat.Planets[0].Name != "blue planet" {
		t.Errorf("planets = %+v", cat.Planets)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "screen: [", "parse scene catalog"},
		{"no screen", "scenes:\n  - name: a\n", "screen size"},
		{"no scenes", "screen: {width: 10, height: 10}\n", "no scenes"},
		{"unnamed scene", "screen: {width: 10, height: 10}\nscenes:\n  - mask: []\n", "has no name"},
		{"duplicate scene", "screen: {width: 10, height: 10}\nscenes:\n  - name: a\n  - name: a\n", "duplicate scene"},
		{"bad planet radius", "screen: {width: 10, height: 10}\nscenes:\n  - name: a\nplanets:\n  - name: p\n    radius: 0\n", "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestShortMaskIsAccepted(t *testing.T) {
	cat, err := LoadCatalog([]byte("screen: {width: 10, height: 10}\nscenes:\n  - name: slit\n    mask: [[0, 0], [5, 5]]\n"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	s, _ := cat.Scene("slit")
	if !s.Masked() || len(s.Polygon()) != 2 {
		t.Errorf("slit scene = %+v", s)
	}
}
