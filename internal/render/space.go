package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/helmsman/internal/game"
	"github.com/spacehole-rogue/helmsman/internal/geom"
)

// Ring offsets around a planet's disc, in pixels.
const (
	selectRing = 3
	targetRing = 7
)

// DrawStars plots each star as a square of its size.
func DrawStars(screen *ebiten.Image, stars []game.StarView) {
	for _, s := range stars {
		size := float32(s.Size)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), size, size, StarColor, false)
	}
}

// DrawPlanets draws planet discs with a ring for the selected planet and a
// wider one for the target.
func DrawPlanets(screen *ebiten.Image, planets []game.PlanetView) {
	for _, p := range planets {
		x, y, r := float32(p.X), float32(p.Y), float32(p.Radius)
		vector.DrawFilledCircle(screen, x, y, r, p.Color, true)
		if p.Selected {
			vector.StrokeCircle(screen, x, y, r+selectRing, 1, SelectColor, true)
		}
		if p.Targeted {
			vector.StrokeCircle(screen, x, y, r+targetRing, 2, TargetColor, true)
		}
	}
}

// DrawMask outlines the viewport polygon. Masks with fewer than three
// vertices draw nothing.
func DrawMask(screen *ebiten.Image, mask *geom.Mask, clr color.Color) {
	if mask == nil || mask.Empty() {
		return
	}
	verts := mask.Vertices()
	prev := verts[len(verts)-1]
	for _, v := range verts {
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(v.X), float32(v.Y), 1, clr, true)
		prev = v
	}
}

// DrawReticle marks the player's position at the screen center.
func DrawReticle(screen *ebiten.Image, cx, cy float64) {
	x, y := float32(cx), float32(cy)
	vector.StrokeLine(screen, x-6, y, x-2, y, 1, ReticleColor, false)
	vector.StrokeLine(screen, x+2, y, x+6, y, 1, ReticleColor, false)
	vector.StrokeLine(screen, x, y-6, x, y-2, 1, ReticleColor, false)
	vector.StrokeLine(screen, x, y+2, x, y+6, 1, ReticleColor, false)
}
