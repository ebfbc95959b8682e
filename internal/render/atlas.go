package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Glyph codes beyond ASCII that the HUD draws by hand.
const (
	GlyphLightShade = 176 // ░
	GlyphDarkShade  = 178 // ▓
	GlyphFullBlock  = 219 // █
	GlyphHLine      = 196 // ─
	GlyphVLine      = 179 // │
	GlyphCornerTL   = 218 // ┌
	GlyphCornerTR   = 191 // ┐
	GlyphCornerBL   = 192 // └
	GlyphCornerBR   = 217 // ┘
)

// FontAtlas holds the HUD glyph atlas and cached sub-images, indexed by
// byte code.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas at startup. Printable ASCII is
// rendered with basicfont.Face7x13; frame and bar glyphs are drawn by
// hand. Every other code is left blank.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		case hasBox(byte(code)):
			bc := boxChars[byte(code)]
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
		default:
			drawBlockGlyph(img, cx, cy, byte(code))
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

func hasBox(code byte) bool {
	_, ok := boxChars[code]
	return ok
}

// boxChars maps frame glyphs to their connections: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	GlyphVLine:    {false, false, true, true},
	GlyphHLine:    {true, true, false, false},
	GlyphCornerTL: {false, true, false, true},
	GlyphCornerTR: {true, false, false, true},
	GlyphCornerBL: {false, true, true, false},
	GlyphCornerBR: {true, false, true, false},
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the 16x16 cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph draws the shading and block glyphs used by HUD bars.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	var on func(x, y int) bool
	switch code {
	case GlyphLightShade:
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case GlyphDarkShade:
		on = func(x, y int) bool { return (x+y)%4 != 0 }
	case GlyphFullBlock:
		on = func(x, y int) bool { return true }
	default:
		return
	}

	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
