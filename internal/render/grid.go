package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell of the HUD.
type Cell struct {
	Glyph byte  // atlas code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index; black is transparent
}

// CellBuffer is a 2D grid of character cells drawn over the space view.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y), one byte per cell. Bytes
// outside printable ASCII become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 32 || ch > 126 {
			ch = '?'
		}
		b.Set(x+i, y, ch, fg, bg)
	}
}

// WriteCentered writes s centered on column cx.
func (b *CellBuffer) WriteCentered(cx, y int, s string, fg, bg uint8) {
	b.WriteString(cx-len(s)/2, y, s, fg, bg)
}

// Frame draws a single-line box with its corners at (x0, y0) and (x1, y1).
func (b *CellBuffer) Frame(x0, y0, x1, y1 int, fg uint8) {
	for x := x0 + 1; x < x1; x++ {
		b.Set(x, y0, GlyphHLine, fg, ColorBlack)
		b.Set(x, y1, GlyphHLine, fg, ColorBlack)
	}
	for y := y0 + 1; y < y1; y++ {
		b.Set(x0, y, GlyphVLine, fg, ColorBlack)
		b.Set(x1, y, GlyphVLine, fg, ColorBlack)
	}
	b.Set(x0, y0, GlyphCornerTL, fg, ColorBlack)
	b.Set(x1, y0, GlyphCornerTR, fg, ColorBlack)
	b.Set(x0, y1, GlyphCornerBL, fg, ColorBlack)
	b.Set(x1, y1, GlyphCornerBR, fg, ColorBlack)
}

// Bar draws a width-cell gauge filled in proportion to val/limit.
func (b *CellBuffer) Bar(x, y, width, val, limit int, fg uint8) {
	if limit <= 0 {
		limit = 1
	}
	filled := width * min(max(val, 0), limit) / limit
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphFullBlock, fg, ColorBlack)
		} else {
			b.Set(x+i, y, GlyphLightShade, ColorDarkGray, ColorBlack)
		}
	}
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the buffer over whatever is already on screen. Black
// backgrounds and blank glyphs are skipped so space shows through.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}
