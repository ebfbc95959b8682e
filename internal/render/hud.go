package render

import (
	"fmt"

	"github.com/spacehole-rogue/helmsman/internal/game"
	"github.com/spacehole-rogue/helmsman/internal/starfield"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

// HUD layout, in cells.
const (
	targetCol = 40 // the targeted planet's name is centered here
	targetRow = 8
	commsMax  = 6
	panelW    = 50
)

const helpLine = "WASD/QE fly  X/Z throttle  click select  T target  M scene  Tab all  F1 debug"

// HUD is everything the text overlay shows for one frame.
type HUD struct {
	Scene       string
	Sector      world.Sector
	X, Y        float64
	FlightSpeed int
	Targeted    string
	Messages    []game.Message

	// Debug enables the diagnostics panel; ShowAll is the show-all view.
	Debug   bool
	ShowAll bool
	Stars   int
	Stats   starfield.Stats
}

// DrawHUD fills buf with the overlay.
func DrawHUD(buf *CellBuffer, h HUD) {
	buf.Clear()

	buf.WriteString(1, 0, h.Scene, ColorLightCyan, ColorBlack)
	if h.ShowAll {
		buf.WriteString(len(h.Scene)+2, 0, "[show all]", ColorYellow, ColorBlack)
	}

	buf.WriteString(1, 1, "Throttle", ColorLightGray, ColorBlack)
	buf.Bar(10, 1, 20, h.FlightSpeed, game.MaxFlightSpeed, throttleColor(h.FlightSpeed))
	buf.WriteString(31, 1, fmt.Sprintf("%3d", h.FlightSpeed), ColorLightGray, ColorBlack)

	if h.Targeted != "" && !h.ShowAll {
		buf.WriteCentered(targetCol, targetRow, h.Targeted, ColorYellow, ColorBlack)
	}

	if h.Debug {
		drawDebugPanel(buf, h)
	}
	drawComms(buf, h.Messages)

	buf.WriteString(1, buf.Rows-1, helpLine, ColorDarkGray, ColorBlack)
}

func throttleColor(speed int) uint8 {
	switch {
	case speed >= 80:
		return ColorLightRed
	case speed >= 20:
		return ColorYellow
	default:
		return ColorLightGreen
	}
}

func drawDebugPanel(buf *CellBuffer, h HUD) {
	x := buf.Cols - 30
	buf.WriteString(x, 0, "--- Nav ---", ColorLightCyan, ColorBlack)
	buf.WriteString(x, 1, fmt.Sprintf("Sector   %v", h.Sector), ColorWhite, ColorBlack)
	buf.WriteString(x, 2, fmt.Sprintf("World    %.0f, %.0f", h.X, h.Y), ColorLightGray, ColorBlack)
	buf.WriteString(x, 3, fmt.Sprintf("Stars    %d", h.Stars), ColorLightGray, ColorBlack)
	buf.WriteString(x, 4, fmt.Sprintf("Grown    %d  Spawned %d", h.Stats.Grown, h.Stats.GrowthSpawns), ColorLightGray, ColorBlack)
	buf.WriteString(x, 5, fmt.Sprintf("Exited   %d  Culled  %d", h.Stats.Exited, h.Stats.Culled), ColorLightGray, ColorBlack)
	target := h.Targeted
	if target == "" {
		target = "none"
	}
	buf.WriteString(x, 6, "Target   "+target, ColorYellow, ColorBlack)
}

func drawComms(buf *CellBuffer, msgs []game.Message) {
	if len(msgs) > commsMax {
		msgs = msgs[len(msgs)-commsMax:]
	}
	top := buf.Rows - commsMax - 4
	buf.Frame(0, top, panelW, top+commsMax+1, ColorDarkGray)
	buf.WriteString(2, top, " Comms ", ColorLightCyan, ColorBlack)
	for i, msg := range msgs {
		buf.WriteString(2, top+1+i, msg.Text, msgColor(msg.Priority), ColorBlack)
	}
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return ColorLightRed
	case game.MsgTarget:
		return ColorYellow
	case game.MsgNav:
		return ColorWhite
	default:
		return ColorCyan
	}
}
