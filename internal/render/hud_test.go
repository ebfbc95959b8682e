package render

import (
	"strings"
	"testing"

	"github.com/spacehole-rogue/helmsman/internal/game"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

func bufferText(b *CellBuffer) string {
	var sb strings.Builder
	for y := 0; y < b.Rows; y++ {
		sb.WriteString(rowText(b, y, 0, b.Cols))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestDrawHUDTarget(t *testing.T) {
	b := NewCellBuffer(81, 43)
	DrawHUD(b, HUD{Scene: "Control Room", FlightSpeed: 40, Targeted: "red planet"})

	if got := strings.TrimSpace(rowText(b, targetRow, 0, b.Cols)); got != "red planet" {
		t.Errorf("target row = %q", got)
	}
	if c := b.Get(targetCol, targetRow); c.FG != ColorYellow {
		t.Errorf("target color = %d, want yellow", c.FG)
	}

	// The show-all view hides the target banner.
	DrawHUD(b, HUD{Scene: "Control Room", Targeted: "red planet", ShowAll: true})
	if got := strings.TrimSpace(rowText(b, targetRow, 0, b.Cols)); got != "" {
		t.Errorf("target row in show-all = %q", got)
	}
	if !strings.Contains(rowText(b, 0, 0, b.Cols), "[show all]") {
		t.Error("show-all marker missing")
	}
}

func TestDrawHUDDebugPanel(t *testing.T) {
	b := NewCellBuffer(81, 43)
	DrawHUD(b, HUD{Scene: "Open Space", Sector: world.Sector{X: 249, Y: 250}, Stars: 300})
	if strings.Contains(bufferText(b), "Sector") {
		t.Error("debug panel drawn without Debug")
	}

	DrawHUD(b, HUD{Scene: "Open Space", Sector: world.Sector{X: 249, Y: 250}, Stars: 300, Debug: true})
	text := bufferText(b)
	for _, want := range []string{"Sector   (249, 250)", "Stars    300", "Target   none"} {
		if !strings.Contains(text, want) {
			t.Errorf("debug panel missing %q", want)
		}
	}
}

func TestDrawHUDCommsKeepsNewest(t *testing.T) {
	var msgs []game.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, game.Message{Text: strings.Repeat(string(rune('a'+i)), 3), Priority: game.MsgNav})
	}
	b := NewCellBuffer(81, 43)
	DrawHUD(b, HUD{Scene: "Control Room", Messages: msgs})

	text := bufferText(b)
	if strings.Contains(text, "ddd") || !strings.Contains(text, "eee") || !strings.Contains(text, "jjj") {
		t.Errorf("comms panel should show the last %d lines:\n%s", commsMax, text)
	}
}
