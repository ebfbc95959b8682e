package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/helmsman/assets"
	"github.com/spacehole-rogue/helmsman/internal/config"
	"github.com/spacehole-rogue/helmsman/internal/game"
	"github.com/spacehole-rogue/helmsman/internal/logging"
	"github.com/spacehole-rogue/helmsman/internal/render"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

const (
	title = "Helmsman"

	cellWidth  = 16
	cellHeight = 16
)

// Game is the Ebitengine game struct. It owns rendering and input; all
// navigation state lives in engine.
type Game struct {
	screenW, screenH int

	renderer *render.GridRenderer
	buffer   *render.CellBuffer

	catalog  *world.Catalog
	sceneIdx int
	viewport *game.Viewport

	engine   *game.Engine
	throttle *game.Throttle
	showAll  bool
	debug    bool

	last   time.Time
	logger *slog.Logger
}

func NewGame(cfg *config.Config, cat *world.Catalog) (*Game, error) {
	seed := cfg.Flight.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ecfg := game.DefaultConfig()
	ecfg.Stars.StarCount = cfg.Flight.StarCount
	ecfg.Stars.ScreenWidth = float64(cat.Screen.Width)
	ecfg.Stars.ScreenHeight = float64(cat.Screen.Height)
	ecfg.World.WorldWidth = float64(cat.Screen.Width * ecfg.World.SectorsX)
	ecfg.World.WorldHeight = float64(cat.Screen.Height * ecfg.World.SectorsY)

	g := &Game{
		screenW:  cat.Screen.Width,
		screenH:  cat.Screen.Height,
		renderer: render.NewGridRenderer(render.NewFontAtlas(), cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(cat.Screen.Width/cellWidth, cat.Screen.Height/cellHeight),
		catalog:  cat,
		engine:   game.NewEngine(ecfg, cat.Planets, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		throttle: game.NewThrottle(),
		showAll:  cfg.Flight.ShowAll,
		last:     time.Now(),
		logger:   slog.With("component", "game"),
	}

	idx := -1
	for i := range cat.Scenes {
		if cat.Scenes[i].Name == cfg.Flight.Scene {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("unknown scene %q", cfg.Flight.Scene)
	}
	g.enterScene(idx)

	g.logger.Info("game started",
		"seed", seed,
		"stars", ecfg.Stars.StarCount,
		"scene", g.scene().Name,
	)
	return g, nil
}

func (g *Game) scene() *world.SceneDef { return &g.catalog.Scenes[g.sceneIdx] }

func (g *Game) enterScene(idx int) {
	g.sceneIdx = idx
	g.viewport = game.NewViewport(g.scene())
	g.engine.Log().Add(fmt.Sprintf("Moved to the %s.", g.scene().Name), game.MsgInfo)
	g.logger.Debug("scene entered", "scene", g.scene().Name, "masked", g.viewport != nil)
}

// inFlight reports whether flight controls act: at a helm, or in the
// show-all debug view.
func (g *Game) inFlight() bool {
	return g.scene().Helm || g.showAll
}

func axis(neg, pos ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	return v
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showAll = !g.showAll
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.enterScene((g.sceneIdx + 1) % len(g.catalog.Scenes))
	}

	in := game.Inputs{
		Viewport: g.viewport,
		ShowAll:  g.showAll,
	}
	if g.inFlight() {
		in.MoveX = axis(ebiten.KeyA, ebiten.KeyD)
		in.MoveY = axis(ebiten.KeyW, ebiten.KeyS)
		in.Rotate = axis(ebiten.KeyE, ebiten.KeyQ)
		g.throttle.Update(int(axis(ebiten.KeyZ, ebiten.KeyX)), dt)
	} else {
		g.throttle.Update(0, dt)
	}
	in.FlightSpeed = g.throttle.Speed()

	g.engine.Update(dt, in)

	if g.inFlight() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.engine.SelectAt(float64(mx), float64(my))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) && !g.engine.Target() {
			g.engine.Log().Add("No planet selected.", game.MsgWarning)
		}
	}

	g.drawHUD()
	return nil
}

func (g *Game) drawHUD() {
	x, y := g.engine.Position()
	targeted, _ := g.engine.TargetedName()
	render.DrawHUD(g.buffer, render.HUD{
		Scene:       g.scene().Name,
		Sector:      g.engine.Sector(),
		X:           x,
		Y:           y,
		FlightSpeed: g.engine.FlightSpeed(),
		Targeted:    targeted,
		Messages:    g.engine.Log().Recent(8),
		Debug:       g.debug,
		ShowAll:     g.showAll,
		Stars:       g.engine.StarCount(),
		Stats:       g.engine.Stats(),
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.SpaceColor)
	render.DrawStars(screen, g.engine.VisibleStars())
	render.DrawPlanets(screen, g.engine.VisiblePlanets())

	if g.debug {
		if g.viewport != nil {
			render.DrawMask(screen, g.viewport.Mask, render.MaskColor)
		}
		render.DrawReticle(screen, float64(g.screenW)/2, float64(g.screenH)/2)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			g.screenW-150, g.screenH-40)
	}

	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.Logging)

	cat, err := world.LoadCatalog(assets.Scenes)
	if err != nil {
		slog.Error("load scenes", "error", err)
		os.Exit(1)
	}

	g, err := NewGame(cfg, cat)
	if err != nil {
		slog.Error("start game", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("run game", "error", err)
		os.Exit(1)
	}
}
