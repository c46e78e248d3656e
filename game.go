package seedbed

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tiltNudgeStep is the rotation applied per Q/E key press, in radians.
const tiltNudgeStep = math.Pi / 18

// Game drives a [Session] through Ebitengine's update/draw loop: it polls
// the mouse and touches, forwards desktop conveniences (wheel resize,
// Q/E tilt), and renders the scene with a status line.
type Game struct {
	session  *Session
	renderer *Renderer
	input    inputPoller

	width   int
	height  int
	showFPS bool
}

// NewGame builds a game from the given config.
func NewGame(cfg Config) *Game {
	cfg.applyDefaults()
	return &Game{
		session:  NewSession(cfg),
		renderer: NewRenderer(cfg.Screen.Width, cfg.Screen.Height),
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
	}
}

// Session returns the game's session, for attaching sinks or scripts.
func (g *Game) Session() *Session {
	return g.session
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	// Real input yields while synthetic events are queued, so scripts
	// replay without the idle mouse stomping their pointer slots.
	if g.session.PendingInjections() == 0 {
		g.input.poll(g.session)
	}

	// Desktop fallbacks for the touch-only gestures.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.session.NudgeScale(1 + wheelY*0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.session.NudgeTilt(-tiltNudgeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.session.NudgeTilt(tiltNudgeStep)
	}

	g.session.Advance(dt)
	g.renderer.Advance(dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)

	if status := g.session.Status(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, 8, g.height-20)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunConfig holds window options for [Run].
type RunConfig struct {
	ShowFPS bool
	Script  *Script // optional scripted input, replayed on start
}

// Run opens a window sized from cfg.Screen and blocks in the game loop
// until the window closes or an error occurs.
func Run(cfg Config, opts RunConfig) error {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	game := NewGame(cfg)
	game.showFPS = opts.ShowFPS
	if opts.Script != nil {
		game.session.SetScript(opts.Script)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
