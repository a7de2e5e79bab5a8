//go:build ebiten

package app

import (
	"fmt"
	"time"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
	"hub75-ca/internal/render"
	"hub75-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a core simulation to the ebiten.Game interface. The sim paints
// through a panel.Display into an in-memory physical frame, so the window
// shows exactly what the wired panel would receive, read back through the
// layout.
type Game struct {
	sim     core.Sim
	remap   panel.Remapper
	frame   *panel.Frame
	display *panel.Display
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	scale    int
	pause    time.Duration
	paused   bool
	tickOnce bool
	showTags bool
	seed     int64
	ticks    int
	finished time.Time
}

// New constructs a Game for the provided simulation and layout.
func New(sim core.Sim, remap panel.Remapper, cfg *Config) *Game {
	p, l := remap.Physical(), remap.Logical()
	frame := panel.NewFrame(p.W, p.H)
	g := &Game{
		sim:     sim,
		remap:   remap,
		frame:   frame,
		display: panel.NewDisplay(frame, remap),
		painter: render.NewFramePainter(l.W, l.H),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(frame, remap, cfg.Scale),
		timer:   core.NewFixedStep(cfg.TPS),
		scale:   max(1, cfg.Scale),
		pause:   cfg.Pause,
	}
	g.display.Start()
	g.Reset(cfg.Seed)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.ticks = 0
	g.finished = time.Time{}
	g.display.Clear()
	g.display.ResetStats()
	g.sim.Reset(seed, g.display)
	g.tickOnce = false
	g.timer.Reset()
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	l := g.remap.Logical()
	return l.W*g.scale + g.hud.Width(), l.H*g.scale + g.overlay.Height()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.display.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTags = !g.showTags
	}

	g.overlay.Update()
	l := g.remap.Logical()
	g.hud.Update(l.W * g.scale)

	if !g.finished.IsZero() {
		if !g.paused && time.Since(g.finished) >= g.pause {
			g.Reset(g.seed + 1)
		}
	} else if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.tickOnce = false
		g.ticks++
		if !g.sim.Step(g.display) {
			g.finished = time.Now()
		}
	}

	g.hud.SetStatus(g.status()...)
	return nil
}

func (g *Game) status() []string {
	state := "running"
	switch {
	case g.paused:
		state = "paused"
	case !g.finished.IsZero():
		state = "finished"
	}
	st := g.display.Stats()
	lines := []string{
		fmt.Sprintf("seed %d  tick %d  %s", g.seed, g.ticks, state),
		fmt.Sprintf("writes %d  skipped %d", st.Written, st.Skipped),
	}
	if lp, pp, ok := g.overlay.Probe(); ok {
		lines = append(lines, fmt.Sprintf("(%d,%d) -> (%d,%d)", lp.X, lp.Y, pp.X, pp.Y))
	}
	return lines
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.sim.Cells()
	l := g.remap.Logical()
	if g.showTags && len(cells) == l.W*l.H {
		render.TagRGBA(g.painter.Buffer(), cells, render.TagPalette)
	} else {
		render.LogicalRGBA(g.painter.Buffer(), g.frame, g.remap)
	}
	g.painter.Blit(screen, 0, 0, float64(g.scale))
	g.overlay.Draw(screen, l.H*g.scale)
	_, h := g.Size()
	g.hud.Draw(screen, l.W*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
