//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"hub75-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	groupColor  = color.RGBA{R: 120, G: 180, B: 255, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders a side panel with the status line, the adjustable integer
// parameters of the simulation and a read-only dump of its parameter
// snapshot.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	status   []string
	snapshot core.ParameterSnapshot

	controls []control
	setter   core.IntParameterSetter
	offsetX  int
}

type control struct {
	core.ParameterControl
	value    int
	hasValue bool

	top         int
	minus, plus image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// width of zero disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(0, width), title: strings.ToUpper(sim.Name())}
	if h.width == 0 {
		return h
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, c := range provider.ParameterControls() {
			if c.Type == core.ParamTypeInt {
				h.controls = append(h.controls, control{ParameterControl: c})
			}
		}
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		h.controls[i].top = top
		h.controls[i].plus = image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		h.controls[i].minus = h.controls[i].plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// SetStatus replaces the status lines shown under the title.
func (h *HUD) SetStatus(lines ...string) { h.status = lines }

// Update refreshes the parameter snapshot and handles clicks on the
// adjustment buttons. offsetX is the screen x of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h.width == 0 {
		return
	}
	h.offsetX = offsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.Key)
		c.hasValue = false
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(p.Value); err == nil {
			c.value, c.hasValue = v, true
		}
	}

	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) target(c *control, dir int) (int, bool) {
	if !c.hasValue || h.setter == nil {
		return 0, false
	}
	step := max(1, int(math.Round(c.Step)))
	v := c.value + dir*step
	if c.HasMin {
		v = max(v, int(math.Round(c.Min)))
	}
	if c.HasMax {
		v = min(v, int(math.Round(c.Max)))
	}
	return v, v != c.value
}

func (h *HUD) adjust(c *control, dir int) {
	v, ok := h.target(c, dir)
	if ok && h.setter.SetIntParameter(c.Key, v) {
		c.value = v
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
	}

	for i := range h.controls {
		c := &h.controls[i]
		base := c.top + labelBaseline
		text.Draw(h.panel, c.Label, face, panelPadding, base, labelColor)
		value, col := "--", mutedColor
		if c.hasValue {
			value, col = strconv.Itoa(c.value), labelColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, base, col)
		_, minusOK := h.target(c, -1)
		_, plusOK := h.target(c, 1)
		h.drawButton(c.minus, "-", minusOK)
		h.drawButton(c.plus, "+", plusOK)
	}

	y = controlsTop + len(h.controls)*lineHeight + textLine
	for _, g := range h.snapshot.Groups {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, g.Name, face, panelPadding, y, groupColor)
		y += textLine
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, mutedColor)
			y += textLine
		}
		y += textLine / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, labelColor
	if !enabled {
		bg, fg = buttonOffBG, buttonOffFG
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLines    = 3
	controlsTop    = panelPadding + headerBaseline + statusLines*textLine + 14
)
