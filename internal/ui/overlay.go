//go:build ebiten

package ui

import (
	"image/color"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stripGap = 8

// Overlay shows what the panel bus receives: the physical strip drawn under
// the logical view, guides for the band and quadrant boundaries of a chained
// layout, and a cursor probe linking a logical pixel to its physical address.
type Overlay struct {
	frame *panel.Frame
	remap panel.Remapper
	scale int

	showStrip  bool
	showGuides bool

	stripScale int
	stripImg   *ebiten.Image
	pixel      *ebiten.Image

	probe    core.Point
	probeOK  bool
	physical core.Point
}

// NewOverlay constructs an overlay for the given physical frame and layout.
func NewOverlay(frame *panel.Frame, remap panel.Remapper, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{frame: frame, remap: remap, scale: scale, showStrip: true}
	l, p := remap.Logical(), remap.Physical()
	if l != p {
		o.stripScale = max(1, l.W*scale/p.W)
		o.stripImg = ebiten.NewImage(p.W, p.H)
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Height returns the vertical space the strip view needs below the logical
// view.
func (o *Overlay) Height() int {
	if o.stripImg == nil {
		return 0
	}
	return stripGap + o.remap.Physical().H*o.stripScale
}

// Probe returns the logical pixel under the cursor and its physical address.
func (o *Overlay) Probe() (logical, physical core.Point, ok bool) {
	return o.probe, o.physical, o.probeOK
}

// Update handles the overlay toggles and tracks the cursor.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showStrip = !o.showStrip
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGuides = !o.showGuides
	}

	mx, my := ebiten.CursorPosition()
	l := o.remap.Logical()
	x, y := mx/o.scale, my/o.scale
	o.probeOK = mx >= 0 && my >= 0 && x < l.W && y < l.H
	if o.probeOK {
		o.probe = core.Point{X: x, Y: y}
		px, py := o.remap.Remap(x, y)
		o.physical = core.Point{X: px, Y: py}
	}
}

// Draw renders the overlay. viewH is the pixel height of the logical view.
func (o *Overlay) Draw(screen *ebiten.Image, viewH int) {
	if o.showGuides {
		o.drawGuides(screen)
	}
	if o.showStrip && o.stripImg != nil {
		o.drawStrip(screen, viewH+stripGap)
	}
	if o.probeOK {
		s := float64(o.scale)
		o.drawRect(screen, float64(o.probe.X)*s, float64(o.probe.Y)*s, s, s, color.RGBA{R: 160, G: 160, A: 160})
	}
}

func (o *Overlay) drawStrip(screen *ebiten.Image, top int) {
	o.stripImg.WritePixels(o.frame.Image().Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.stripScale), float64(o.stripScale))
	op.GeoM.Translate(0, float64(top))
	screen.DrawImage(o.stripImg, op)

	if o.probeOK {
		s := float64(o.stripScale)
		x := float64(o.physical.X) * s
		y := float64(top) + float64(o.physical.Y)*s
		o.drawRect(screen, x-1, y-1, s+2, s+2, color.RGBA{R: 200, G: 200, A: 200})
	}
}

// Guides are drawn every 32 logical columns and every 64 rows, where the
// chained layout switches module or direction.
func (o *Overlay) drawGuides(screen *ebiten.Image) {
	chain, ok := o.remap.(*panel.Chain)
	if !ok {
		return
	}
	l := o.remap.Logical()
	s := float64(o.scale)
	guide := color.RGBA{G: 80, B: 120, A: 120}
	for x := chain.Quadrant; x < l.W; x += chain.Quadrant {
		o.drawRect(screen, float64(x)*s, 0, 1, float64(l.H)*s, guide)
	}
	for y := chain.Band; y < l.H; y += chain.Band {
		o.drawRect(screen, 0, float64(y)*s, float64(l.W)*s, 1, guide)
	}
}

// col is premultiplied.
func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
