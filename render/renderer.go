// Package render draws the swarm and the HUD onto a tcell cell grid.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-swarm/camera"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// Surface is the subset of tcell.Screen the renderer writes to
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Frame is everything one draw reads
type Frame struct {
	Particles physics.PositionView
	Tuning    *tuning.Store
	Status    StatusInfo

	// Pointer cell; drawn only when inside the viewport
	PointerX, PointerY int
	PointerValid       bool
	PointerEngaged     bool
}

// Renderer rasterizes particles into per-cell density
type Renderer struct {
	surface Surface
	cam     *camera.Camera
	density []int
	base    tcell.Style
}

func NewRenderer(surface Surface, cam *camera.Camera) *Renderer {
	return &Renderer{
		surface: surface,
		cam:     cam,
		base:    tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw renders f; the caller shows the screen afterwards
func (r *Renderer) Draw(f Frame) {
	w, h := r.surface.Size()
	if w != r.cam.Width || h != r.cam.Height {
		r.cam.Resize(w, h)
	}

	r.fill(w, h)
	r.drawParticles(f.Particles, w, h)
	r.drawPointer(f)
	r.drawHUD(f, w)
}

func (r *Renderer) fill(w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.surface.SetContent(x, y, ' ', nil, r.base)
		}
	}
}

// drawParticles bins particle positions into cells and draws a glyph per occupied cell
func (r *Renderer) drawParticles(pos physics.PositionView, w, h int) {
	if pos == nil {
		return
	}
	if cap(r.density) < w*h {
		r.density = make([]int, w*h)
	}
	r.density = r.density[:w*h]
	clear(r.density)

	for i := 0; i < pos.Len(); i++ {
		x, y, ok := r.cam.WorldToScreen(pos.Position(i))
		if !ok {
			continue
		}
		r.density[y*w+x]++
	}

	for y := r.cam.HUDRows; y < h; y++ {
		for x := 0; x < w; x++ {
			n := r.density[y*w+x]
			if n == 0 {
				continue
			}
			glyph, color := densityCell(n)
			r.surface.SetContent(x, y, glyph, nil, r.base.Foreground(color))
		}
	}
}

func (r *Renderer) drawPointer(f Frame) {
	if !f.PointerValid || !r.cam.Contains(f.PointerX, f.PointerY) {
		return
	}
	color := RgbAttractor
	if f.PointerEngaged {
		color = RgbEngaged
	}
	r.surface.SetContent(f.PointerX, f.PointerY, '+', nil, r.base.Foreground(color).Bold(true))
}

// drawHUD lays out one two-line block per constant side by side, then the status line
func (r *Renderer) drawHUD(f Frame, w int) {
	if r.cam.HUDRows < 1 {
		return
	}
	if f.Tuning != nil {
		colWidth := w / int(tuning.Count)
		col := 0
		f.Tuning.Each(func(c tuning.Constant) {
			value, keys := ConstantLines(c)
			x := col * colWidth
			r.drawText(x, 0, value, r.base.Foreground(RgbHUDValue), x+colWidth)
			if r.cam.HUDRows > 1 {
				r.drawText(x, 1, keys, r.base.Foreground(RgbHUDKey), x+colWidth)
			}
			col++
		})
	}

	if r.cam.HUDRows > 2 {
		style := r.base.Foreground(RgbHUDText)
		if f.Status.Paused {
			style = r.base.Foreground(RgbPaused).Bold(true)
		}
		r.drawText(0, 2, f.Status.String(), style, w)
	}
}

// drawText writes s from (x, y), clipped before column limit
func (r *Renderer) drawText(x, y int, s string, style tcell.Style, limit int) {
	for _, ch := range s {
		if x >= limit {
			return
		}
		r.surface.SetContent(x, y, ch, nil, style)
		x++
	}
}
