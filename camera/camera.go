// Package camera maps terminal cells to world coordinates and back.
// World Y grows upward; screen rows grow downward. Rows above HUDRows belong to the HUD, not the viewport.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/vmath"
)

const (
	minWorldPerCell = 0.05
	maxWorldPerCell = 1000.0
)

// Camera is a viewport transform over a terminal-sized grid of cells
type Camera struct {
	Center       r2.Vec  // world point shown at the viewport centre
	WorldPerCell float64 // world width of one column
	CellAspect   float64 // row height / column width
	Width        int     // columns
	Height       int     // rows, including the HUD
	HUDRows      int     // rows reserved at the top
}

// New creates a camera centred on the origin for a width×height terminal
func New(width, height int) *Camera {
	return &Camera{
		WorldPerCell: parameter.CameraWorldPerCell,
		CellAspect:   parameter.CameraCellAspect,
		Width:        width,
		Height:       height,
		HUDRows:      parameter.HUDRows,
	}
}

// Resize updates the terminal dimensions
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Zoom scales the world extent shown; factor > 1 zooms out
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 || !vmath.IsFinite(factor) {
		return
	}
	w := c.WorldPerCell * factor
	if w < minWorldPerCell {
		w = minWorldPerCell
	}
	if w > maxWorldPerCell {
		w = maxWorldPerCell
	}
	c.WorldPerCell = w
}

// Contains reports whether cell (x, y) is inside the viewport
func (c *Camera) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= c.HUDRows && y < c.Height
}

// centre returns the fractional cell coordinate of the viewport centre
func (c *Camera) centre() (cx, cy float64) {
	rows := c.Height - c.HUDRows
	return float64(c.Width) / 2, float64(c.HUDRows) + float64(rows)/2
}

// ScreenToWorld returns the world position at the centre of cell (x, y)
// ok is false when the cell lies outside the viewport
func (c *Camera) ScreenToWorld(x, y int) (r2.Vec, bool) {
	if !c.Contains(x, y) {
		return r2.Vec{}, false
	}
	cx, cy := c.centre()
	return r2.Vec{
		X: c.Center.X + (float64(x)+0.5-cx)*c.WorldPerCell,
		Y: c.Center.Y - (float64(y)+0.5-cy)*c.WorldPerCell*c.CellAspect,
	}, true
}

// WorldToScreen returns the cell containing world point p
// ok is false when p falls outside the viewport or is non-finite
func (c *Camera) WorldToScreen(p r2.Vec) (x, y int, ok bool) {
	if !vmath.IsFiniteVec(p) {
		return 0, 0, false
	}
	cx, cy := c.centre()
	fx := cx + (p.X-c.Center.X)/c.WorldPerCell
	fy := cy - (p.Y-c.Center.Y)/(c.WorldPerCell*c.CellAspect)

	// Guard the int conversion for far-off points
	if fx < -1 || fy < -1 || fx > float64(c.Width)+1 || fy > float64(c.Height)+1 {
		return 0, 0, false
	}
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, c.Contains(x, y)
}
