package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/camera"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// gridSurface records the last write per cell
type gridSurface struct {
	w, h  int
	cells []cell
}

func newGridSurface(w, h int) *gridSurface {
	return &gridSurface{w: w, h: h, cells: make([]cell, w*h)}
}

func (g *gridSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{primary, style}
}

func (g *gridSurface) Size() (int, int) { return g.w, g.h }

func (g *gridSurface) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		b.WriteRune(g.cells[y*g.w+x].ch)
	}
	return b.String()
}

func (g *gridSurface) at(x, y int) rune { return g.cells[y*g.w+x].ch }

func TestConstantLines(t *testing.T) {
	s := tuning.NewStore()

	value, keys := ConstantLines(s.Constant(tuning.MaxAcceleration))
	if value != "MaxAcceleration: 4000" {
		t.Errorf("Expected 'MaxAcceleration: 4000', got %q", value)
	}
	if keys != "M to increase, N to decrease" {
		t.Errorf("Expected 'M to increase, N to decrease', got %q", keys)
	}

	s.Set(tuning.InterParticleGravity, -2500.5)
	value, keys = ConstantLines(s.Constant(tuning.InterParticleGravity))
	if value != "InterParticleGravity: -2500.5" {
		t.Errorf("Expected negative value printed, got %q", value)
	}
	if keys != "G to increase, F to decrease" {
		t.Errorf("Expected gravity bindings, got %q", keys)
	}
}

func TestDrawHUD(t *testing.T) {
	surf := newGridSurface(120, 20)
	r := NewRenderer(surf, camera.New(120, 20))

	r.Draw(Frame{
		Tuning: tuning.NewStore(),
		Status: StatusInfo{Mode: "swarm", Particles: 256, Paused: true},
	})

	if !strings.HasPrefix(surf.row(0), "MaxAcceleration: 4000") {
		t.Errorf("Expected first constant at row 0, got %q", surf.row(0))
	}
	if !strings.Contains(surf.row(0), "InterParticleGravity: 400000") {
		t.Errorf("Expected second constant on row 0, got %q", surf.row(0))
	}
	if !strings.Contains(surf.row(1), "G to increase, F to decrease") {
		t.Errorf("Expected gravity bindings on row 1, got %q", surf.row(1))
	}
	if !strings.HasPrefix(surf.row(2), "PAUSED") {
		t.Errorf("Expected paused indicator on status row, got %q", surf.row(2))
	}
}

func TestDrawParticleDensity(t *testing.T) {
	surf := newGridSurface(40, 23)
	cam := camera.New(40, 23)
	cam.WorldPerCell = 1
	cam.CellAspect = 1
	r := NewRenderer(surf, cam)

	// Particles just above-right of the origin land in cell (20, 12); three share it, one sits five cells right
	r.Draw(Frame{Particles: physics.Positions{
		{X: 0.1, Y: 0.1},
		{X: 0.2, Y: 0.2},
		{X: 0.3, Y: 0.3},
		{X: 5.1, Y: 0.1},
		{X: 1e6, Y: 0},
	}})

	if got := surf.at(20, 12); got != 'o' {
		t.Errorf("Expected 'o' for three particles, got %q", got)
	}
	if got := surf.at(25, 12); got != '.' {
		t.Errorf("Expected '.' for one particle, got %q", got)
	}
}

func TestDrawPointer(t *testing.T) {
	surf := newGridSurface(40, 20)
	r := NewRenderer(surf, camera.New(40, 20))

	r.Draw(Frame{PointerX: 5, PointerY: 10, PointerValid: true})
	if got := surf.at(5, 10); got != '+' {
		t.Errorf("Expected pointer marker, got %q", got)
	}

	r.Draw(Frame{PointerX: 5, PointerY: 1, PointerValid: true})
	if got := surf.at(5, 1); got == '+' {
		t.Error("Expected no pointer marker inside HUD rows")
	}
}

func TestDrawResizesCamera(t *testing.T) {
	surf := newGridSurface(50, 30)
	cam := camera.New(10, 10)
	NewRenderer(surf, cam).Draw(Frame{Particles: physics.Positions{r2.Vec{}}})

	if cam.Width != 50 || cam.Height != 30 {
		t.Errorf("Expected camera resized to 50x30, got %dx%d", cam.Width, cam.Height)
	}
}

func TestDensityRampSaturates(t *testing.T) {
	g, _ := densityCell(1000)
	last := densityRamp[len(densityRamp)-1].glyph
	if g != last {
		t.Errorf("Expected saturation glyph %q, got %q", last, g)
	}
}
