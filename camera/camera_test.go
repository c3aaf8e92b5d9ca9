package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestScreenToWorldCentre(t *testing.T) {
	c := New(80, 27) // viewport rows 3..26, centre row 15
	c.WorldPerCell = 2
	c.CellAspect = 2

	p, ok := c.ScreenToWorld(40, 15)
	if !ok {
		t.Fatal("Expected centre cell inside viewport")
	}
	if p != (r2.Vec{X: 1, Y: -2}) {
		t.Errorf("Expected (1, -2) for centre cell, got %v", p)
	}

	// Up the screen is up in the world
	above, _ := c.ScreenToWorld(40, 10)
	if above.Y <= p.Y {
		t.Errorf("Expected higher row to map to larger world Y, got %v vs %v", above, p)
	}
}

func TestScreenToWorldOutside(t *testing.T) {
	c := New(80, 24)
	cases := [][2]int{{-1, 10}, {80, 10}, {10, 0}, {10, 2}, {10, 24}}
	for _, tc := range cases {
		if _, ok := c.ScreenToWorld(tc[0], tc[1]); ok {
			t.Errorf("Expected cell %v outside viewport", tc)
		}
	}
	if _, ok := c.ScreenToWorld(10, 3); !ok {
		t.Error("Expected first row below HUD inside viewport")
	}
}

func TestRoundTrip(t *testing.T) {
	c := New(120, 40)
	c.Center = r2.Vec{X: 13.7, Y: -250}

	for y := c.HUDRows; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p, ok := c.ScreenToWorld(x, y)
			if !ok {
				t.Fatalf("Expected (%d, %d) inside", x, y)
			}
			gx, gy, ok := c.WorldToScreen(p)
			if !ok || gx != x || gy != y {
				t.Fatalf("Round trip (%d, %d) -> %v -> (%d, %d, %v)", x, y, p, gx, gy, ok)
			}
		}
	}
}

func TestWorldToScreenRejects(t *testing.T) {
	c := New(80, 24)
	if _, _, ok := c.WorldToScreen(r2.Vec{X: math.NaN()}); ok {
		t.Error("Expected NaN point rejected")
	}
	if _, _, ok := c.WorldToScreen(r2.Vec{X: 1e300}); ok {
		t.Error("Expected far point rejected")
	}
}

func TestZoomBounds(t *testing.T) {
	c := New(80, 24)
	c.Zoom(2)
	if c.WorldPerCell != 8 {
		t.Errorf("Expected 8 world units per cell, got %f", c.WorldPerCell)
	}
	c.Zoom(0)
	c.Zoom(-3)
	if c.WorldPerCell != 8 {
		t.Errorf("Expected invalid zoom ignored, got %f", c.WorldPerCell)
	}
	c.Zoom(1e-9)
	if c.WorldPerCell != minWorldPerCell {
		t.Errorf("Expected clamp to %f, got %f", minWorldPerCell, c.WorldPerCell)
	}
}
