package input

import "github.com/gdamore/tcell/v2"

// Pointer is the last known mouse state in cell coordinates
type Pointer struct {
	X, Y    int
	Valid   bool // a mouse event has been seen and focus was not lost since
	Engaged bool // primary button held
}

// UpdateMouse records a mouse event
func (p *Pointer) UpdateMouse(x, y int, buttons tcell.ButtonMask) {
	p.X, p.Y = x, y
	p.Valid = true
	p.Engaged = buttons&tcell.Button1 != 0
}

// Invalidate marks the pointer absent, e.g. on focus loss
func (p *Pointer) Invalidate() {
	p.Valid = false
	p.Engaged = false
}
