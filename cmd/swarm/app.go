package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-swarm/audio"
	"github.com/lixenwraith/gravity-swarm/camera"
	"github.com/lixenwraith/gravity-swarm/config"
	"github.com/lixenwraith/gravity-swarm/core"
	"github.com/lixenwraith/gravity-swarm/engine"
	"github.com/lixenwraith/gravity-swarm/input"
	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/render"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

const zoomStep = 1.25

// app is the interactive front-end: one event goroutine feeding the main loop, which owns all state
type app struct {
	cfg    *config.Config
	screen tcell.Screen

	sim      *engine.Simulation
	clock    *engine.Clock
	cam      *camera.Camera
	renderer *render.Renderer
	player   *audio.Player

	keys    *input.KeyTable
	held    *input.Tracker
	heldSet input.KeySet
	pointer input.Pointer

	lastFrame time.Time
	fps       float64
}

func newApp(screen tcell.Screen, cfg *config.Config, sim *engine.Simulation, player *audio.Player, clock *engine.Clock) *app {
	w, h := screen.Size()
	cam := camera.New(w, h)
	cam.WorldPerCell = cfg.Simulation.WorldPerCell

	a := &app{
		cfg:      cfg,
		screen:   screen,
		sim:      sim,
		clock:    clock,
		cam:      cam,
		renderer: render.NewRenderer(screen, cam),
		player:   player,
		keys:     input.DefaultKeyTable(),
		held:     input.NewTracker(parameter.KeyRepeatDelay, parameter.KeyRepeatGap),
		heldSet:  make(input.KeySet),
	}

	// Tunable bindings win over action keys
	sim.Tuning.Each(func(c tuning.Constant) {
		for _, r := range a.keys.Unbind(c.Increase, c.Decrease) {
			log.Printf("input: %q bound to %s, action binding dropped", r, c.ID)
		}
	})
	return a
}

// run drives the loop until quit; the screen must already be initialized
func (a *app) run() {
	events := make(chan tcell.Event, parameter.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.cfg.Tick())
	defer ticker.Stop()

	a.lastFrame = time.Now()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.frame(now)
			a.screen.Show()
		}
	}
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, r := a.keys.Classify(ev.Key(), ev.Rune())
		if r != 0 {
			a.held.Press(r, now)
			return true
		}
		return a.handleAction(action)

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointer.UpdateMouse(x, y, ev.Buttons())

	case *tcell.EventFocus:
		if !ev.Focused {
			a.pointer.Invalidate()
			a.held.Clear()
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.cam.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

func (a *app) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionPause:
		paused := a.clock.TogglePause()
		a.sim.SetPaused(paused)
		if paused {
			a.held.Clear()
		}
	case input.ActionReset:
		a.sim.ResetConstants()
	case input.ActionZoomIn:
		a.cam.Zoom(1 / zoomStep)
	case input.ActionZoomOut:
		a.cam.Zoom(zoomStep)
	case input.ActionRecenter:
		a.cam.Center = a.sim.Swarm.Centroid()
	case input.ActionToggleMode:
		if a.sim.Physics.Mode == physics.ModeSwarm {
			a.sim.SetMode(physics.ModePointer)
		} else {
			a.sim.SetMode(physics.ModeSwarm)
		}
	case input.ActionToggleMute:
		log.Printf("audio: enabled=%v", a.player.ToggleMute())
	}
	return true
}

// attractor projects the pointer into world space; outside the viewport it is absent
func (a *app) attractor() physics.Attractor {
	if !a.pointer.Valid {
		return physics.Attractor{}
	}
	pos, ok := a.cam.ScreenToWorld(a.pointer.X, a.pointer.Y)
	return physics.Attractor{Pos: pos, Present: ok, Engaged: a.pointer.Engaged}
}

// frame runs one tick unless paused, then draws
func (a *app) frame(now time.Time) {
	if elapsed := now.Sub(a.lastFrame).Seconds(); elapsed > 0 {
		inst := 1 / elapsed
		if a.fps == 0 {
			a.fps = inst
		} else {
			a.fps = 0.9*a.fps + 0.1*inst
		}
	}
	a.lastFrame = now

	dt := a.clock.Step()
	if !a.clock.IsPaused() {
		a.heldSet = a.held.Snapshot(now, a.heldSet)
		res := a.sim.Tick(dt, a.heldSet, a.attractor())
		a.player.Cue(res.Adjustments, now)
	}

	a.renderer.Draw(a.buildFrame())
}

func (a *app) buildFrame() render.Frame {
	reg := a.sim.Status
	return render.Frame{
		Particles: a.sim.Swarm,
		Tuning:    a.sim.Tuning,
		Status: render.StatusInfo{
			Mode:      a.sim.Physics.Mode.String(),
			Particles: a.sim.Swarm.Len(),
			Paused:    a.clock.IsPaused(),
			Audio:     a.player.Enabled(),
			FPS:       a.fps,
			MaxSpeed:  reg.Floats.Get(status.KeyMaxSpeed).Get(),
			Clamped:   reg.Ints.Get(status.KeyAccelClamped).Load(),
			Zoom:      parameter.CameraWorldPerCell / a.cam.WorldPerCell,
		},
		PointerX:       a.pointer.X,
		PointerY:       a.pointer.Y,
		PointerValid:   a.pointer.Valid,
		PointerEngaged: a.pointer.Engaged,
	}
}
