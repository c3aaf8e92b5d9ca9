package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/core"
	"github.com/lixenwraith/gravity-swarm/engine"
	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/swarm"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

var (
	duration  = flag.Duration("duration", 10*time.Second, "Benchmark duration (ignored when -ticks is set)")
	ticks     = flag.Int("ticks", 0, "Fixed tick count")
	grid      = flag.Int("grid", parameter.SpawnGridWidth, "Spawn grid width (particles = grid²)")
	modeFlag  = flag.String("mode", "swarm", "Attraction mode: swarm|pointer")
	dt        = flag.Duration("dt", parameter.FrameUpdateInterval, "Simulated time per tick")
	attractor = flag.Bool("attractor", true, "Hold a fixed attractor at (100, 0)")
)

func main() {
	flag.Parse()

	mode, err := physics.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swarm-bench: %v\n", err)
		os.Exit(2)
	}

	sim := engine.NewSimulation(
		tuning.NewStore(),
		physics.NewEngine(mode),
		swarm.NewGrid(*grid, parameter.SpawnSpacing),
		status.NewRegistry(),
	)

	a := physics.Attractor{Pos: r2.Vec{X: 100}, Present: *attractor, Engaged: *attractor}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, core.ShutdownSignals()...)

	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	step := dt.Seconds()
	var n int64
	var peak physics.StepStats
	start := time.Now()

loop:
	for {
		if *ticks > 0 {
			if n >= int64(*ticks) {
				break
			}
		} else if time.Since(start) >= *duration {
			break
		}

		select {
		case <-sigCh:
			break loop
		default:
		}

		s := sim.Tick(step, nil, a).Stats
		if s.MaxSpeed > peak.MaxSpeed {
			peak.MaxSpeed = s.MaxSpeed
		}
		peak.AccelClamped += s.AccelClamped
		peak.SpeedCapped += s.SpeedCapped
		peak.NonFinite += s.NonFinite
		n++
	}

	elapsed := time.Since(start)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	n2 := sim.Swarm.Len() * sim.Swarm.Len()
	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Particles:     %d (%s)\n", sim.Swarm.Len(), mode)
	fmt.Printf("  Total Ticks:   %d\n", n)
	fmt.Printf("  Total Time:    %v\n", elapsed)
	if n > 0 {
		fmt.Printf("  Ticks/sec:     %.2f\n", float64(n)/elapsed.Seconds())
		fmt.Printf("  Avg Tick:      %v\n", elapsed/time.Duration(n))
		fmt.Printf("  Pairs/sec:     %.3g\n", float64(n)*float64(n2)/elapsed.Seconds())
		fmt.Printf("  Allocs/tick:   %.2f\n", float64(after.Mallocs-before.Mallocs)/float64(n))
	}
	fmt.Printf("  Peak Speed:    %.2f\n", peak.MaxSpeed)
	fmt.Printf("  Accel Clamps:  %d\n", peak.AccelClamped)
	fmt.Printf("  Speed Caps:    %d\n", peak.SpeedCapped)
	fmt.Printf("  Non-finite:    %d\n", peak.NonFinite)
	fmt.Printf("  Total Alloc:   %d bytes\n", after.TotalAlloc-before.TotalAlloc)
}
