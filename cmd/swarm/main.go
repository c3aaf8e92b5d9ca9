package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/gravity-swarm/audio"
	"github.com/lixenwraith/gravity-swarm/config"
	"github.com/lixenwraith/gravity-swarm/core"
	"github.com/lixenwraith/gravity-swarm/engine"
	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/swarm"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

type options struct {
	configPath string
	mode       string
	debug      bool
	noAudio    bool
	dumpConfig bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("swarm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.mode, "mode", "", "Attraction mode: swarm|pointer (overrides config)")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/swarm.log")
	fs.BoolVar(&opts.noAudio, "no-audio", false, "Disable adjustment cues")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective config as TOML and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer closeLog(logFile)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Printf("swarm: %v", err)
		fmt.Fprintf(stderr, "swarm: %v\n", err)
		return 2
	}

	consts, err := cfg.Constants()
	if err != nil {
		log.Printf("swarm: %v", err)
		fmt.Fprintf(stderr, "swarm: %v\n", err)
		return 2
	}
	store := tuning.NewStore(consts...)

	if opts.dumpConfig {
		if err := cfg.Dump(stdout, store); err != nil {
			fmt.Fprintf(stderr, "swarm: %v\n", err)
			return 1
		}
		return 0
	}

	reg := status.NewRegistry()
	sim := engine.NewSimulation(
		store,
		physics.NewEngine(cfg.Mode()),
		swarm.NewGrid(cfg.Simulation.Grid, cfg.Simulation.Spacing),
		reg,
	)
	log.Printf("swarm: %d particles, mode %s", sim.Swarm.Len(), cfg.Mode())

	if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		runHeadless(cfg, sim, stdout, stderr)
		return 0
	}

	if err := runInteractive(cfg, sim, reg); err != nil {
		log.Printf("swarm: %v", err)
		fmt.Fprintf(stderr, "swarm: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.mode != "" {
		cfg.Simulation.Mode = opts.mode
	}
	if opts.noAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cfg *config.Config, sim *engine.Simulation, reg *status.Registry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.HandleCrash(recover())
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	player := audio.Open(cfg.AudioConfig(), reg)
	defer player.Close()

	clock := engine.NewClock(engine.SystemTime{}, parameter.MaxTickDelta)
	newApp(screen, cfg, sim, player, clock).run()
	return nil
}

// runHeadless ticks without input or drawing until a shutdown signal, printing a status line each second
func runHeadless(cfg *config.Config, sim *engine.Simulation, stdout, stderr io.Writer) {
	fmt.Fprintln(stderr, "swarm: stdout is not a terminal, running headless (Ctrl+C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, core.ShutdownSignals()...)
	defer signal.Stop(sigCh)

	clock := engine.NewClock(engine.SystemTime{}, parameter.MaxTickDelta)
	ticker := time.NewTicker(cfg.Tick())
	defer ticker.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	var last physics.StepStats
	for {
		select {
		case sig := <-sigCh:
			log.Printf("swarm: %v, stopping after %d ticks", sig, sim.Status.Ticks())
			return
		case <-ticker.C:
			last = sim.Tick(clock.Step(), nil, physics.Attractor{}).Stats
		case <-report.C:
			c := sim.Swarm.Centroid()
			fmt.Fprintf(stdout, "t=%v ticks=%d maxspeed=%.1f clamped=%d centroid=(%.2f,%.2f)\n",
				clock.Elapsed().Round(time.Millisecond), sim.Status.Ticks(), last.MaxSpeed, last.AccelClamped, c.X, c.Y)
		}
	}
}
