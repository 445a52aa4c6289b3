package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
	"github.com/pthm-cable/bigfish/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "window", "Front-end: window, terminal, or headless")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster runs)")
	autopilot := flag.Bool("autopilot", false, "Steer toward the nearest fish automatically")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stdout")

	flag.Parse()

	if err := run(runArgs{
		configPath:     *configPath,
		mode:           *mode,
		logStats:       *logStats,
		statsWindow:    *statsWindow,
		outputDir:      *outputDir,
		seed:           *seed,
		maxTicks:       int32(*maxTicks),
		stepsPerUpdate: *stepsPerUpdate,
		autopilot:      *autopilot,
		logLevel:       *logLevel,
		logFile:        *logFile,
	}); err != nil {
		slog.Error("exiting", "error", err)
		fmt.Fprintln(os.Stderr, "bigfish:", err)
		os.Exit(1)
	}
}

type runArgs struct {
	configPath     string
	mode           string
	logStats       bool
	statsWindow    float64
	outputDir      string
	seed           int64
	maxTicks       int32
	stepsPerUpdate int
	autopilot      bool
	logLevel       string
	logFile        string
}

func run(args runArgs) error {
	// The terminal owns stdout while it draws
	if args.mode == "terminal" && args.logFile == "" {
		args.logFile = "bigfish.log"
	}
	closeLog, err := setupLogging(args.logLevel, args.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Initialize config before anything else
	if err := config.Init(args.configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	rngSeed := args.seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.NewGame(cfg, game.Options{
		Seed:           rngSeed,
		LogStats:       args.logStats,
		StatsWindowSec: args.statsWindow,
		OutputDir:      args.outputDir,
		StepsPerUpdate: args.stepsPerUpdate,
		Autopilot:      args.autopilot,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("closing game", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting simulation",
		"mode", args.mode,
		"seed", rngSeed,
		"max_ticks", args.maxTicks,
		"steps_per_update", args.stepsPerUpdate,
		"autopilot", args.autopilot,
	)

	switch args.mode {
	case "headless":
		runHeadless(ctx, g, args.maxTicks)
		return nil
	case "terminal":
		return runTerminal(ctx, g, args.maxTicks)
	case "window":
		runWindow(cfg, g, args.maxTicks)
		return nil
	default:
		return fmt.Errorf("unknown mode %q", args.mode)
	}
}

// setupLogging installs a JSON slog handler at the given level. The returned
// func closes the log file, if one was opened.
func setupLogging(level, path string) (func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var w io.Writer = os.Stdout
	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	return closer, nil
}

// runHeadless steps the simulation as fast as possible; no raylib needed.
func runHeadless(ctx context.Context, g *game.Game, maxTicks int32) {
	for ctx.Err() == nil {
		// Faults are logged by Step; the run continues
		_ = g.Update()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "score", g.Score())
			return
		}
	}
	slog.Info("interrupted", "tick", g.Tick(), "score", g.Score())
}

func runTerminal(ctx context.Context, g *game.Game, maxTicks int32) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()

	return terminal.Run(ctx, screen, g, maxTicks)
}
