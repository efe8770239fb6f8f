package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/pkg/profile"

	"github.com/sondersim/sonder/config"
	"github.com/sondersim/sonder/data"
	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/event"
	"github.com/sondersim/sonder/species"
	"github.com/sondersim/sonder/system"
	"github.com/sondersim/sonder/ui"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	widthFlag    = flag.Int("width", 0, "World width")
	heightFlag   = flag.Int("height", 0, "World height")
	rateFlag     = flag.Float64("rate", 0, "Target tick rate (ticks/second)")
	ticksFlag    = flag.Uint64("ticks", 0, "Number of ticks to run (0 for unbounded)")
	entitiesFlag = flag.Int("entities", -1, "Starting number of entities")
	dbFlag       = flag.String("db", "", "Database file path")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 uses config value)")
	modeFlag     = flag.String("mode", "observer", "Run mode: observer, interactive, headless")
	debugFlag    = flag.Bool("debug", false, "Enable debug logging")
	profileFlag  = flag.Bool("profile", false, "Enable CPU profiling")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(cfg, *modeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.WorldWidth = *widthFlag
		case "height":
			cfg.WorldHeight = *heightFlag
		case "rate":
			cfg.TickRate = *rateFlag
		case "ticks":
			cfg.MaxTicks = *ticksFlag
		case "entities":
			cfg.StartEntities = *entitiesFlag
		case "db":
			cfg.DatabasePath = *dbFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

func run(cfg config.Config, mode string) error {
	headless := mode == "headless"
	logger := newLogger(cfg.Debug, headless)

	store, err := data.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	world, err := engine.NewWorld(cfg.WorldWidth, cfg.WorldHeight)
	if err != nil {
		return err
	}

	queue := event.NewQueue()
	world.State.SetEventQueue(queue)

	loop, err := engine.NewGameLoop(world, cfg.TickRate, engine.NewTimeProvider())
	if err != nil {
		return err
	}
	loop.AddSystem(system.NewMovementSystem())
	loop.AddSystem(system.NewEvolutionSystem())
	loop.AddSystem(system.NewTelemetrySystem())

	recorder := data.NewRecorder(store, queue, logger)
	loop.AddObserver(recorder.Observe)

	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := spawnPopulation(world, store, logger, rng, cfg.StartEntities); err != nil {
		return err
	}

	logger.Info("simulation starting",
		"mode", mode,
		"world", fmt.Sprintf("%dx%d", cfg.WorldWidth, cfg.WorldHeight),
		"tick_rate", cfg.TickRate,
		"entities", cfg.StartEntities,
		"database", cfg.DatabasePath,
	)

	if headless {
		return runHeadless(loop, cfg.MaxTicks, logger)
	}
	return runTerminal(loop, world, store, cfg.MaxTicks, mode == "interactive")
}

// entityRegistry builds the species registry passed into spawning
func entityRegistry(rng *rand.Rand) *entity.Registry {
	registry := entity.NewRegistry()
	species.RegisterDefaults(registry, rng)
	return registry
}

// spawnPopulation places the starting creatures at random positions
func spawnPopulation(world *engine.World, store *data.Store, logger *slog.Logger, rng *rand.Rand, count int) error {
	registry := entityRegistry(rng)

	for i := 0; i < count; i++ {
		e, err := registry.Create("frog", rng.Intn(world.Width), rng.Intn(world.Height))
		if err != nil {
			return err
		}
		world.State.AddEntity(e)
		world.State.PushEvent(event.GameEvent{
			Type:     event.TypeSpawn,
			EntityID: e.ID,
			X:        e.X,
			Y:        e.Y,
		})
		if err := store.LogEntitySpawn(e.ID, "frog", e.X, e.Y); err != nil {
			logger.Warn("spawn write failed", "entity", e.ID, "error", err)
		}
	}
	return nil
}

func runHeadless(loop *engine.GameLoop, maxTicks uint64, logger *slog.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("interrupt received, stopping at tick boundary")
		loop.Stop()
	}()

	loop.Start(maxTicks)
	logger.Info("simulation stopped", "ticks", loop.World().State.TickCount())
	return nil
}

func runTerminal(loop *engine.GameLoop, world *engine.World, store *data.Store, maxTicks uint64, interactive bool) error {
	view, err := ui.NewView(loop)
	if err != nil {
		return err
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			view.Fini()
			fmt.Fprintf(os.Stderr, "\nsonder crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer view.Fini()

	if interactive {
		player := species.NewPlayerFrog(world.Width/2, world.Height/2)
		world.State.AddEntity(player)
		world.State.PushEvent(event.GameEvent{
			Type:     event.TypeSpawn,
			EntityID: player.ID,
			X:        player.X,
			Y:        player.Y,
		})
		if err := store.LogEntitySpawn(player.ID, "frog", player.X, player.Y); err != nil {
			slog.Warn("spawn write failed", "entity", player.ID, "error", err)
		}
		view.BindPlayer(player)
	}

	loop.AddObserver(view.Observe)

	go func() {
		loop.Start(maxTicks)
		view.Interrupt()
	}()

	view.Run()
	loop.Stop()
	return nil
}

// newLogger builds the slog handler: stderr when headless, a log file
// otherwise so output does not fight the tcell screen
func newLogger(debugMode, headless bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if !headless {
		f, err := os.OpenFile("sonder.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = f
		} else {
			out = io.Discard
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
