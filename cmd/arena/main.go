package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/event"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/scripting"
	"github.com/l1jgo/arena/internal/system"
	"github.com/l1jgo/arena/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              ARENA  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       toroidal asteroid simulation        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	str := fmt.Sprint(value)
	dotsLen := max(42-len(label)-len(str), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), str)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main simulation logic ──────────────────────────────────────────

func run() error {
	// 1. Load config
	cfg := config.Default()
	cfgPath := "config/arena.toml"
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	if _, err := os.Stat(cfgPath); err == nil {
		if cfg, err = config.Load(cfgPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Assets and rules
	printSection("assets")
	manifest := data.DefaultManifest()
	if cfg.Assets.Manifest != "" {
		if manifest, err = data.LoadManifest(cfg.Assets.Manifest); err != nil {
			return fmt.Errorf("assets: %w", err)
		}
	}
	printStat("meshes", manifest.MeshCount())

	var rules world.Rules = world.DefaultRules{}
	if cfg.Scripting.Dir != "" {
		engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer engine.Close()
		rules = engine
		printOK("lua rules loaded from " + cfg.Scripting.Dir)
	}
	fmt.Println()

	// 4. World
	printSection("world")
	seed := uint64(cfg.Simulation.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	bus := event.NewBus()
	subscribeLogging(bus, log)

	ws := world.NewGame(world.Options{
		Aspect:   cfg.Arena.Aspect,
		Assets:   manifest,
		Rules:    rules,
		Bus:      bus,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Log:      log,
		Workers:  cfg.Simulation.Workers,
		Cutscene: cfg.Arena.Cutscene,
	})
	size := ws.Size()
	printStat("size", fmt.Sprintf("%.1f x %.1f", size.W, size.H))
	printStat("entities", ws.Registry().Count())
	printStat("seed", seed)
	fmt.Println()

	// 5. Systems
	runner := coresys.NewRunner()
	system.RegisterAll(runner, ws, newAutopilot(cfg.Simulation.TickRate))

	// 6. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Simulation.TickRate)
	defer ticker.Stop()

	printSection("ready")
	printReady(fmt.Sprintf("simulation loop (tick: %s, workers: %d)", cfg.Simulation.TickRate, cfg.Simulation.Workers))
	fmt.Println()

	const reportInterval = 120
	ws.Submit()
	for tick := 1; ; tick++ {
		select {
		case <-ticker.C:
			runner.Tick(ws.Elapsed())
			ws.Submit()

			// Frame snapshot handed to the renderer.
			groups := ws.InstancesGrouped()
			lights := ws.Lights()

			if tick%reportInterval == 0 {
				stats := ws.Stats()
				log.Info("frame",
					zap.Int("tick", tick),
					zap.Int("score", stats.Score),
					zap.Int("asteroids", stats.Asteroids),
					zap.Int("entities", stats.Entities),
					zap.Int("health", stats.Health),
					zap.Int("batches", len(groups)),
					zap.Int("lights", len(lights)))
				for _, run := range ws.EntitiesGroupedByName() {
					log.Debug("entity run", zap.String("name", run.Name), zap.Int("count", run.Count))
				}
			}

			if ws.IsOver() {
				log.Info("game over", zap.Int("tick", tick), zap.Int("score", ws.Score()))
				return nil
			}
			if cfg.Simulation.MaxTicks > 0 && tick >= cfg.Simulation.MaxTicks {
				log.Info("tick limit reached", zap.Int("tick", tick), zap.Int("score", ws.Score()))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()), zap.Int("score", ws.Score()))
			return nil
		}
	}
}

func subscribeLogging(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(ev event.AsteroidSpawned) {
		log.Debug("asteroid incoming", zap.Stringer("pos", ev.Position))
	})
	event.Subscribe(bus, func(ev event.AsteroidSplit) {
		log.Debug("asteroid split", zap.String("name", ev.Name), zap.Int("children", ev.Children))
	})
	event.Subscribe(bus, func(ev event.LaserHit) {
		log.Debug("laser hit", zap.Int("hits", ev.Hits), zap.Int("score", ev.Score))
	})
	event.Subscribe(bus, func(ev event.ShipDamaged) {
		log.Info("ship damaged", zap.Int("damage", ev.Damage), zap.Int("health", ev.Health))
	})
	event.Subscribe(bus, func(ev event.ShipDestroyed) {
		log.Info("ship destroyed", zap.Stringer("pos", ev.Position))
	})
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
