package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/render"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/stream"
	"github.com/tochemey/goakt/v3/actor"
	goaktlog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "configuration file (.json, .toml, .yaml)")
	schemaFile := flag.String("schema", "", "JSON schema used to validate the configuration, embedded one when empty")
	listen := flag.String("listen", "", "serve the websocket snapshot feed on this address, e.g. :8080")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}

	logger, err := simulation.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system, err := actor.NewActorSystem("aquarium", actor.WithLogger(goaktlog.DefaultLogger))
	if err != nil {
		logger.Fatal("failed to create actor system", zap.Error(err))
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatal("failed to start actor system", zap.Error(err))
	}
	defer func() { _ = system.Stop(context.Background()) }()

	var publisher render.Publisher
	if cfg.ListenAddr != "" {
		hub := stream.NewHub(logger)
		publisher = hub
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
				logger.Error("snapshot feed stopped", zap.Error(err))
			}
		}()
	}

	game, err := render.NewGame(ctx, cfg, system, publisher)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	logger.Info("aquarium ready",
		zap.Int("population", cfg.Population()),
		zap.Int("species", len(cfg.Species)),
		zap.Uint64("seed", cfg.Seed),
		zap.String("listen", cfg.ListenAddr))

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Aquarium Boids")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", zap.Error(err))
	}
}
