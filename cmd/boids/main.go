// Command boids runs the aquarium without a window and checks, after every
// tick, that no boid exceeds its speed or leaves its containment box.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/simulation"
	"go.uber.org/zap"
)

type school struct {
	flock    *behavior.Flock
	trackers []*simulation.Extents
	handles  []behavior.Drawable
}

func main() {
	configFile := flag.String("config", "", "configuration file (.json, .toml, .yaml)")
	schemaFile := flag.String("schema", "", "JSON schema used to validate the configuration, embedded one when empty")
	ticks := flag.Int("ticks", 1000, "number of ticks to simulate")
	report := flag.Int("report", 100, "log statistics every n ticks, 0 disables")
	seed := flag.Uint64("seed", 0, "overrides the configured seed when not 0")
	workers := flag.Int("workers", 0, "overrides the configured force phase workers when not 0")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}

	logger, err := simulation.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	os.Exit(run(logger, cfg, *ticks, *report))
}

func run(logger *zap.Logger, cfg *simulation.Config, ticks, report int) int {
	var schools []school
	for _, f := range simulation.BuildSchools(cfg) {
		trackers, handles := simulation.NewExtentTrackers(f.Len())
		schools = append(schools, school{flock: f, trackers: trackers, handles: handles})
	}
	logger.Info("simulation starting",
		zap.Int("ticks", ticks),
		zap.Int("population", cfg.Population()),
		zap.Int("workers", cfg.Workers),
		zap.Uint64("seed", cfg.Seed))

	start := time.Now()
	for tick := 1; tick <= ticks; tick++ {
		for _, s := range schools {
			s.flock.Step()
			s.flock.Present(s.handles)
			if err := simulation.CheckInvariants(s.flock); err != nil {
				logger.Error("invariant violated", zap.Int("tick", tick), zap.Error(err))
				return 1
			}
		}
		if report > 0 && tick%report == 0 {
			for _, s := range schools {
				logger.Info("tick",
					zap.Int("tick", tick),
					zap.Object("school", simulation.Measure(s.flock.Name, s.flock.Agents)))
			}
		}
	}

	elapsed := time.Since(start)
	for _, s := range schools {
		lo, hi := simulation.Reach(s.trackers)
		logger.Info("school summary",
			zap.Object("school", simulation.Measure(s.flock.Name, s.flock.Agents)),
			zap.Stringer("reachMin", lo),
			zap.Stringer("reachMax", hi))
	}
	logger.Info("simulation finished",
		zap.Int("ticks", ticks),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ticksPerSecond", float64(ticks)/elapsed.Seconds()))
	return 0
}
