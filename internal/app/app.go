// Package app holds the start-up shared by the desktop and terminal binaries.
package app

import (
	"log"
	"time"

	"tanks/internal/config"
	"tanks/internal/game"
)

// NewSession loads configuration from the environment and builds a session
// seeded from TANKS_SEED or the clock. Lifecycle events are logged.
func NewSession(envFile string) (*game.Session, config.Config, error) {
	cfg, err := config.FromEnv(envFile)
	if err != nil {
		return nil, config.Config{}, err
	}
	if cfg.Source != "" {
		log.Printf("tuning loaded from %s", cfg.Source)
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.HasSeed {
		seed = cfg.Seed
	}
	log.Printf("seed %d", seed)

	bus := game.NewEventBus()
	LogLifecycle(bus)
	return game.NewSession(cfg.Tuning, game.NewRand(seed), game.SystemClock{}, bus), cfg, nil
}

// LogLifecycle writes level and wave transitions to the standard logger.
func LogLifecycle(bus *game.EventBus) {
	bus.Subscribe(game.EventLevelStarted, func(e game.Event) {
		log.Printf("level %d started", e.Data)
	})
	bus.Subscribe(game.EventWaveStarted, func(e game.Event) {
		log.Printf("wave %d incoming", e.Data)
	})
	bus.Subscribe(game.EventLevelComplete, func(e game.Event) {
		log.Printf("level %d complete", e.Data)
	})
	bus.Subscribe(game.EventGameComplete, func(e game.Event) {
		log.Printf("all levels complete, final score %d", e.Data)
	})
	bus.Subscribe(game.EventGameOver, func(e game.Event) {
		log.Printf("game over, final score %d", e.Data)
	})
}
