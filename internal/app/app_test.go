package app

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"tanks/internal/config"
	"tanks/internal/game"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestLogLifecycle(t *testing.T) {
	buf := captureLog(t)
	bus := game.NewEventBus()
	LogLifecycle(bus)

	bus.Emit(game.Event{Type: game.EventLevelStarted, Data: 2})
	bus.Emit(game.Event{Type: game.EventWaveStarted, Data: 3})
	bus.Emit(game.Event{Type: game.EventShot})
	bus.Emit(game.Event{Type: game.EventGameOver, Data: 450})

	want := "level 2 started\nwave 3 incoming\ngame over, final score 450\n"
	if got := buf.String(); got != want {
		t.Fatalf("log = %q, want %q", got, want)
	}
}

func TestNewSessionSeeded(t *testing.T) {
	captureLog(t)
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv(config.EnvSeed, "42")

	a, _, err := NewSession(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, cfg, err := NewSession(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !cfg.HasSeed || cfg.Seed != 42 {
		t.Fatalf("seed = %d (set %v), want 42", cfg.Seed, cfg.HasSeed)
	}

	a.Start()
	b.Start()
	if len(a.Turrets) != len(b.Turrets) {
		t.Fatalf("turret counts differ: %d vs %d", len(a.Turrets), len(b.Turrets))
	}
	for i := range a.Turrets {
		if a.Turrets[i].X != b.Turrets[i].X || a.Turrets[i].Y != b.Turrets[i].Y {
			t.Fatalf("turret %d differs between equally seeded sessions", i)
		}
	}
}

func TestNewSessionBadEnv(t *testing.T) {
	buf := captureLog(t)
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv(config.EnvSeed, "not-a-number")

	if _, _, err := NewSession(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for a malformed seed")
	}
	if strings.Contains(buf.String(), "seed") {
		t.Fatalf("nothing should be logged on failure, got %q", buf.String())
	}
}
