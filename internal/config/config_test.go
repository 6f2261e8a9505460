package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tanks/internal/game"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tuning != game.DefaultTuning() {
		t.Fatalf("tuning differs from defaults")
	}
	if cfg.Source != "" || cfg.Volume != DefaultVolume {
		t.Fatalf("source %q volume %v", cfg.Source, cfg.Volume)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "tanks.yaml", `
max_level: 3
turret_fire_rate: 1500ms
wave_delay: 5s
player_speed: 4.5
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tu := cfg.Tuning
	if tu.MaxLevel != 3 || tu.TurretFireRate != 1500*time.Millisecond || tu.WaveDelay != 5*time.Second || tu.PlayerSpeed != 4.5 {
		t.Fatalf("overlay not applied: %+v", tu)
	}
	if tu.StartAP != 10 || tu.MapWidth != 1600 {
		t.Fatalf("unset fields lost their defaults: ap %d map %v", tu.StartAP, tu.MapWidth)
	}
	if cfg.Source != p {
		t.Fatalf("source = %q, want %q", cfg.Source, p)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"levels":  "max_level: 0\n",
		"tile":    "tile_size: 0\n",
		"terrain": "desert_threshold: 0.9\ncactus_threshold: 0.5\n",
		"speed":   "bullet_speed: -1\n",
		"margin":  "powerup_margin: 300\n",
	}
	for name, body := range cases {
		p := writeFile(t, dir, name+".yaml", body)
		if _, err := Load(p); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", name, err)
		}
	}
}

func TestLoadBadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.yaml", "max_level: [1, 2\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Fatalf("parse error reported as validation error: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "t.yaml", "start_he: 7\n")
	t.Setenv(EnvConfig, p)
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvVolume, "0.25")

	cfg, err := FromEnv(filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Tuning.StartHE != 7 || !cfg.HasSeed || cfg.Seed != 1234 || !cfg.Mute || cfg.Volume != 0.25 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestFromEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "TANKS_SEED=99\n")
	t.Cleanup(func() { os.Unsetenv(EnvSeed) })
	t.Setenv(EnvConfig, filepath.Join(dir, "none.yaml"))

	cfg, err := FromEnv(envFile)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if !cfg.HasSeed || cfg.Seed != 99 {
		t.Fatalf("seed %d (set %v), want 99", cfg.Seed, cfg.HasSeed)
	}
}

func TestFromEnvBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfig, filepath.Join(dir, "none.yaml"))
	cases := []struct{ key, val string }{
		{EnvSeed, "-4"},
		{EnvMute, "maybe"},
		{EnvVolume, "2"},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			t.Setenv(c.key, c.val)
			if _, err := FromEnv(filepath.Join(dir, "missing.env")); !errors.Is(err, ErrInvalid) {
				t.Fatalf("%s=%s: err = %v, want ErrInvalid", c.key, c.val, err)
			}
		})
	}
}
