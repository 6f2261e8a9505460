// Package config assembles the game balance and runtime switches from a YAML
// tuning file, an optional .env file and TANKS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tanks/internal/game"
)

const (
	DefaultPath    = "tanks.yaml"
	DefaultEnvFile = ".env"
	DefaultVolume  = 0.6
)

// Environment variables read by FromEnv.
const (
	EnvConfig = "TANKS_CONFIG"
	EnvSeed   = "TANKS_SEED"
	EnvMute   = "TANKS_MUTE"
	EnvVolume = "TANKS_VOLUME"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Tuning game.Tuning

	Seed    uint64
	HasSeed bool // Seed was set explicitly; otherwise seed from the clock
	Mute    bool
	Volume  float64

	Source string // tuning file actually read, empty when defaults were used
}

// Load overlays the YAML file at path on the default tuning. A missing file is
// not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Config{
		Tuning: game.DefaultTuning(),
		Volume: DefaultVolume,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg.Tuning); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Source = path
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv loads envFile (if present) into the process environment, then the
// tuning file named by TANKS_CONFIG, then the remaining TANKS_* overrides.
func FromEnv(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := Load(os.Getenv(EnvConfig))
	if err != nil {
		return cfg, err
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMute, v, err)
		}
		cfg.Mute = mute
	}
	if v := os.Getenv(EnvVolume); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvVolume, v, err)
		}
		cfg.Volume = vol
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	t := c.Tuning
	switch {
	case t.MaxLevel < 1:
		return fmt.Errorf("%w: max_level %d < 1", ErrInvalid, t.MaxLevel)
	case t.MapWidth < game.ViewWidth || t.MapHeight < game.ViewHeight:
		return fmt.Errorf("%w: map %vx%v smaller than the viewport", ErrInvalid, t.MapWidth, t.MapHeight)
	case t.TileSize <= 0 || t.GridWidth <= 0 || t.GridHeight <= 0:
		return fmt.Errorf("%w: terrain grid %dx%d of %v px tiles", ErrInvalid, t.GridWidth, t.GridHeight, t.TileSize)
	case t.DesertThreshold < 0 || t.CactusThreshold < t.DesertThreshold || t.CactusThreshold > 1:
		return fmt.Errorf("%w: terrain thresholds %v/%v", ErrInvalid, t.DesertThreshold, t.CactusThreshold)
	case t.PlayerSize <= 0 || t.TurretSize <= 0 || t.EnemySize <= 0 || t.PowerupSize <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalid)
	case t.PlayerSpeed <= 0 || t.BulletSpeed <= 0 || t.EnemySpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case t.BulletLifetime <= 0:
		return fmt.Errorf("%w: bullet_lifetime %d", ErrInvalid, t.BulletLifetime)
	case t.PlayerHealth <= 0 || t.TurretHealth <= 0 || t.EnemyHealth <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalid)
	case t.PowerupAttempts < 1:
		return fmt.Errorf("%w: powerup_attempts %d < 1", ErrInvalid, t.PowerupAttempts)
	case 2*t.PowerupMargin >= game.ViewWidth || 2*t.PowerupMargin >= game.ViewHeight:
		return fmt.Errorf("%w: powerup_margin %v leaves no room in the viewport", ErrInvalid, t.PowerupMargin)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume)
	}
	return nil
}
