package game

import (
	"fmt"
	"time"
)

type GameState int

const (
	StateNotRunning    GameState = iota
	StateRunning                 // main gameplay
	StateLevelComplete           // all turrets destroyed, next level available
	StateGameComplete            // final level cleared
	StateGameOver                // player destroyed
)

func (s GameState) String() string {
	switch s {
	case StateNotRunning:
		return "not-running"
	case StateRunning:
		return "running"
	case StateLevelComplete:
		return "level-complete"
	case StateGameComplete:
		return "game-complete"
	case StateGameOver:
		return "game-over"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session owns the whole simulation: every entity collection, the terrain,
// the camera and the progression counters. One goroutine drives it.
type Session struct {
	Tuning Tuning
	State  GameState

	Score          int
	Level          int
	Wave           int
	NextWaveTime   time.Time
	WaveInProgress bool
	Ticks          uint64

	Player    Player
	Terrain   *TerrainGrid
	Camera    Camera
	Bullets   []Bullet
	Turrets   []Turret
	Enemies   []EnemyTank
	Powerups  []Powerup
	Particles *ParticleSystem

	Events *EventBus

	rng     Source
	clock   Clock
	now     time.Time // cached once per tick
	running bool
	stop    bool
}

// NewSession wires a session to its randomness, time and event sink.
// Nil arguments fall back to the system clock, a clock-seeded Rand and a
// private bus.
func NewSession(t Tuning, rng Source, clock Clock, events *EventBus) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = NewRand(uint64(clock.Now().UnixNano()))
	}
	if events == nil {
		events = NewEventBus()
	}
	return &Session{
		Tuning:    t,
		State:     StateNotRunning,
		Level:     1,
		Camera:    Camera{W: ViewWidth, H: ViewHeight},
		Particles: NewParticleSystem(MaxParticles),
		Events:    events,
		rng:       rng,
		clock:     clock,
	}
}

// Start begins a fresh game at level 1 and enters Running.
func (s *Session) Start() {
	s.now = s.clock.Now()
	s.Level = 1
	s.Score = 0
	s.Ticks = 0
	s.Particles.Clear()
	s.startLevel()
	s.running = true
	s.stop = false
	s.State = StateRunning
	s.Events.Emit(Event{Type: EventScoreChanged, Data: s.Score})
}

// Stop halts the loop at the next tick boundary.
func (s *Session) Stop() {
	s.stop = true
}

func (s *Session) Running() bool {
	return s.running
}

// Advance moves from LevelComplete to the next level. It reports false and
// changes nothing in any other state, including after the final level.
func (s *Session) Advance() bool {
	if !s.running || s.State != StateLevelComplete || s.Level >= s.Tuning.MaxLevel {
		return false
	}
	s.now = s.clock.Now()
	s.Level++
	s.startLevel()
	s.State = StateRunning
	return true
}

// startLevel resets everything level-scoped. Particles are left to decay.
func (s *Session) startLevel() {
	t := &s.Tuning

	s.Bullets = s.Bullets[:0]
	s.Turrets = s.Turrets[:0]
	s.Enemies = s.Enemies[:0]
	s.Powerups = s.Powerups[:0]

	s.Player = Player{
		X:     t.MapWidth / 2,
		Y:     t.MapHeight / 2,
		W:     t.PlayerSize,
		H:     t.PlayerSize,
		Speed: t.PlayerSpeed,
		HP:    NewHealth(t.PlayerHealth),
	}
	s.Player.Ammo[AmmoAP] = t.StartAP
	s.Player.Ammo[AmmoHE] = t.StartHE
	s.Player.CurrentAmmo = AmmoAP

	s.Terrain = GenerateTerrain(t.GridWidth, t.GridHeight, t.TileSize, t.DesertThreshold, t.CactusThreshold, s.rng)
	// Never start the player inside water.
	tx, ty := s.Terrain.TileAt(s.Player.X, s.Player.Y)
	s.Terrain.Set(tx, ty, TerrainDesert)

	s.Camera.Follow(s.Player.X, s.Player.Y, t.MapWidth, t.MapHeight)
	s.spawnTurrets(t.TurretCount(s.Level), s.Level)

	s.Wave = 0
	s.WaveInProgress = false
	s.NextWaveTime = s.now.Add(t.FirstWaveDelay)

	s.Events.Emit(Event{Type: EventLevelStarted, Data: s.Level})
	s.emitHealth()
	s.emitAmmo(AmmoAP)
	s.emitAmmo(AmmoHE)
}

// Tick runs one fixed logical step.
func (s *Session) Tick(in Input) {
	if s.stop {
		s.stop = false
		s.running = false
		s.State = StateNotRunning
	}
	if !s.running {
		return
	}
	s.now = s.clock.Now()

	switch s.State {
	case StateRunning:
	case StateLevelComplete, StateGameComplete:
		s.Particles.Update()
		return
	default:
		return
	}
	s.Ticks++

	s.Player.Angle = in.Aim
	if in.FirePrimary {
		s.Fire(AmmoAP)
	}
	if in.FireSecondary {
		s.Fire(AmmoHE)
	}

	if !s.WaveInProgress && !s.now.Before(s.NextWaveTime) {
		s.spawnWave()
	}

	s.updatePlayer(in)
	s.Camera.Follow(s.Player.X, s.Player.Y, s.Tuning.MapWidth, s.Tuning.MapHeight)
	s.updateBullets()
	s.updateTurrets()
	s.updateEnemies()
	s.Particles.Update()
	s.updatePowerups()
	s.checkAmmoLevels()
	s.resolveCollisions()
	s.checkWaveComplete()
	s.checkTerminal()
}

func (s *Session) checkWaveComplete() {
	if s.WaveInProgress && len(s.Enemies) == 0 {
		s.WaveInProgress = false
		s.NextWaveTime = s.now.Add(s.Tuning.WaveDelay)
	}
}

func (s *Session) checkTerminal() {
	if s.Player.HP.IsDead() {
		s.State = StateGameOver
		s.Events.Emit(Event{Type: EventGameOver, X: s.Player.X, Y: s.Player.Y, Sound: SoundGameOver, Data: s.Score})
		return
	}
	if len(s.Turrets) > 0 || s.State != StateRunning {
		return
	}
	if s.Level >= s.Tuning.MaxLevel {
		s.State = StateGameComplete
		s.Events.Emit(Event{Type: EventGameComplete, Sound: SoundLevelUp, Data: s.Score})
		return
	}
	s.State = StateLevelComplete
	s.Events.Emit(Event{Type: EventLevelComplete, Sound: SoundLevelUp, Data: s.Level})
}

func (s *Session) addScore(points int) {
	s.Score += points
	s.Events.Emit(Event{Type: EventScoreChanged, Data: s.Score})
}

func (s *Session) emitHealth() {
	s.Events.Emit(Event{Type: EventHealthChanged, Data: s.Player.HP.Current})
}

func (s *Session) emitAmmo(a AmmoType) {
	s.Events.Emit(Event{Type: EventAmmoChanged, Ammo: a, Data: s.Player.Ammo[a]})
}

// HUD is the read-only projection shown to the player.
type HUD struct {
	Score  int
	Level  int
	Wave   int
	Health int
	Ammo   [AmmoTypeCount]int
	State  GameState
}

func (s *Session) HUD() HUD {
	return HUD{
		Score:  s.Score,
		Level:  s.Level,
		Wave:   s.Wave,
		Health: s.Player.HP.Current,
		Ammo:   s.Player.Ammo,
		State:  s.State,
	}
}

func (h HUD) String() string {
	line := fmt.Sprintf("Score %d  Level %d  Wave %d  Health %d  AP %d  HE %d",
		h.Score, h.Level, h.Wave, h.Health, h.Ammo[AmmoAP], h.Ammo[AmmoHE])
	switch h.State {
	case StateGameOver:
		line += "  GAME OVER"
	case StateLevelComplete:
		line += "  LEVEL COMPLETE"
	case StateGameComplete:
		line += "  ALL LEVELS COMPLETE"
	}
	return line
}
