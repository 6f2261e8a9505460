package game

import "time"

// Viewport defaults (screen pixels). The map is twice the viewport each way.
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// Next-level button layout, in viewport pixels.
const (
	NextLevelButtonW      = 200
	NextLevelButtonH      = 50
	NextLevelButtonOffset = 60 // below the vertical centre
)

// Particle pool.
const MaxParticles = 4000

// Tuning holds every gameplay constant. Distances are world pixels, speeds are
// pixels per tick, lifetimes of bullets and particles are ticks.
type Tuning struct {
	MapWidth  float64 `yaml:"map_width"`
	MapHeight float64 `yaml:"map_height"`

	GridWidth  int     `yaml:"grid_width"`
	GridHeight int     `yaml:"grid_height"`
	TileSize   float64 `yaml:"tile_size"`

	DesertThreshold float64 `yaml:"desert_threshold"`
	CactusThreshold float64 `yaml:"cactus_threshold"`

	MaxLevel int `yaml:"max_level"`

	PlayerSize   float64 `yaml:"player_size"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerHealth int     `yaml:"player_health"`
	StartAP      int     `yaml:"start_ap"`
	StartHE      int     `yaml:"start_he"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`

	BulletSpeed     float64 `yaml:"bullet_speed"`
	HostileSpeedMul float64 `yaml:"hostile_speed_mul"`
	BulletLifetime  int     `yaml:"bullet_lifetime"`
	APSize          float64 `yaml:"ap_size"`
	HESize          float64 `yaml:"he_size"`
	APDamage        int     `yaml:"ap_damage"`
	HEDamage        int     `yaml:"he_damage"`

	TurretSize        float64       `yaml:"turret_size"`
	TurretHealth      int           `yaml:"turret_health"`
	TurretDamage      int           `yaml:"turret_damage"`
	TurretDetect      float64       `yaml:"turret_detect"`
	TurretFireRate    time.Duration `yaml:"turret_fire_rate"`
	TurretMinDistance float64       `yaml:"turret_min_distance"`
	TurretsBase       int           `yaml:"turrets_base"`
	LevelScaleStep    float64       `yaml:"level_scale_step"`
	HostileMuzzle     float64       `yaml:"hostile_muzzle"`

	EnemySize       float64       `yaml:"enemy_size"`
	EnemySpeed      float64       `yaml:"enemy_speed"`
	EnemyHealth     int           `yaml:"enemy_health"`
	EnemyDamage     int           `yaml:"enemy_damage"`
	EnemyDetect     float64       `yaml:"enemy_detect"`
	EnemyFireRate   time.Duration `yaml:"enemy_fire_rate"`
	EnemyEdgeOffset float64       `yaml:"enemy_edge_offset"`
	EnemyArrival    float64       `yaml:"enemy_arrival"`
	MaxWaveTanks    int           `yaml:"max_wave_tanks"`

	FirstWaveDelay time.Duration `yaml:"first_wave_delay"`
	WaveDelay      time.Duration `yaml:"wave_delay"`

	PowerupSize        float64       `yaml:"powerup_size"`
	PowerupLifetime    time.Duration `yaml:"powerup_lifetime"`
	PowerupMargin      float64       `yaml:"powerup_margin"`
	PowerupMinDistance float64       `yaml:"powerup_min_distance"`
	PowerupAttempts    int           `yaml:"powerup_attempts"`
	PowerupAP          int           `yaml:"powerup_ap"`
	PowerupHE          int           `yaml:"powerup_he"`

	ScoreTurret int `yaml:"score_turret"`
	ScoreTank   int `yaml:"score_tank"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		MapWidth:  ViewWidth * 2,
		MapHeight: ViewHeight * 2,

		GridWidth:  100,
		GridHeight: 100,
		TileSize:   32,

		DesertThreshold: 0.88,
		CactusThreshold: 0.98,

		MaxLevel: 5,

		PlayerSize:   32,
		PlayerSpeed:  3,
		PlayerHealth: 100,
		StartAP:      10,
		StartHE:      5,
		MuzzleOffset: 30,

		BulletSpeed:     5,
		HostileSpeedMul: 0.7,
		BulletLifetime:  60,
		APSize:          4,
		HESize:          8,
		APDamage:        30,
		HEDamage:        20,

		TurretSize:        32,
		TurretHealth:      50,
		TurretDamage:      10,
		TurretDetect:      220,
		TurretFireRate:    2000 * time.Millisecond,
		TurretMinDistance: 200,
		TurretsBase:       2,
		LevelScaleStep:    0.1,
		HostileMuzzle:     20,

		EnemySize:       32,
		EnemySpeed:      1.5,
		EnemyHealth:     40,
		EnemyDamage:     10,
		EnemyDetect:     220,
		EnemyFireRate:   3000 * time.Millisecond,
		EnemyEdgeOffset: 50,
		EnemyArrival:    50,
		MaxWaveTanks:    3,

		FirstWaveDelay: 3 * time.Second,
		WaveDelay:      10 * time.Second,

		PowerupSize:        20,
		PowerupLifetime:    10 * time.Second,
		PowerupMargin:      50,
		PowerupMinDistance: 100,
		PowerupAttempts:    50,
		PowerupAP:          5,
		PowerupHE:          3,

		ScoreTurret: 100,
		ScoreTank:   150,
	}
}

// LevelScale is the size/damage/detection multiplier for a level:
// 10% per level above the first.
func (t Tuning) LevelScale(level int) float64 {
	return 1 + float64(level-1)*t.LevelScaleStep
}

// TurretCount is how many turrets a level starts with.
func (t Tuning) TurretCount(level int) int {
	return t.TurretsBase + level
}
