// Package config provides YAML-based game configuration loading and
// difficulty presets for Pixel Blaster.
package config

// BlasterConfig contains every tunable of the arena simulation.
// Timers are in ticks (60 ticks = 1 second at the default rate) unless the
// field name says otherwise.
type BlasterConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	Player   PlayerConfig  `yaml:"player"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Bombs    BombConfig    `yaml:"bombs"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Escape   EscapeConfig  `yaml:"escape"`
}

// GridConfig defines arena generation parameters.
type GridConfig struct {
	DestructibleChance float64 `yaml:"destructible_chance"` // Chance an interior cell becomes a soft wall
	SafeZone           int     `yaml:"safe_zone"`           // Cells with x<=n && y<=n stay clear
}

// PlayerConfig defines starting stats, caps and the movement gate.
type PlayerConfig struct {
	Lives        int `yaml:"lives"`
	MaxLives     int `yaml:"max_lives"`
	MaxBombs     int `yaml:"max_bombs"`
	MaxBombsCap  int `yaml:"max_bombs_cap"`
	BombRange    int `yaml:"bomb_range"`
	BombRangeCap int `yaml:"bomb_range_cap"`
	Speed        int `yaml:"speed"`
	SpeedCap     int `yaml:"speed_cap"`
	ShieldTicks  int `yaml:"shield_ticks"`

	MoveDelayMS     int `yaml:"move_delay_ms"`      // Gap between steps at speed 1
	MoveDelayStepMS int `yaml:"move_delay_step_ms"` // Reduction per extra speed point
	MinMoveDelayMS  int `yaml:"min_move_delay_ms"`
}

// EnemyConfig defines the enemy batch and AI cadence.
type EnemyConfig struct {
	BaseCount    int     `yaml:"base_count"`     // Enemies per level = base_count + level
	MoveEvery    int     `yaml:"move_every"`     // Ticks between movement decisions
	BombEvery    int     `yaml:"bomb_every"`     // Ticks between bomb decisions
	BombJitter   int     `yaml:"bomb_jitter"`    // Initial bomb timer drawn from [0, n)
	BombDistance int     `yaml:"bomb_distance"`  // Always bomb when the player is this close
	BombChance   float64 `yaml:"bomb_chance"`    // Otherwise bomb with this probability
	DangerTicks  int     `yaml:"danger_ticks"`   // Bombs at or below this timer are avoided
	BaseMaxBombs int     `yaml:"base_max_bombs"` // Max bombs = base + level/2
	BombRange    int     `yaml:"bomb_range"`
}

// BombConfig defines fuse and blast timings.
type BombConfig struct {
	FuseTicks      int `yaml:"fuse_ticks"`
	ExplosionTicks int `yaml:"explosion_ticks"`
	MegaBonus      int `yaml:"mega_bonus"` // Extra range for mega bombs
}

// PowerUpConfig defines drop rate and token lifetime.
type PowerUpConfig struct {
	SpawnChance   float64 `yaml:"spawn_chance"`
	LifetimeTicks int     `yaml:"lifetime_ticks"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	Wall       int `yaml:"wall"`
	Enemy      int `yaml:"enemy"`
	PowerUp    int `yaml:"powerup"`
	LevelClear int `yaml:"level_clear"`
}

// EscapeConfig defines the relocation after the player is hit.
type EscapeConfig struct {
	Distance   int `yaml:"distance"`    // Probe offset from the hit cell
	DelayTicks int `yaml:"delay_ticks"` // Ticks before the relocation applies
	// AlwaysReset sends the player back to the start cell even when a safe
	// cell was found.
	AlwaysReset bool `yaml:"always_reset"`
	// Invulnerable shields the player while a relocation is pending. The
	// player can neither be hit nor move until it lands.
	Invulnerable bool `yaml:"invulnerable"`
}
