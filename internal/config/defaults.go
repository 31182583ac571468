package config

import (
	_ "embed"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the built-in configuration. It mirrors
// defaults/blaster.yaml and is used when the embedded file cannot be parsed.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Grid: GridConfig{
			DestructibleChance: 0.4,
			SafeZone:           3,
		},
		Player: PlayerConfig{
			Lives:           3,
			MaxLives:        5,
			MaxBombs:        1,
			MaxBombsCap:     5,
			BombRange:       2,
			BombRangeCap:    4,
			Speed:           1,
			SpeedCap:        3,
			ShieldTicks:     300, // 5 seconds
			MoveDelayMS:     150,
			MoveDelayStepMS: 30,
			MinMoveDelayMS:  50,
		},
		Enemies: EnemyConfig{
			BaseCount:    3,
			MoveEvery:    20,
			BombEvery:    120,
			BombJitter:   60,
			BombDistance: 4,
			BombChance:   0.08,
			DangerTicks:  60,
			BaseMaxBombs: 2,
			BombRange:    2,
		},
		Bombs: BombConfig{
			FuseTicks:      120, // 2 seconds
			ExplosionTicks: 30,
			MegaBonus:      2,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:   0.4,
			LifetimeTicks: 600, // 10 seconds
		},
		Scoring: ScoringConfig{
			Wall:       50,
			Enemy:      100,
			PowerUp:    200,
			LevelClear: 1000,
		},
		Escape: EscapeConfig{
			Distance:   2,
			DelayTicks: 12, // ~200ms
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlasterYAML
}
