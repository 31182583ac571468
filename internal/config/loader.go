package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "blaster.yaml"

// LoadBlaster loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
//
// Files are overlaid on the defaults, so a partial file only overrides the
// keys it sets.
func LoadBlaster(customPath string) (BlasterConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		if overlay.Validate() != nil {
			continue
		}
		return overlay, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is unusable.
func embeddedDefault() BlasterConfig {
	var cfg BlasterConfig
	if err := yaml.Unmarshal(defaultBlasterYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBlasterConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every out-of-range value, joined into one error.
func (c BlasterConfig) Validate() error {
	var errs []error

	positive := map[string]int{
		"player.lives":             c.Player.Lives,
		"player.max_lives":         c.Player.MaxLives,
		"player.max_bombs":         c.Player.MaxBombs,
		"player.bomb_range":        c.Player.BombRange,
		"player.speed":             c.Player.Speed,
		"enemies.move_every":       c.Enemies.MoveEvery,
		"enemies.bomb_every":       c.Enemies.BombEvery,
		"bombs.fuse_ticks":         c.Bombs.FuseTicks,
		"bombs.explosion_ticks":    c.Bombs.ExplosionTicks,
		"powerups.lifetime_ticks":  c.PowerUps.LifetimeTicks,
		"player.min_move_delay_ms": c.Player.MinMoveDelayMS,
		"player.shield_ticks":      c.Player.ShieldTicks,
		"escape.distance":          c.Escape.Distance,
	}
	for _, key := range sortedKeys(positive) {
		if positive[key] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", key, positive[key]))
		}
	}

	nonNegative := map[string]int{
		"grid.safe_zone":            c.Grid.SafeZone,
		"player.move_delay_ms":      c.Player.MoveDelayMS,
		"player.move_delay_step_ms": c.Player.MoveDelayStepMS,
		"enemies.base_count":        c.Enemies.BaseCount,
		"enemies.bomb_jitter":       c.Enemies.BombJitter,
		"enemies.bomb_distance":     c.Enemies.BombDistance,
		"enemies.danger_ticks":      c.Enemies.DangerTicks,
		"enemies.base_max_bombs":    c.Enemies.BaseMaxBombs,
		"enemies.bomb_range":        c.Enemies.BombRange,
		"bombs.mega_bonus":          c.Bombs.MegaBonus,
		"escape.delay_ticks":        c.Escape.DelayTicks,
		"scoring.wall":              c.Scoring.Wall,
		"scoring.enemy":             c.Scoring.Enemy,
		"scoring.powerup":           c.Scoring.PowerUp,
		"scoring.level_clear":       c.Scoring.LevelClear,
	}
	for _, key := range sortedKeys(nonNegative) {
		if nonNegative[key] < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", key, nonNegative[key]))
		}
	}

	caps := []struct {
		start, cap       string
		startVal, capVal int
	}{
		{"player.lives", "player.max_lives", c.Player.Lives, c.Player.MaxLives},
		{"player.max_bombs", "player.max_bombs_cap", c.Player.MaxBombs, c.Player.MaxBombsCap},
		{"player.bomb_range", "player.bomb_range_cap", c.Player.BombRange, c.Player.BombRangeCap},
		{"player.speed", "player.speed_cap", c.Player.Speed, c.Player.SpeedCap},
	}
	for _, pair := range caps {
		if pair.startVal > pair.capVal {
			errs = append(errs, fmt.Errorf("%s (%d) exceeds %s (%d)", pair.start, pair.startVal, pair.cap, pair.capVal))
		}
	}

	chances := map[string]float64{
		"grid.destructible_chance": c.Grid.DestructibleChance,
		"enemies.bomb_chance":      c.Enemies.BombChance,
		"powerups.spawn_chance":    c.PowerUps.SpawnChance,
	}
	for _, key := range sortedKeys(chances) {
		if v := chances[key]; v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %g", key, v))
		}
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c BlasterConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
