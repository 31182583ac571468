package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by ParseDifficulty for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyBlasterPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyBlasterPreset(cfg *BlasterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = min(5, cfg.Player.MaxLives)
		cfg.Enemies.BombChance = 0.04
		cfg.Enemies.MoveEvery = 28
		cfg.Enemies.BaseMaxBombs = 1
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.BombChance = 0.15
		cfg.Enemies.MoveEvery = 14
		cfg.Enemies.DangerTicks = 90
		cfg.Escape.AlwaysReset = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
