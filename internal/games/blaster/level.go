package blaster

import (
	"slices"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// startLevel rebuilds the arena for the current session level: new grid,
// player back at the start cell with baseline stats, a fresh enemy batch and
// no bombs, explosions or power-ups.
func (w *World) startLevel() {
	w.grid = NewGrid(w.cfg.Grid, w.rng)
	w.player = newPlayer(w.cfg.Player)
	w.enemies = w.spawnEnemies(w.session.Level)
	w.bombs = nil
	w.explosions = nil
	w.powerUps = nil
}

func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Pos:       StartCell,
		Lives:     cfg.Lives,
		MaxBombs:  cfg.MaxBombs,
		BombRange: cfg.BombRange,
		Speed:     cfg.Speed,
	}
}

// spawnEnemies places base_count+level enemies on distinct empty interior
// cells outside the protected zone.
func (w *World) spawnEnemies(level int) []Enemy {
	ec := w.cfg.Enemies

	var free []core.Point
	for y := 1; y < GridSize-1; y++ {
		for x := 1; x < GridSize-1; x++ {
			p := core.Pt(x, y)
			if w.grid.Walkable(p) && !inSafeZone(p, w.cfg.Grid.SafeZone) {
				free = append(free, p)
			}
		}
	}

	count := ec.BaseCount + level
	enemies := make([]Enemy, 0, count)
	for id := 0; id < count && len(free) > 0; id++ {
		i := w.rng.Intn(len(free))
		pos := free[i]
		free = slices.Delete(free, i, i+1)

		bombTimer := 0
		if ec.BombJitter > 0 {
			bombTimer = w.rng.Intn(ec.BombJitter)
		}
		enemies = append(enemies, Enemy{
			ID:        id,
			Pos:       pos,
			Facing:    Direction(w.rng.Intn(len(allDirections))), //#nosec G115 -- bounded by 4
			BombTimer: bombTimer,
			MaxBombs:  ec.BaseMaxBombs + level/2,
			BombRange: ec.BombRange,
		})
	}
	return enemies
}
