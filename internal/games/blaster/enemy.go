package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// updateEnemies runs the bomb and movement policies of every enemy.
func (w *World) updateEnemies() {
	ec := w.cfg.Enemies
	for i := range w.enemies {
		e := &w.enemies[i]
		e.MoveTimer++
		e.BombTimer++

		if e.BombTimer >= ec.BombEvery {
			e.BombTimer = 0
			w.enemyBomb(e)
		}
		if e.MoveTimer >= ec.MoveEvery {
			e.MoveTimer = 0
			w.moveEnemy(e)
		}
	}
}

// enemyBomb places a bomb when the enemy has a free slot, its cell is clear
// and the player is close. Far from the player it still bombs on a small
// random chance.
func (w *World) enemyBomb(e *Enemy) bool {
	if e.BombCount >= e.MaxBombs || w.bombIndex(e.Pos) >= 0 {
		return false
	}
	near := e.Pos.Manhattan(w.player.Pos) <= w.cfg.Enemies.BombDistance
	if !near && w.rng.Float64() >= w.cfg.Enemies.BombChance {
		return false
	}
	w.addBomb(e.Pos, e.BombRange, false, Owner(e.ID))
	e.BombCount++
	return true
}

type enemyMove struct {
	pos core.Point
	dir Direction
}

// moveEnemy steps to a random neighbour, preferring ones outside the blast
// path of bombs about to go off. A boxed-in enemy only turns.
func (w *World) moveEnemy(e *Enemy) bool {
	var valid, safe []enemyMove
	for _, dir := range allDirections {
		dx, dy := dir.Delta()
		p := e.Pos.Add(dx, dy)
		if !w.grid.Walkable(p) {
			continue
		}
		m := enemyMove{pos: p, dir: dir}
		valid = append(valid, m)
		if !w.inDanger(p) {
			safe = append(safe, m)
		}
	}

	choices := safe
	if len(choices) == 0 {
		choices = valid
	}
	if len(choices) == 0 {
		e.Facing = Direction(w.rng.Intn(len(allDirections))) //#nosec G115 -- bounded by 4
		return false
	}

	m := choices[w.rng.Intn(len(choices))]
	e.Pos = m.pos
	e.Facing = m.dir
	return true
}

// inDanger reports whether p lies in the blast path of any bomb whose fuse
// is within danger_ticks.
func (w *World) inDanger(p core.Point) bool {
	for _, b := range w.bombs {
		if b.Timer > w.cfg.Enemies.DangerTicks {
			continue
		}
		for _, c := range blastPath(&w.grid, b.Pos, b.Reach(w.cfg.Bombs.MegaBonus)) {
			if c == p {
				return true
			}
		}
	}
	return false
}
