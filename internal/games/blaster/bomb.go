package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// blastPath returns the cells a blast from origin covers: the origin, then
// each direction in enumeration order out to reach cells. A walk ends before
// an indestructible tile or the arena edge, and right after the first
// destructible tile. The grid is only read.
func blastPath(g *Grid, origin core.Point, reach int) []core.Point {
	cells := make([]core.Point, 1, 1+4*max(reach, 0))
	cells[0] = origin

	for _, dir := range allDirections {
		dx, dy := dir.Delta()
		for i := 1; i <= reach; i++ {
			p := origin.Add(dx*i, dy*i)
			tile := g.At(p)
			if tile == TileIndestructible {
				break
			}
			cells = append(cells, p)
			if tile == TileDestructible {
				break
			}
		}
	}
	return cells
}

// bombIndex returns the index of the bomb on p, or -1.
func (w *World) bombIndex(p core.Point) int {
	for i := range w.bombs {
		if w.bombs[i].Pos == p {
			return i
		}
	}
	return -1
}

// addBomb arms a new bomb. Callers have already checked the cell is free.
func (w *World) addBomb(p core.Point, reach int, mega bool, owner Owner) {
	w.bombs = append(w.bombs, Bomb{
		ID:    w.newID(),
		Pos:   p,
		Timer: w.cfg.Bombs.FuseTicks,
		Range: reach,
		Mega:  mega,
		Owner: owner,
	})
}

// updateBombs counts every fuse down and detonates the bombs that expire.
// Detonations never shorten other fuses.
func (w *World) updateBombs() {
	var expired []Bomb
	live := w.bombs[:0]
	for _, b := range w.bombs {
		b.Timer--
		if b.Timer <= 0 {
			expired = append(expired, b)
			continue
		}
		live = append(live, b)
	}
	w.bombs = live

	for _, b := range expired {
		w.detonate(b)
	}
}

// detonate resolves one bomb: walls in the footprint crumble (with a chance
// of a power-up), every footprint cell catches fire and the owner gets the
// bomb slot back.
func (w *World) detonate(b Bomb) []core.Point {
	footprint := blastPath(&w.grid, b.Pos, b.Reach(w.cfg.Bombs.MegaBonus))

	for _, p := range footprint {
		if w.grid.At(p) == TileDestructible {
			w.grid.Set(p, TileEmpty)
			w.session.addScore(w.cfg.Scoring.Wall)
			w.maybeSpawnPowerUp(p)
		}
		w.explosions = append(w.explosions, Explosion{
			ID:    w.newID(),
			Pos:   p,
			Timer: w.cfg.Bombs.ExplosionTicks,
		})
	}

	w.releaseBomb(b.Owner)
	return footprint
}

// releaseBomb gives a bomb slot back to its owner. Bombs of enemies that
// have since died are simply dropped.
func (w *World) releaseBomb(owner Owner) {
	if owner.IsPlayer() {
		w.player.BombCount = max(0, w.player.BombCount-1)
		return
	}
	for i := range w.enemies {
		if w.enemies[i].ID == int(owner) {
			w.enemies[i].BombCount = max(0, w.enemies[i].BombCount-1)
			return
		}
	}
}

// ageExplosions burns every explosion down and removes the spent ones.
func (w *World) ageExplosions() {
	live := w.explosions[:0]
	for _, e := range w.explosions {
		e.Timer--
		if e.Timer > 0 {
			live = append(live, e)
		}
	}
	w.explosions = live
}

// burning reports whether an explosion covers p.
func (w *World) burning(p core.Point) bool {
	for i := range w.explosions {
		if w.explosions[i].Pos == p {
			return true
		}
	}
	return false
}
