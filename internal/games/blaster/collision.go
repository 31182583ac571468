package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// escapeOrder is the probe order for a safe landing cell after a hit.
var escapeOrder = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// resolveCollisions applies explosion damage. An unshielded player on a
// burning cell loses one life every tick and its escape is rescheduled.
// Enemies on burning cells die.
func (w *World) resolveCollisions() {
	p := &w.player
	if !p.HasShield && !w.escapeGuarded() && w.burning(p.Pos) {
		p.Lives--
		w.escape()
	}

	survivors := w.enemies[:0]
	killed := 0
	for _, e := range w.enemies {
		if w.burning(e.Pos) {
			killed++
			continue
		}
		survivors = append(survivors, e)
	}
	w.enemies = survivors

	for iter := 0; iter < killed; iter++ {
		w.session.addScore(w.cfg.Scoring.Enemy)
	}
}

// escape schedules the post-hit relocation and reports whether a safe
// landing cell was found. Without one, or when escape.always_reset is set,
// the player lands on the start cell.
func (w *World) escape() bool {
	target, found := w.escapeTarget()
	if !found || w.cfg.Escape.AlwaysReset {
		target = StartCell
	}
	w.player.Pending = &Relocation{Target: target, Ticks: w.cfg.Escape.DelayTicks}
	return found
}

// escapeTarget probes left, right, up and down at escape.distance cells,
// clamped to the arena, and returns the first empty one.
func (w *World) escapeTarget() (core.Point, bool) {
	d := w.cfg.Escape.Distance
	pos := w.player.Pos
	for _, dir := range escapeOrder {
		dx, dy := dir.Delta()
		c := core.Pt(
			core.Clamp(pos.X+dx*d, 0, GridSize-1),
			core.Clamp(pos.Y+dy*d, 0, GridSize-1),
		)
		if w.grid.Walkable(c) {
			return c, true
		}
	}
	return StartCell, false
}

// resolveRelocation counts a pending relocation down and lands the player
// when it runs out.
func (w *World) resolveRelocation() bool {
	r := w.player.Pending
	if r == nil {
		return false
	}
	r.Ticks--
	if r.Ticks > 0 {
		return false
	}
	w.player.Pos = r.Target
	w.player.Pending = nil
	return true
}

// escapeGuarded reports whether a pending relocation protects the player.
func (w *World) escapeGuarded() bool {
	return w.cfg.Escape.Invulnerable && w.player.Escaping()
}
