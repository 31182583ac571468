package blaster

import (
	"time"
)

// moveDelay is the real-time gap required between two player steps.
func (w *World) moveDelay() time.Duration {
	pc := w.cfg.Player
	ms := max(pc.MinMoveDelayMS, pc.MoveDelayMS-(w.player.Speed-1)*pc.MoveDelayStepMS)
	return time.Duration(ms) * time.Millisecond
}

// MovePlayer attempts a one-cell step in the held direction. It reports
// false when nothing is held, the gate has not reopened, or the destination
// is not an empty cell. A rejected step leaves the gate untouched.
func (w *World) MovePlayer(in Intents) bool {
	dir, ok := in.direction()
	if !ok {
		return false
	}

	now := w.clock()
	if now.Sub(w.player.LastMove) < w.moveDelay() {
		return false
	}

	dest := w.player.Pos.Add(dir.Delta())
	if !w.grid.Walkable(dest) {
		return false
	}

	w.player.Pos = dest
	w.player.LastMove = now
	if i := w.powerUpIndex(dest); i >= 0 {
		w.collectPowerUp(i)
	}
	return true
}

// PlaceBomb drops a player bomb on the current cell. It is rejected when
// the player already has max_bombs on the field or the cell holds a bomb.
// The bomb is mega when a MegaBomb token lies uncollected on the cell.
func (w *World) PlaceBomb() bool {
	p := &w.player
	if p.BombCount >= p.MaxBombs || w.bombIndex(p.Pos) >= 0 {
		return false
	}

	mega := false
	if i := w.powerUpIndex(p.Pos); i >= 0 && w.powerUps[i].Kind == PowerUpMegaBomb {
		mega = true
	}

	w.addBomb(p.Pos, p.BombRange, mega, OwnerPlayer)
	p.BombCount++
	return true
}

// decayShield runs the shield countdown; the shield drops on the tick the
// timer reaches zero.
func (w *World) decayShield() {
	p := &w.player
	if !p.HasShield {
		return
	}
	p.ShieldTimer--
	if p.ShieldTimer <= 0 {
		p.ShieldTimer = 0
		p.HasShield = false
	}
}
