package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// maybeSpawnPowerUp rolls for a drop where a wall just crumbled.
func (w *World) maybeSpawnPowerUp(p core.Point) bool {
	if w.rng.Float64() >= w.cfg.PowerUps.SpawnChance {
		return false
	}
	kind := PowerUpKind(w.rng.Intn(int(powerUpKindCount))) //#nosec G115 -- bounded by kind count
	w.powerUps = append(w.powerUps, PowerUp{
		ID:    w.newID(),
		Pos:   p,
		Kind:  kind,
		Timer: w.cfg.PowerUps.LifetimeTicks,
	})
	return true
}

// powerUpIndex returns the index of the first token on p, or -1.
func (w *World) powerUpIndex(p core.Point) int {
	for i := range w.powerUps {
		if w.powerUps[i].Pos == p {
			return i
		}
	}
	return -1
}

// collectPowerUp applies the token at index i to the player and removes it.
func (w *World) collectPowerUp(i int) {
	pu := w.powerUps[i]
	w.powerUps = append(w.powerUps[:i], w.powerUps[i+1:]...)
	w.applyPowerUp(pu.Kind)
	w.session.addScore(w.cfg.Scoring.PowerUp)
}

// applyPowerUp changes player stats, saturating at the configured caps.
func (w *World) applyPowerUp(kind PowerUpKind) {
	p := &w.player
	pc := w.cfg.Player

	switch kind {
	case PowerUpBombCount:
		p.MaxBombs = min(p.MaxBombs+1, pc.MaxBombsCap)
	case PowerUpBombRange:
		p.BombRange = min(p.BombRange+1, pc.BombRangeCap)
	case PowerUpSpeed:
		p.Speed = min(p.Speed+1, pc.SpeedCap)
	case PowerUpLife:
		p.Lives = min(p.Lives+1, pc.MaxLives)
	case PowerUpShield:
		p.HasShield = true
		p.ShieldTimer = pc.ShieldTicks
	case PowerUpMegaBomb:
		// Mega status is read from the cell at placement time
	}
}

// agePowerUps counts token lifetimes down and drops expired ones.
func (w *World) agePowerUps() {
	live := w.powerUps[:0]
	for _, pu := range w.powerUps {
		pu.Timer--
		if pu.Timer > 0 {
			live = append(live, pu)
		}
	}
	w.powerUps = live
}
