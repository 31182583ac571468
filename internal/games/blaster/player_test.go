package blaster

import (
	"testing"
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/core"
)

func TestMovementGate(t *testing.T) {
	tests := []struct {
		name       string
		speed      int
		gap        time.Duration
		secondMove bool
	}{
		{"speed 1 within 150ms gate", 1, 100 * time.Millisecond, false},
		{"speed 1 after gate", 1, 150 * time.Millisecond, true},
		{"speed 2 within 120ms gate", 2, 100 * time.Millisecond, false},
		{"speed 3 after 90ms gate", 3, 100 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, clk, _ := newTestWorld(quietConfig())
			w.player.Speed = tt.speed

			if !w.MovePlayer(Intents{Right: true}) {
				t.Fatal("first move should be processed")
			}
			clk.Advance(tt.gap)
			if got := w.MovePlayer(Intents{Right: true}); got != tt.secondMove {
				t.Errorf("second MovePlayer() = %v, expected %v", got, tt.secondMove)
			}
		})
	}
}

func TestMoveDelayFloor(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.player.Speed = 10
	if got := w.moveDelay(); got != 50*time.Millisecond {
		t.Errorf("moveDelay() = %v, expected 50ms floor", got)
	}
}

func TestMovePriority(t *testing.T) {
	tests := []struct {
		name     string
		in       Intents
		expected core.Point
	}{
		{"up beats left", Intents{Up: true, Left: true}, core.Pt(5, 4)},
		{"down beats right", Intents{Down: true, Right: true}, core.Pt(5, 6)},
		{"up beats down", Intents{Up: true, Down: true}, core.Pt(5, 4)},
		{"left beats right", Intents{Left: true, Right: true}, core.Pt(4, 5)},
		{"right alone", Intents{Right: true}, core.Pt(6, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newTestWorld(quietConfig())
			w.player.Pos = core.Pt(5, 5)
			w.MovePlayer(tt.in)
			if w.player.Pos != tt.expected {
				t.Errorf("Pos = %v, expected %v", w.player.Pos, tt.expected)
			}
		})
	}
}

func TestMoveBlocked(t *testing.T) {
	w, clk, _ := newTestWorld(quietConfig())
	w.grid.Set(core.Pt(2, 1), TileDestructible)
	before := w.player.LastMove

	if w.MovePlayer(Intents{Right: true}) {
		t.Error("move into a destructible wall should be rejected")
	}
	if w.MovePlayer(Intents{Left: true}) {
		t.Error("move into the border should be rejected")
	}
	if w.MovePlayer(Intents{}) {
		t.Error("move with nothing held should be rejected")
	}
	if !w.player.LastMove.Equal(before) {
		t.Error("rejected moves must not restart the gate")
	}

	// Bombs, flames and tokens do not block
	w.addBomb(core.Pt(1, 2), 2, false, OwnerPlayer)
	if !w.MovePlayer(Intents{Down: true}) {
		t.Error("move onto a bomb should be allowed")
	}
	clk.Advance(time.Second)
	w.explosions = append(w.explosions, Explosion{Pos: core.Pt(1, 3), Timer: 10})
	if !w.MovePlayer(Intents{Down: true}) {
		t.Error("move onto an explosion should be allowed")
	}
}

func TestCollectPowerUpOnMove(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.powerUps = []PowerUp{{ID: 1, Pos: core.Pt(2, 1), Kind: PowerUpBombRange, Timer: 600}}

	w.MovePlayer(Intents{Right: true})
	if len(w.powerUps) != 0 {
		t.Error("token should be removed on collection")
	}
	if w.player.BombRange != 3 {
		t.Errorf("BombRange = %d, expected 3", w.player.BombRange)
	}
	if w.session.Score != 200 {
		t.Errorf("Score = %d, expected 200", w.session.Score)
	}
}

func TestPowerUpCaps(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	for iter := 0; iter < 10; iter++ {
		for kind := PowerUpKind(0); kind < powerUpKindCount; kind++ {
			w.applyPowerUp(kind)
		}
	}

	p := w.player
	if p.MaxBombs != 5 {
		t.Errorf("MaxBombs = %d, expected cap 5", p.MaxBombs)
	}
	if p.BombRange != 4 {
		t.Errorf("BombRange = %d, expected cap 4", p.BombRange)
	}
	if p.Speed != 3 {
		t.Errorf("Speed = %d, expected cap 3", p.Speed)
	}
	if p.Lives != 5 {
		t.Errorf("Lives = %d, expected cap 5", p.Lives)
	}
	if !p.HasShield || p.ShieldTimer != 300 {
		t.Errorf("shield = %v/%d, expected true/300", p.HasShield, p.ShieldTimer)
	}
}

func TestCollectionScoreIsFlat(t *testing.T) {
	w, clk, _ := newTestWorld(quietConfig())
	w.player.MaxBombs = 5 // already capped

	w.powerUps = []PowerUp{
		{ID: 1, Pos: core.Pt(2, 1), Kind: PowerUpBombCount, Timer: 600},
		{ID: 2, Pos: core.Pt(3, 1), Kind: PowerUpMegaBomb, Timer: 600},
	}
	w.MovePlayer(Intents{Right: true})
	clk.Advance(time.Second)
	w.MovePlayer(Intents{Right: true})

	if w.session.Score != 400 {
		t.Errorf("Score = %d, expected 400", w.session.Score)
	}
	if w.player.MaxBombs != 5 {
		t.Errorf("MaxBombs = %d, expected 5", w.player.MaxBombs)
	}
}

func TestShieldDecay(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.player.HasShield = true
	w.player.ShieldTimer = 2

	ticks(w, 1)
	if !w.player.HasShield || w.player.ShieldTimer != 1 {
		t.Errorf("after 1 tick shield = %v/%d, expected true/1", w.player.HasShield, w.player.ShieldTimer)
	}
	ticks(w, 1)
	if w.player.HasShield || w.player.ShieldTimer != 0 {
		t.Errorf("after 2 ticks shield = %v/%d, expected false/0", w.player.HasShield, w.player.ShieldTimer)
	}
}

func TestPowerUpExpiry(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.powerUps = []PowerUp{{ID: 1, Pos: core.Pt(7, 7), Kind: PowerUpLife, Timer: 3}}

	ticks(w, 2)
	if len(w.powerUps) != 1 {
		t.Fatal("token expired early")
	}
	ticks(w, 1)
	if len(w.powerUps) != 0 {
		t.Error("token should expire when its timer reaches zero")
	}
}

func TestPowerUpSpawnRoll(t *testing.T) {
	w, _, rng := newTestWorld(quietConfig())

	rng.floats = []float64{0.5}
	if w.maybeSpawnPowerUp(core.Pt(4, 4)) {
		t.Error("roll 0.5 should not spawn at chance 0.4")
	}

	rng.floats = []float64{0.1}
	rng.ints = []int{int(PowerUpShield)}
	if !w.maybeSpawnPowerUp(core.Pt(4, 4)) {
		t.Fatal("roll 0.1 should spawn at chance 0.4")
	}
	pu := w.powerUps[0]
	if pu.Kind != PowerUpShield || pu.Pos != core.Pt(4, 4) || pu.Timer != 600 {
		t.Errorf("spawned %+v", pu)
	}
}
