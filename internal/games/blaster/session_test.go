package blaster

import (
	"testing"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

func TestStartLevel(t *testing.T) {
	cfg := config.DefaultBlasterConfig()

	for level := 1; level <= 4; level++ {
		w := NewWorld(cfg, NewRNG(int64(level)))
		w.session.Level = level
		w.player.Lives = 1
		w.bombs = []Bomb{{ID: 1}}
		w.startLevel()

		if got, expected := len(w.enemies), cfg.Enemies.BaseCount+level; got != expected {
			t.Errorf("level %d: %d enemies, expected %d", level, got, expected)
		}
		seen := make(map[core.Point]bool)
		for _, e := range w.enemies {
			if !w.grid.Walkable(e.Pos) {
				t.Errorf("level %d: enemy on blocked cell %v", level, e.Pos)
			}
			if inSafeZone(e.Pos, cfg.Grid.SafeZone) {
				t.Errorf("level %d: enemy inside the protected zone at %v", level, e.Pos)
			}
			if seen[e.Pos] {
				t.Errorf("level %d: two enemies share %v", level, e.Pos)
			}
			seen[e.Pos] = true
			if e.MaxBombs != 2+level/2 {
				t.Errorf("level %d: MaxBombs = %d, expected %d", level, e.MaxBombs, 2+level/2)
			}
			if e.BombTimer < 0 || e.BombTimer >= 60 {
				t.Errorf("level %d: BombTimer = %d, expected [0,60)", level, e.BombTimer)
			}
		}

		p := w.player
		if p.Pos != StartCell || p.Lives != 3 || p.MaxBombs != 1 || p.BombRange != 2 || p.Speed != 1 {
			t.Errorf("level %d: player not reset: %+v", level, p)
		}
		if len(w.bombs) != 0 || len(w.explosions) != 0 || len(w.powerUps) != 0 {
			t.Errorf("level %d: entity collections not cleared", level)
		}
	}
}

func TestSessionStateMachine(t *testing.T) {
	w := NewWorld(config.DefaultBlasterConfig(), NewRNG(3))

	if w.Phase() != PhaseMenu {
		t.Fatalf("Phase() = %v, expected menu", w.Phase())
	}
	w.Tick(Intents{})
	if w.Snapshot().Tick != 0 {
		t.Error("Tick() on the title screen should do nothing")
	}
	if w.TogglePause() || w.ToMenu() {
		t.Error("pause and back are not valid on the title screen")
	}

	if !w.Start() {
		t.Fatal("Start() from menu should succeed")
	}
	if w.Phase() != PhasePlaying || w.session.Level != 1 || w.session.Score != 0 {
		t.Errorf("after Start: %+v", w.Session())
	}
	if w.Start() {
		t.Error("Start() while playing should be rejected")
	}

	w.Tick(Intents{})
	if !w.TogglePause() || w.Phase() != PhasePaused {
		t.Fatal("TogglePause() should pause")
	}
	before := w.Snapshot()
	w.Tick(Intents{Right: true})
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Tick() while paused should not change state")
	}
	w.TogglePause()
	if w.Phase() != PhasePlaying {
		t.Fatal("TogglePause() should resume")
	}

	w.session.addScore(500)
	w.player.Lives = 0
	w.Tick(Intents{})
	if w.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", w.Phase())
	}

	if !w.Start() {
		t.Fatal("Start() after game over should restart")
	}
	if w.session.Score != 0 || w.session.HighScore != 500 {
		t.Errorf("restart: Score=%d HighScore=%d, expected 0 and 500", w.session.Score, w.session.HighScore)
	}

	w.TogglePause()
	w.player.Pending = &Relocation{Target: core.Pt(3, 3), Ticks: 4}
	if !w.ToMenu() || w.Phase() != PhaseMenu {
		t.Fatal("ToMenu() from pause should return to the title screen")
	}
	if w.player.Pending != nil {
		t.Error("ToMenu() should cancel a pending relocation")
	}
}

func TestToMenuWhilePlaying(t *testing.T) {
	w := NewWorld(config.DefaultBlasterConfig(), NewRNG(3))
	w.Start()
	w.session.addScore(300)
	w.session.Level = 4
	w.player.Pending = &Relocation{Target: core.Pt(3, 3), Ticks: 4}

	if !w.ToMenu() || w.Phase() != PhaseMenu {
		t.Fatal("ToMenu() while playing should return to the title screen")
	}
	if w.session.Score != 0 || w.session.Level != 1 || w.session.HighScore != 300 {
		t.Errorf("after ToMenu: %+v, expected a reset run keeping the high score", w.Session())
	}
	if w.player.Pending != nil {
		t.Error("ToMenu() should cancel a pending relocation")
	}
	if w.ToMenu() {
		t.Error("ToMenu() on the title screen should be rejected")
	}
}

func TestLevelComplete(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.enemies = []Enemy{{ID: 1, Pos: core.Pt(7, 7)}}
	burn(w, core.Pt(7, 7))

	ticks(w, 1)
	if w.session.Level != 2 {
		t.Fatalf("Level = %d, expected 2", w.session.Level)
	}
	if w.session.Score != 100+1000 {
		t.Errorf("Score = %d, expected 1100", w.session.Score)
	}
	if len(w.enemies) != w.cfg.Enemies.BaseCount+2 {
		t.Errorf("len(enemies) = %d, expected a fresh batch", len(w.enemies))
	}
	if len(w.explosions) != 0 {
		t.Error("level start should clear explosions")
	}
}

func TestGameOverBeatsLevelComplete(t *testing.T) {
	w, _, _ := newTestWorld(quietConfig())
	w.player.Lives = 1
	w.player.Pos = core.Pt(7, 7)
	w.enemies = []Enemy{{ID: 1, Pos: core.Pt(7, 7)}}
	burn(w, core.Pt(7, 7))

	ticks(w, 1)
	if w.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected gameover", w.Phase())
	}
	if w.session.Level != 1 {
		t.Errorf("Level = %d, expected 1", w.session.Level)
	}
}

func TestScoreListener(t *testing.T) {
	var got []int
	cfg := quietConfig()
	clk := newFakeClock()
	w := NewWorld(cfg, &scriptedRNG{}, WithClock(clk.Now), WithHighScore(120),
		WithScoreListener(ScoreListenerFunc(func(score int) {
			got = append(got, score)
		})))

	w.session.addScore(50)
	w.session.addScore(0)
	w.session.addScore(100)
	if len(got) != 2 || got[0] != 50 || got[1] != 150 {
		t.Errorf("listener saw %v, expected [50 150]", got)
	}
	if w.session.HighScore != 150 {
		t.Errorf("HighScore = %d, expected 150", w.session.HighScore)
	}

	w.session.Phase = PhaseGameOver
	w.Start()
	if got[len(got)-1] != 0 {
		t.Errorf("listener should see the reset to 0, saw %v", got)
	}
	if w.Session().HighScore != 150 {
		t.Error("high score should survive a restart")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirRight, 1, 0},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}
