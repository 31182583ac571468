package blaster

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

func newTestGame(seed int64) (*Game, *fakeClock) {
	clk := newFakeClock()
	g := New()
	g.SetConfig(config.DefaultBlasterConfig())
	g.SetClock(clk.Now)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, clk
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed, same inputs, same clock: identical runs
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i] = frame(core.ActionConfirm)
		case i%45 == 0:
			inputs[i] = frame(core.ActionBomb)
		case i/30%4 == 0:
			inputs[i] = frame(core.ActionRight)
		case i/30%4 == 1:
			inputs[i] = frame(core.ActionDown)
		case i/30%4 == 2:
			inputs[i] = frame(core.ActionLeft)
		default:
			inputs[i] = frame(core.ActionUp)
		}
	}

	run := func() Snapshot {
		g, clk := newTestGame(12345)
		for _, in := range inputs {
			clk.Advance(time.Second / 60)
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Player.Pos != snap2.Player.Pos {
		t.Errorf("Determinism failed: player positions differ")
	}
}

func TestGameSeedsDiffer(t *testing.T) {
	a, _ := newTestGame(1)
	b, _ := newTestGame(2)
	a.Step(frame(core.ActionConfirm))
	b.Step(frame(core.ActionConfirm))

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Grid == sb.Grid {
		t.Error("different seeds should generate different arenas")
	}
}

func TestGameStepSessionIntents(t *testing.T) {
	g, _ := newTestGame(9)

	if st := g.Step(core.NewInputFrame()).State; !st.InMenu {
		t.Fatalf("State = %+v, expected title screen", st)
	}

	st := g.Step(frame(core.ActionConfirm)).State
	if st.InMenu || st.Paused || st.GameOver || st.Level != 1 {
		t.Fatalf("State = %+v, expected a fresh run", st)
	}

	if st := g.Step(frame(core.ActionPause)).State; !st.Paused {
		t.Fatal("ActionPause should pause")
	}
	if st := g.Step(frame(core.ActionPause)).State; st.Paused {
		t.Fatal("ActionPause should resume")
	}

	tick := g.Snapshot().Tick
	if st := g.Step(frame(core.ActionBack)).State; !st.InMenu {
		t.Fatal("ActionBack while playing should return to the title screen")
	}
	if got := g.Snapshot().Tick; got != tick {
		t.Errorf("Tick = %d, expected no simulation step on Back", got)
	}

	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionPause))
	if st := g.Step(frame(core.ActionBack)).State; !st.InMenu {
		t.Fatal("ActionBack while paused should return to the title screen")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g, _ := newTestGame(4)
	g.Step(frame(core.ActionConfirm))
	g.World().session.addScore(300)
	g.World().player.Lives = 0
	if st := g.Step(core.NewInputFrame()).State; !st.GameOver {
		t.Fatalf("State = %+v, expected game over", st)
	}

	st := g.Step(frame(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 || st.Level != 1 {
		t.Errorf("State = %+v, expected restarted run", st)
	}
	if g.Snapshot().HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", g.Snapshot().HighScore)
	}
}

func TestGameHighScoreSurvivesReset(t *testing.T) {
	g, _ := newTestGame(4)
	g.SetHighScore(700)
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().HighScore; got != 700 {
		t.Errorf("HighScore = %d, expected 700", got)
	}

	g.Step(frame(core.ActionConfirm))
	g.World().session.addScore(900)
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().HighScore; got != 900 {
		t.Errorf("HighScore = %d, expected 900 carried across Reset", got)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press ENTER to start") {
		t.Error("title screen should prompt for ENTER")
	}

	g.Step(frame(core.ActionConfirm))
	before := g.Snapshot()
	g.Render(screen)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render() must not change the simulation")
	}

	originX := (80 - GridSize*cellWidth) / 2
	px := originX + StartCell.X*cellWidth
	py := hudRows + StartCell.Y
	if cell := screen.GetCell(px, py); cell.Rune != glyphPlayer.left || cell.Color != glyphPlayer.color {
		t.Errorf("player cell = %+v, expected %q", cell, glyphPlayer.left)
	}
	if got := screen.Get(originX, hudRows); got != glyphWall.left {
		t.Errorf("corner = %q, expected wall", got)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(5)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small notice")
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	named := map[string]glyph{
		"wall":      glyphWall,
		"soft wall": glyphSoftWall,
		"player":    glyphPlayer,
		"shielded":  glyphShielded,
		"escaping":  glyphEscaping,
		"enemy":     glyphEnemy,
		"bomb":      glyphBomb,
		"mega bomb": glyphMegaBomb,
		"explosion": glyphExplosion,
	}
	for kind, g := range powerUpGlyphs {
		named[PowerUpKind(kind).String()] = g
	}

	seen := make(map[[2]rune]string, len(named))
	for name, g := range named {
		shape := [2]rune{g.left, g.right}
		if other, ok := seen[shape]; ok {
			t.Errorf("%s and %s share the glyph %q", name, other, string(shape[:]))
		}
		seen[shape] = name
	}
}

func TestGameRenderEscapingPlayer(t *testing.T) {
	g, _ := newTestGame(5)
	screen := core.NewScreen(80, 24)
	g.Step(frame(core.ActionConfirm))
	g.World().player.Pending = &Relocation{Target: core.Pt(3, 1), Ticks: 5}

	g.Render(screen)
	originX := (80 - GridSize*cellWidth) / 2
	px := originX + StartCell.X*cellWidth
	py := hudRows + StartCell.Y
	if got := screen.Get(px, py); got != glyphEscaping.left {
		t.Errorf("player cell = %q, expected %q", got, glyphEscaping.left)
	}
	if got := screen.Get(px+1, py); got != glyphEscaping.right {
		t.Errorf("player cell = %q, expected %q", got, glyphEscaping.right)
	}
}
