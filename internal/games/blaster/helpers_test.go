package blaster

import (
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// scriptedRNG replays fixed values. Once a queue is empty Intn returns 0
// and Float64 returns 0.99, which fails every default chance roll.
type scriptedRNG struct {
	ints   []int
	floats []float64
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// quietConfig returns the default config with enemy AI timers pushed out of
// reach, so scenarios only see what the test sets up.
func quietConfig() config.BlasterConfig {
	cfg := config.DefaultBlasterConfig()
	cfg.Enemies.MoveEvery = 1 << 30
	cfg.Enemies.BombEvery = 1 << 30
	return cfg
}

// openGrid returns an arena with only the border ring.
func openGrid() Grid {
	var g Grid
	for i := 0; i < GridSize; i++ {
		g[0][i] = TileIndestructible
		g[GridSize-1][i] = TileIndestructible
		g[i][0] = TileIndestructible
		g[i][GridSize-1] = TileIndestructible
	}
	return g
}

// newTestWorld returns a playing world on an open grid with the player at
// the start cell and one idle enemy parked in the far corner.
func newTestWorld(cfg config.BlasterConfig) (*World, *fakeClock, *scriptedRNG) {
	clk := newFakeClock()
	rng := &scriptedRNG{}
	w := NewWorld(cfg, rng, WithClock(clk.Now))
	w.session.Phase = PhasePlaying
	w.grid = openGrid()
	w.player = newPlayer(cfg.Player)
	w.enemies = []Enemy{{ID: 99, Pos: core.Pt(13, 13), MaxBombs: 2, BombRange: 2}}
	return w, clk, rng
}

// ticks advances the world n times with no input.
func ticks(w *World, n int) {
	for iter := 0; iter < n; iter++ {
		w.Tick(Intents{})
	}
}

func explosionCells(w *World) map[core.Point]bool {
	cells := make(map[core.Point]bool, len(w.explosions))
	for _, e := range w.explosions {
		cells[e.Pos] = true
	}
	return cells
}
