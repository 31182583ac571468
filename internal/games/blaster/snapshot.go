package blaster

// Snapshot is a read-only copy of the world after a completed tick. The
// renderer and replay tooling only ever see snapshots.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Level     int

	Grid       Grid
	Player     Player
	Enemies    []Enemy
	Bombs      []Bomb
	Explosions []Explosion
	PowerUps   []PowerUp
}

// Snapshot returns a deep copy of the current state.
func (w *World) Snapshot() Snapshot {
	player := w.player
	if w.player.Pending != nil {
		pending := *w.player.Pending
		player.Pending = &pending
	}

	return Snapshot{
		Tick:       w.tick,
		Phase:      w.session.Phase,
		Score:      w.session.Score,
		HighScore:  w.session.HighScore,
		Level:      w.session.Level,
		Grid:       w.grid,
		Player:     player,
		Enemies:    append([]Enemy(nil), w.enemies...),
		Bombs:      append([]Bomb(nil), w.bombs...),
		Explosions: append([]Explosion(nil), w.explosions...),
		PowerUps:   append([]PowerUp(nil), w.powerUps...),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Wall-clock fields are left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			h = h*31 + uint64(snap.Grid[y][x])
		}
	}

	p := snap.Player
	for _, v := range []int{p.Pos.X, p.Pos.Y, p.Lives, p.BombCount, p.MaxBombs, p.BombRange, p.Speed, p.ShieldTimer} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if p.Pending != nil {
		h = h*31 + uint64(p.Pending.Target.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Pending.Target.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Pending.Ticks)    //#nosec G115 -- hash computation
	}

	for _, e := range snap.Enemies {
		for _, v := range []int{e.ID, e.Pos.X, e.Pos.Y, int(e.Facing), e.MoveTimer, e.BombTimer, e.BombCount} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	for _, b := range snap.Bombs {
		for _, v := range []int{b.Pos.X, b.Pos.Y, b.Timer, b.Range, int(b.Owner)} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
		if b.Mega {
			h = h*31 + 1
		}
	}

	for _, e := range snap.Explosions {
		h = h*31 + uint64(e.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Pos.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Timer) //#nosec G115 -- hash computation
	}

	for _, pu := range snap.PowerUps {
		for _, v := range []int{pu.Pos.X, pu.Pos.Y, int(pu.Kind), pu.Timer} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	return h
}
