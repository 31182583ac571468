package replay

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
)

// replayEpoch anchors clock offsets during playback. Only differences
// between readings matter to the simulation.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Result is the outcome of a playback.
type Result struct {
	Snapshot blaster.Snapshot
	Hash     uint64
	Verified bool // A final hash was recorded and matched
}

// Run replays rec on a fresh game with a manual clock.
func Run(rec Recording) (Result, error) {
	if err := rec.validate(); err != nil {
		return Result{}, err
	}

	now := replayEpoch
	g := blaster.New()
	g.SetConfig(rec.Config)
	g.SetClock(func() time.Time { return now })
	g.Reset(core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: core.DefaultConfig().TickRate,
		Seed:     rec.Seed,
	})

	frames := rec.Frames
	for step, steps := 0, rec.Steps; step < steps; step++ {
		in := core.NewInputFrame()
		if len(frames) > 0 && frames[0].Step == step {
			now = replayEpoch.Add(frames[0].At)
			for _, name := range frames[0].Actions {
				in.Set(core.ParseAction(name))
			}
			frames = frames[1:]
		}
		g.Step(in)
	}

	snap := g.Snapshot()
	res := Result{Snapshot: snap, Hash: snap.Hash()}
	if rec.FinalHash != 0 {
		if res.Hash != rec.FinalHash {
			return res, fmt.Errorf("%w: final hash %d, recorded %d", ErrMismatch, res.Hash, rec.FinalHash)
		}
		res.Verified = true
	}
	return res, nil
}
