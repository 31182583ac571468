package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
)

// recordSession plays a scripted session the way the terminal host does and
// returns the recording plus the live final hash.
func recordSession(t *testing.T, seed int64, steps int) (Recording, uint64) {
	t.Helper()

	cfg := config.DefaultBlasterConfig()
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := start

	g := blaster.New()
	g.SetConfig(cfg)
	g.SetClock(func() time.Time { return now })
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})

	rec := NewRecorder(seed, cfg, start)
	for i := 0; i < steps; i++ {
		// Irregular frame pacing, as a real terminal delivers
		now = now.Add(time.Duration(14+i%5) * time.Millisecond)

		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%50 == 0:
			in.Set(core.ActionBomb)
		case i/25%4 == 0:
			in.Set(core.ActionRight)
		case i/25%4 == 1:
			in.Set(core.ActionDown)
		case i/25%4 == 2:
			in.Set(core.ActionLeft)
		case i%3 == 0:
			in.Set(core.ActionUp)
		}
		rec.Record(in, now)
		g.Step(in)
	}

	snap := g.Snapshot()
	rec.Finish(snap.Hash())
	return rec.Recording(), snap.Hash()
}

func TestRecorderSkipsEmptySteps(t *testing.T) {
	start := time.Now()
	r := NewRecorder(1, config.DefaultBlasterConfig(), start)

	r.Record(core.NewInputFrame(), start)
	in := core.NewInputFrame()
	in.Set(core.ActionBomb)
	in.Set(core.ActionUp)
	r.Record(in, start.Add(250*time.Millisecond))

	rec := r.Recording()
	assert.Equal(t, 2, rec.Steps)
	require.Len(t, rec.Frames, 1)
	assert.Equal(t, 1, rec.Frames[0].Step)
	assert.Equal(t, 250*time.Millisecond, rec.Frames[0].At)
	assert.Equal(t, []string{"Up", "Bomb"}, rec.Frames[0].Actions)
}

func TestReplayReproducesSession(t *testing.T) {
	rec, liveHash := recordSession(t, 2024, 1200)

	res, err := Run(rec)
	require.NoError(t, err)
	assert.Equal(t, liveHash, res.Hash)
	assert.True(t, res.Verified)
}

func TestReplaySurvivesYAMLRoundTrip(t *testing.T) {
	rec, liveHash := recordSession(t, 77, 900)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, Save(path, rec))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Frames, loaded.Frames)
	assert.Equal(t, rec.Config, loaded.Config)

	res, err := Run(loaded)
	require.NoError(t, err)
	assert.Equal(t, liveHash, res.Hash)
}

func TestReplayDetectsDivergence(t *testing.T) {
	rec, _ := recordSession(t, 5, 600)
	rec.Seed++

	_, err := Run(rec)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestReplayWithoutHashIsUnverified(t *testing.T) {
	rec, liveHash := recordSession(t, 8, 300)
	rec.FinalHash = 0

	res, err := Run(rec)
	require.NoError(t, err)
	assert.False(t, res.Verified)
	assert.Equal(t, liveHash, res.Hash)
}

func TestDecodeRejectsBadRecordings(t *testing.T) {
	good, _ := recordSession(t, 3, 120)

	tests := []struct {
		name   string
		mutate func(*Recording)
		err    error
	}{
		{"version", func(r *Recording) { r.Version = 99 }, ErrUnsupported},
		{"game", func(r *Recording) { r.Game = "snake" }, ErrUnsupported},
		{"unknown action", func(r *Recording) { r.Frames[0].Actions = []string{"Jump"} }, ErrCorrupt},
		{"out of order", func(r *Recording) { r.Frames[1].Step = r.Frames[0].Step }, ErrCorrupt},
		{"past the end", func(r *Recording) { r.Steps = r.Frames[0].Step }, ErrCorrupt},
		{"bad config", func(r *Recording) { r.Config.Bombs.FuseTicks = 0 }, ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := good
			rec.Frames = append([]Frame(nil), good.Frames...)
			rec.Frames[0].Actions = append([]string(nil), good.Frames[0].Actions...)
			tt.mutate(&rec)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, rec))
			_, err := Decode(&buf)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("frames: [oops"))
	assert.ErrorContains(t, err, "replay: cannot decode")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "replay: cannot open")
}
