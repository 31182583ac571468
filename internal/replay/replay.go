// Package replay records the inputs of a Pixel Blaster session to YAML and
// re-runs them headless. A run is fully determined by its seed, its config,
// the per-step actions and the clock readings the movement gate saw.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
)

// FormatVersion is written into every recording.
const FormatVersion = 1

var (
	// ErrUnsupported is returned for recordings this build cannot play.
	ErrUnsupported = errors.New("replay: unsupported recording")
	// ErrCorrupt is returned for recordings with inconsistent frames.
	ErrCorrupt = errors.New("replay: corrupt recording")
	// ErrMismatch is returned when playback diverges from the recorded run.
	ErrMismatch = errors.New("replay: playback diverged")
)

// Frame is one host step that carried input. Steps without input are not
// stored.
type Frame struct {
	Step    int           `yaml:"step"`
	At      time.Duration `yaml:"at"` // Clock offset from the start of the recording
	Actions []string      `yaml:"actions,flow"`
}

// Recording is a complete replayable session.
type Recording struct {
	Version   int                  `yaml:"version"`
	Game      string               `yaml:"game"`
	Seed      int64                `yaml:"seed"`
	Steps     int                  `yaml:"steps"`
	FinalHash uint64               `yaml:"final_hash,omitempty"`
	Config    config.BlasterConfig `yaml:"config"`
	Frames    []Frame              `yaml:"frames"`
}

// Recorder accumulates frames while a session runs.
type Recorder struct {
	rec   Recording
	start time.Time
}

// NewRecorder starts a recording. start is the clock reading that offsets
// are measured from.
func NewRecorder(seed int64, cfg config.BlasterConfig, start time.Time) *Recorder {
	return &Recorder{
		rec: Recording{
			Version: FormatVersion,
			Game:    blaster.GameID,
			Seed:    seed,
			Config:  cfg,
		},
		start: start,
	}
}

// Record appends the input of one host step taken at the given clock time.
func (r *Recorder) Record(in core.InputFrame, at time.Time) {
	step := r.rec.Steps
	r.rec.Steps++

	actions := in.List()
	if len(actions) == 0 {
		return
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Step:    step,
		At:      at.Sub(r.start),
		Actions: names,
	})
}

// Finish stamps the final state hash used to verify playback.
func (r *Recorder) Finish(hash uint64) {
	r.rec.FinalHash = hash
}

// Recording returns the frames recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return rec
}

// Encode writes rec as YAML.
func Encode(w io.Writer, rec Recording) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	return nil
}

// Decode reads a YAML recording and checks that it can be played.
func Decode(r io.Reader) (Recording, error) {
	var rec Recording
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return rec, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if err := rec.validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// Save writes rec to path.
func Save(path string, rec Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func (rec *Recording) validate() error {
	if rec.Version != FormatVersion {
		return fmt.Errorf("%w: version %d", ErrUnsupported, rec.Version)
	}
	if rec.Game != blaster.GameID {
		return fmt.Errorf("%w: game %q", ErrUnsupported, rec.Game)
	}
	if err := rec.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	last := -1
	for _, f := range rec.Frames {
		if f.Step <= last || f.Step >= rec.Steps {
			return fmt.Errorf("%w: frame step %d out of order", ErrCorrupt, f.Step)
		}
		last = f.Step
		for _, name := range f.Actions {
			if core.ParseAction(name) == core.ActionNone {
				return fmt.Errorf("%w: unknown action %q at step %d", ErrCorrupt, name, f.Step)
			}
		}
	}
	return nil
}
