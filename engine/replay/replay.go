// Package replay records the input stream of a session and plays it back. A seed plus
// the exact per-frame inputs reproduce a session tick for tick.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/sim"
)

// Version is written into every header; files of another version are rejected
const Version = 1

var ErrBadVersion = errors.New("replay: unsupported version")

type Header struct {
	Version int   `msgpack:"v"`
	Seed    int64 `msgpack:"seed"`
}

// Frame is the input applied on one simulation tick
type Frame struct {
	Tick  uint64     `msgpack:"t"`
	Input core.Input `msgpack:"in"`
}

// Replay is a fully loaded recording
type Replay struct {
	Header
	Frames []Frame
}

// Recorder streams frames to a writer as they are played
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder creates a replay file and writes its header
func NewRecorder(path string, seed int64) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay: %w", err)
	}
	r, err := newRecorder(f, seed)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewStreamRecorder records to an arbitrary writer; Close flushes but does not close it
func NewStreamRecorder(w io.Writer, seed int64) (*Recorder, error) {
	return newRecorder(w, seed)
}

func newRecorder(w io.Writer, seed int64) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	r := &Recorder{writer: bw, enc: msgpack.NewEncoder(bw)}
	if err := r.enc.Encode(&Header{Version: Version, Seed: seed}); err != nil {
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return r, nil
}

// Record appends the input applied on the given tick
func (r *Recorder) Record(tick uint64, in core.Input) error {
	if err := r.enc.Encode(&Frame{Tick: tick, Input: in}); err != nil {
		return fmt.Errorf("write replay frame %d: %w", tick, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far
func (r *Recorder) Frames() int { return r.frames }

// Close flushes and closes the replay file
func (r *Recorder) Close() error {
	if err := r.writer.Flush(); err != nil {
		if r.file != nil {
			r.file.Close()
		}
		return fmt.Errorf("flush replay: %w", err)
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Load reads a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	rp, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("replay loaded", "path", path, "seed", rp.Seed, "frames", len(rp.Frames))
	return rp, nil
}

// Read decodes a replay stream. A truncated trailing frame is dropped.
func Read(r io.Reader) (*Replay, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	rp := &Replay{}
	if err := dec.Decode(&rp.Header); err != nil {
		return nil, fmt.Errorf("read replay header: %w", err)
	}
	if rp.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, rp.Version)
	}
	for {
		var fr Frame
		if err := dec.Decode(&fr); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				slog.Warn("replay stream ended early", "frames", len(rp.Frames), "err", err)
			}
			break
		}
		rp.Frames = append(rp.Frames, fr)
	}
	return rp, nil
}

// Run plays every frame into a fresh session and returns its result. Frames after
// the game ends are ignored.
func Run(rp *Replay) sim.Result {
	s := sim.New(rp.Seed)
	for _, fr := range rp.Frames {
		if s.Over() {
			break
		}
		s.Step(fr.Input)
	}
	return s.Result()
}
