// Package audio plays short sound cues for bounces and missed balls.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const sampleRate = beep.SampleRate(44100)

// cue is a single sine blip.
type cue struct {
	freq     float64
	duration time.Duration
}

var cues = map[pong.EventKind]cue{
	pong.EventPaddleBounce:  {freq: 880, duration: 50 * time.Millisecond},
	pong.EventWallBounce:    {freq: 440, duration: 40 * time.Millisecond},
	pong.EventBallDespawned: {freq: 110, duration: 250 * time.Millisecond},
}

// Cues turns simulation events into sounds. It implements pong.Listener.
// Until Init succeeds every event is ignored, so a machine without an audio
// device simply plays silently.
type Cues struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
}

// NewCues creates a cue player. Volume is clamped to [0, 1].
func NewCues(volume float64) *Cues {
	return &Cues{volume: math.Max(0, math.Min(1, volume))}
}

// Init opens the speaker.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// Close stops pending sounds and releases the speaker.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// OnEvent plays the cue for ev, if it has one.
func (c *Cues) OnEvent(ev pong.Event) {
	c.mu.Lock()
	ready := c.initialized
	c.mu.Unlock()
	if !ready {
		return
	}

	if s := c.streamer(ev.Kind); s != nil {
		speaker.Play(s)
	}
}

// streamer builds the finite streamer for an event kind, or nil if the kind
// is silent.
func (c *Cues) streamer(kind pong.EventKind) beep.Streamer {
	q, ok := cues[kind]
	if !ok {
		return nil
	}
	tone, err := generators.SineTone(sampleRate, q.freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(q.duration), tone),
		Base:     2,
		Volume:   math.Log2(math.Max(c.volume, 1e-6)),
		Silent:   c.volume == 0,
	}
}
