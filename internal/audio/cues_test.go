package audio

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// drain streams s to completion and returns the sample count and peak level.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestCueLengths(t *testing.T) {
	c := NewCues(1)

	for kind, q := range cues {
		t.Run(kind.String(), func(t *testing.T) {
			s := c.streamer(kind)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			n, peak := drain(t, s)
			if want := sampleRate.N(q.duration); n != want {
				t.Errorf("sample count = %d, expected %d", n, want)
			}
			if peak == 0 {
				t.Error("cue should not be silent at full volume")
			}
		})
	}
}

func TestSpawnHasNoCue(t *testing.T) {
	if s := NewCues(1).streamer(pong.EventBallSpawned); s != nil {
		t.Error("ball spawn should be silent")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := NewCues(0).streamer(pong.EventPaddleBounce)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("peak = %f, expected silence", peak)
	}
}

func TestEventsIgnoredBeforeInit(t *testing.T) {
	c := NewCues(0.5)
	// Must not touch the speaker.
	c.OnEvent(pong.Event{Kind: pong.EventPaddleBounce})
	c.Close()
}

func TestVolumeClamped(t *testing.T) {
	if v := NewCues(3).volume; v != 1 {
		t.Errorf("volume = %f, expected 1", v)
	}
	if v := NewCues(-1).volume; v != 0 {
		t.Errorf("volume = %f, expected 0", v)
	}
}
