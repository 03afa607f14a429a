package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// EventKind names something that happened during a frame.
type EventKind int

const (
	EventBallSpawned EventKind = iota
	EventWallBounce
	EventPaddleBounce
	EventBallDespawned
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBallSpawned:
		return "ball_spawned"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBallDespawned:
		return "ball_despawned"
	default:
		return "unknown"
	}
}

// Event describes a state change produced by one of the frame stages.
// Side is the paddle that was hit for EventPaddleBounce and the side the
// ball left through for EventBallDespawned; it is meaningless otherwise.
type Event struct {
	Kind EventKind
	Tick uint64
	Side Side
	Pos  core.Vec2
	Vel  core.Vec2
}

// Listener receives events after each frame, in stage order.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}
