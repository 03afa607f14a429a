package core

// Key identifies a keyboard key by the name the terminal frontend reports
// for it ("w", "s", "up", "down", ...). The window frontend maps the same
// names onto its own key codes.
type Key string

// Common keys.
const (
	KeyW    Key = "w"
	KeyS    Key = "s"
	KeyUp   Key = "up"
	KeyDown Key = "down"
)

// Keyboard answers whether a key is currently held down.
type Keyboard interface {
	Pressed(k Key) bool
}

// KeySet is a Keyboard backed by a set of held keys.
// The zero value has no keys pressed.
type KeySet map[Key]bool

// NewKeySet returns a KeySet with the given keys held.
func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = true
	}
	return ks
}

// Pressed implements Keyboard.
func (ks KeySet) Pressed(k Key) bool {
	return ks[k]
}

// NoKeys is a Keyboard with nothing pressed.
var NoKeys Keyboard = KeySet(nil)
