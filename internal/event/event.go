// Package event defines the input and tick events consumed by the race controller.
package event

// Kind distinguishes key input from clock ticks.
type Kind int

const (
	KindKey Kind = iota
	KindTick
)

// KeyCode identifies the pressed key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyChar
	KeyBackspace
	KeyEnter
	KeyTab
	KeyEsc
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModNone    Modifiers = 0
	ModControl Modifiers = 1 << iota
	ModAlt
)

// Key is a single key press. Rune is set only for KeyChar.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifiers
}

// Event is either a key press or a tick.
type Event struct {
	Kind Kind
	Key  Key
}

// KeyInput wraps a key press in an Event.
func KeyInput(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// Tick returns a tick Event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// Char is an unmodified character key.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// Ctrl is a character key held with Control.
func Ctrl(r rune) Key {
	return Key{Code: KeyChar, Rune: r, Mod: ModControl}
}

// Backspace is an unmodified backspace key.
func Backspace() Key {
	return Key{Code: KeyBackspace}
}

// IsChar reports whether k is the unmodified character r.
func (k Key) IsChar(r rune) bool {
	return k.Code == KeyChar && k.Mod == ModNone && k.Rune == r
}
