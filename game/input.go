package game

// Intents is the abstract input for one frame. Movement is level-sensitive
// (held), firing is edge-sensitive (pressed this frame only).
type Intents struct {
	Left    bool
	Right   bool
	Fire    bool
	Special bool
}

// Key bits for packing Intents into a single word.
const (
	KeyLeft uint16 = 1 << iota
	KeyRight
	KeyFire
	KeySpecial
)

// IntentsFromKeys decodes a key bitmask.
func IntentsFromKeys(bits uint16) Intents {
	return Intents{
		Left:    bits&KeyLeft != 0,
		Right:   bits&KeyRight != 0,
		Fire:    bits&KeyFire != 0,
		Special: bits&KeySpecial != 0,
	}
}

// Browser key codes the canonical controls are expressed in.
const (
	CodeEnter = 13
	CodeEsc   = 27
	CodeSpace = 32
	CodeLeft  = 37
	CodeRight = 39
	CodeP     = 80
	CodeX     = 88
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	65: CodeLeft,  // A
	68: CodeRight, // D
	74: CodeLeft,  // J
	76: CodeRight, // L
	52: CodeLeft,  // 4
	54: CodeRight, // 6
	90: CodeSpace, // Z
	48: CodeSpace, // 0
	67: CodeX,     // C
	17: CodeX,     // Ctrl
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// KeyLatch turns raw held-key state into Intents. Fire and Special are
// reported only on the frame their key goes down; holding them does not
// auto-repeat.
type KeyLatch struct {
	held    uint16
	pressed uint16
}

// Down records a key press. Repeated Down calls for a held key are ignored.
func (l *KeyLatch) Down(bit uint16) {
	if l.held&bit == 0 {
		l.pressed |= bit
	}
	l.held |= bit
}

// Up records a key release.
func (l *KeyLatch) Up(bit uint16) {
	l.held &^= bit
}

// Reset drops every held and pending key, e.g. when the window loses focus.
func (l *KeyLatch) Reset() {
	l.held, l.pressed = 0, 0
}

// Intents returns this frame's intents and consumes the pending presses.
func (l *KeyLatch) Intents() Intents {
	bits := l.held&(KeyLeft|KeyRight) | l.pressed&(KeyFire|KeySpecial)
	l.pressed = 0
	return IntentsFromKeys(bits)
}

// KeyBit returns the intent bit for a canonical key code, 0 when the code
// drives no intent.
func KeyBit(code int) uint16 {
	switch code {
	case CodeLeft:
		return KeyLeft
	case CodeRight:
		return KeyRight
	case CodeSpace:
		return KeyFire
	case CodeX:
		return KeySpecial
	}
	return 0
}
