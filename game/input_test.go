package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIntentsFromKeys tests bitmask decoding.
func TestIntentsFromKeys(t *testing.T) {
	in := IntentsFromKeys(KeyLeft | KeySpecial)
	assert.Equal(t, Intents{Left: true, Special: true}, in)
	assert.Equal(t, Intents{}, IntentsFromKeys(0))
}

// TestKeyLatch_FireIsEdgeTriggered tests that holding fire fires once.
func TestKeyLatch_FireIsEdgeTriggered(t *testing.T) {
	var l KeyLatch
	l.Down(KeyFire)
	assert.True(t, l.Intents().Fire)

	l.Down(KeyFire) // key repeat
	assert.False(t, l.Intents().Fire)

	l.Up(KeyFire)
	l.Down(KeyFire)
	assert.True(t, l.Intents().Fire)
}

// TestKeyLatch_TapBetweenFrames tests that a press released before the frame
// still fires.
func TestKeyLatch_TapBetweenFrames(t *testing.T) {
	var l KeyLatch
	l.Down(KeySpecial)
	l.Up(KeySpecial)
	assert.True(t, l.Intents().Special)
}

// TestKeyLatch_MovementIsHeld tests that movement follows the held state.
func TestKeyLatch_MovementIsHeld(t *testing.T) {
	var l KeyLatch
	l.Down(KeyLeft)
	assert.True(t, l.Intents().Left)
	assert.True(t, l.Intents().Left)

	l.Up(KeyLeft)
	assert.False(t, l.Intents().Left)

	l.Down(KeyRight)
	l.Reset()
	assert.Equal(t, Intents{}, l.Intents())
}

// TestTranslateKeyCode tests alternative key mapping.
func TestTranslateKeyCode(t *testing.T) {
	assert.Equal(t, CodeLeft, TranslateKeyCode(65))
	assert.Equal(t, CodeRight, TranslateKeyCode(68))
	assert.Equal(t, CodeSpace, TranslateKeyCode(90))
	assert.Equal(t, CodeP, TranslateKeyCode(CodeP))

	assert.Equal(t, KeyFire, KeyBit(TranslateKeyCode(90)))
	assert.Equal(t, KeySpecial, KeyBit(CodeX))
	assert.Zero(t, KeyBit(CodeP))
}
