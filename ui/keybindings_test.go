package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyBindingManager(t *testing.T) {
	km := NewKeyBindingManager()

	// Test single key binding
	handledSpace := false
	km.RegisterKeyBinding(
		KeyAction{
			name:    "toggle",
			handler: func() { handledSpace = true },
		},
		[]tcell.Key{},
		[]rune{' '},
	)

	if !km.HandleKey(runeKey(' ')) {
		t.Errorf("Expected space key to be handled")
	}
	if !handledSpace {
		t.Errorf("Expected handler to be called")
	}

	// Test 'gg' sequence
	restartCalled := false
	km.RegisterSequence(KeyAction{
		name:    "restart",
		handler: func() { restartCalled = true },
	}, "gg")

	// First 'g' should be pending
	if !km.HandleKey(runeKey('g')) {
		t.Errorf("Expected first 'g' to be consumed")
	}
	if restartCalled {
		t.Errorf("Handler should not be called yet")
	}

	// Second 'g' should trigger restart
	if !km.HandleKey(runeKey('g')) {
		t.Errorf("Expected second 'g' (gg sequence) to be handled")
	}
	if !restartCalled {
		t.Errorf("Expected handler to be called for 'gg'")
	}
}

func TestKeyBindingManagerSpecialKeys(t *testing.T) {
	km := NewKeyBindingManager()

	var rewinds, forwards int
	km.RegisterKeyBinding(KeyAction{name: "rewind", handler: func() { rewinds++ }}, []tcell.Key{tcell.KeyLeft}, nil)
	km.RegisterKeyBinding(KeyAction{name: "forward", handler: func() { forwards++ }}, []tcell.Key{tcell.KeyRight}, nil)

	km.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	km.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	km.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if rewinds != 1 || forwards != 2 {
		t.Errorf("Expected 1 rewind and 2 forwards, got %d and %d", rewinds, forwards)
	}

	if km.HandleKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)) {
		t.Errorf("Expected unbound key to pass through")
	}
}

func TestKeyBindingManagerReset(t *testing.T) {
	km := NewKeyBindingManager()

	restartCalled := false
	km.RegisterSequence(KeyAction{
		name:    "restart",
		handler: func() { restartCalled = true },
	}, "gg")

	// Press 'g'
	km.HandleKey(runeKey('g'))

	// Press non-'g' key - should reset pending
	handleOtherCalled := false
	km.RegisterKeyBinding(
		KeyAction{
			name:    "other",
			handler: func() { handleOtherCalled = true },
		},
		[]tcell.Key{},
		[]rune{'m'},
	)

	if !km.HandleKey(runeKey('m')) {
		t.Errorf("Expected 'm' to be handled")
	}
	if !handleOtherCalled {
		t.Errorf("Expected 'm' handler to be called")
	}
	if restartCalled {
		t.Errorf("restart should not have been called")
	}

	// A single 'g' after the reset must not complete the sequence
	km.HandleKey(runeKey('g'))
	km.ResetPending()
	km.HandleKey(runeKey('g'))
	if restartCalled {
		t.Errorf("restart should not fire across ResetPending")
	}
}
