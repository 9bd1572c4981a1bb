package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyAction represents an action that can be triggered by keybindings
type KeyAction struct {
	name    string
	handler func()
}

// KeyBindingManager manages all keybindings and dispatches events
type KeyBindingManager struct {
	bindings  map[tcell.Key]KeyAction // special key -> action mapping
	runeMap   map[rune]KeyAction      // rune -> action mapping
	sequences map[string]KeyAction    // multi-key bindings like 'gg'
	pending   string                  // keys typed so far towards a sequence
}

// NewKeyBindingManager creates a new key binding manager
func NewKeyBindingManager() *KeyBindingManager {
	return &KeyBindingManager{
		bindings:  make(map[tcell.Key]KeyAction),
		runeMap:   make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}
}

// RegisterKeyBinding registers a single key binding
func (km *KeyBindingManager) RegisterKeyBinding(action KeyAction, keys []tcell.Key, runes []rune) {
	for _, key := range keys {
		km.bindings[key] = action
	}
	for _, r := range runes {
		km.runeMap[r] = action
	}
}

// RegisterSequence binds a run of rune keys typed one after another
func (km *KeyBindingManager) RegisterSequence(action KeyAction, seq string) {
	km.sequences[seq] = action
}

// HandleKey handles a keyboard event and returns true if it was consumed
func (km *KeyBindingManager) HandleKey(event *tcell.EventKey) bool {
	if event.Key() != tcell.KeyRune {
		km.pending = ""
		if action, ok := km.bindings[event.Key()]; ok {
			action.handler()
			return true
		}
		return false
	}

	typed := km.pending + string(event.Rune())
	if action, ok := km.sequences[typed]; ok {
		km.pending = ""
		action.handler()
		return true
	}
	if km.isSequencePrefix(typed) {
		km.pending = typed
		return true
	}

	// Not a sequence, try the current rune as standalone
	km.pending = ""
	if action, ok := km.runeMap[event.Rune()]; ok {
		action.handler()
		return true
	}
	return false
}

func (km *KeyBindingManager) isSequencePrefix(typed string) bool {
	for seq := range km.sequences {
		if len(seq) > len(typed) && strings.HasPrefix(seq, typed) {
			return true
		}
	}
	return false
}

// ResetPending resets the pending key sequence
func (km *KeyBindingManager) ResetPending() {
	km.pending = ""
}
