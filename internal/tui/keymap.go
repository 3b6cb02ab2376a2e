package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (used when a key doesn't match any binding).
	ActionNone Action = iota

	// Cursor movement
	ActionCharacterForward  // Right, Ctrl+F
	ActionCharacterBackward // Left, Ctrl+B
	ActionLineStart         // Home, Ctrl+A
	ActionLineEnd           // End, Ctrl+E

	// Deletion
	ActionDeleteCharacterBackward // Backspace, Ctrl+H
	ActionDeleteCharacterForward  // Delete, Ctrl+D
	ActionDeleteWordBackward      // Ctrl+W, Alt+Backspace
	ActionDeleteBeforeCursor      // Ctrl+U
	ActionDeleteAfterCursor       // Ctrl+K

	// Suggestion box
	ActionSelectPrevious // Up, Ctrl+P
	ActionSelectNext     // Down, Ctrl+N, Tab
	ActionAccept         // Enter: pick the highlighted row, or submit
	ActionDismiss        // Esc: hide the box

	ActionQuit  // Ctrl+C
	ActionPaste // Ctrl+V
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCharacterForward:
		return "CharacterForward"
	case ActionCharacterBackward:
		return "CharacterBackward"
	case ActionLineStart:
		return "LineStart"
	case ActionLineEnd:
		return "LineEnd"
	case ActionDeleteCharacterBackward:
		return "DeleteCharacterBackward"
	case ActionDeleteCharacterForward:
		return "DeleteCharacterForward"
	case ActionDeleteWordBackward:
		return "DeleteWordBackward"
	case ActionDeleteBeforeCursor:
		return "DeleteBeforeCursor"
	case ActionDeleteAfterCursor:
		return "DeleteAfterCursor"
	case ActionSelectPrevious:
		return "SelectPrevious"
	case ActionSelectNext:
		return "SelectNext"
	case ActionAccept:
		return "Accept"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	case ActionPaste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// KeyBinding maps key strings (as produced by tea.KeyMsg.String) to an action.
type KeyBinding struct {
	Keys   []string
	Action Action
}

// KeyMap resolves key presses to actions.
type KeyMap struct {
	bindings []KeyBinding
	lookup   map[string]Action
}

// NewKeyMap creates a new KeyMap with the given bindings.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{
		bindings: bindings,
		lookup:   make(map[string]Action),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			km.lookup[key] = b.Action
		}
	}
	return km
}

// DefaultKeyMap returns a KeyMap with Emacs-style editing keys.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"right", "ctrl+f"}, Action: ActionCharacterForward},
		{Keys: []string{"left", "ctrl+b"}, Action: ActionCharacterBackward},
		{Keys: []string{"home", "ctrl+a"}, Action: ActionLineStart},
		{Keys: []string{"end", "ctrl+e"}, Action: ActionLineEnd},

		{Keys: []string{"backspace", "ctrl+h"}, Action: ActionDeleteCharacterBackward},
		{Keys: []string{"delete", "ctrl+d"}, Action: ActionDeleteCharacterForward},
		{Keys: []string{"ctrl+w", "alt+backspace"}, Action: ActionDeleteWordBackward},
		{Keys: []string{"ctrl+u"}, Action: ActionDeleteBeforeCursor},
		{Keys: []string{"ctrl+k"}, Action: ActionDeleteAfterCursor},

		{Keys: []string{"up", "ctrl+p", "shift+tab"}, Action: ActionSelectPrevious},
		{Keys: []string{"down", "ctrl+n", "tab"}, Action: ActionSelectNext},
		{Keys: []string{"enter"}, Action: ActionAccept},
		{Keys: []string{"esc"}, Action: ActionDismiss},

		{Keys: []string{"ctrl+c"}, Action: ActionQuit},
		{Keys: []string{"ctrl+v"}, Action: ActionPaste},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}
