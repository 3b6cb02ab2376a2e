package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Lookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionAccept},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionDismiss},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionSelectNext},
		{tea.KeyMsg{Type: tea.KeyTab}, ActionSelectNext},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionSelectPrevious},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, ActionSelectPrevious},
		{tea.KeyMsg{Type: tea.KeyBackspace}, ActionDeleteCharacterBackward},
		{tea.KeyMsg{Type: tea.KeyCtrlW}, ActionDeleteWordBackward},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlV}, ActionPaste},
		{tea.KeyMsg{Type: tea.KeyHome}, ActionLineStart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, km.Lookup(tt.msg))
		})
	}
}

func TestNewKeyMap_Custom(t *testing.T) {
	km := NewKeyMap([]KeyBinding{
		{Keys: []string{"ctrl+j"}, Action: ActionAccept},
	})

	assert.Equal(t, ActionAccept, km.Lookup(tea.KeyMsg{Type: tea.KeyCtrlJ}))
	assert.Equal(t, ActionNone, km.Lookup(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "None", ActionNone.String())
	assert.Equal(t, "Accept", ActionAccept.String())
	assert.Equal(t, "SelectNext", ActionSelectNext.String())
	assert.Equal(t, "Unknown", Action(999).String())
}
