package tui

import (
	"github.com/atinylittleshell/stocksuggest/internal/suggest"
)

// SuggestionBox is the suggest.Box of the terminal host. On top of the rows
// it tracks which one is highlighted for keyboard selection.
type SuggestionBox struct {
	suggest.ListBox

	// selected is the highlighted row (-1 if none)
	selected int
}

var _ suggest.Box = (*SuggestionBox)(nil)

// NewSuggestionBox creates a hidden, empty box.
func NewSuggestionBox() *SuggestionBox {
	return &SuggestionBox{selected: -1}
}

// Clear implements suggest.Box and drops the highlight.
func (b *SuggestionBox) Clear() {
	b.ListBox.Clear()
	b.selected = -1
}

// SetVisible implements suggest.Box. Hiding drops the highlight.
func (b *SuggestionBox) SetVisible(visible bool) {
	b.ListBox.SetVisible(visible)
	if !visible {
		b.selected = -1
	}
}

// Selected returns the highlighted row index, -1 if none.
func (b *SuggestionBox) Selected() int {
	return b.selected
}

// Next highlights the following row, wrapping to the first.
func (b *SuggestionBox) Next() {
	if !b.Visible() || b.Len() == 0 {
		return
	}
	b.selected = (b.selected + 1) % b.Len()
}

// Prev highlights the preceding row, wrapping to the last.
func (b *SuggestionBox) Prev() {
	if !b.Visible() || b.Len() == 0 {
		return
	}
	b.selected--
	if b.selected < 0 {
		b.selected = b.Len() - 1
	}
}

// SelectCurrent invokes the highlighted row's callback.
// Returns false if nothing is highlighted.
func (b *SuggestionBox) SelectCurrent() bool {
	if !b.Visible() || b.selected < 0 || b.selected >= b.Len() {
		return false
	}
	b.Rows()[b.selected].Select()
	return true
}
