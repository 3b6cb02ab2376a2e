package tui

import (
	"unicode"

	"github.com/atinylittleshell/stocksuggest/internal/suggest"
)

// Buffer manages the query text and cursor position of the input line.
// It is the suggest.Input of the terminal host.
type Buffer struct {
	// runes stores the text content as a slice of runes
	runes []rune
	// pos is the cursor position (index in runes)
	pos int
}

var _ suggest.Input = (*Buffer)(nil)

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{runes: []rune{}}
}

// Value implements suggest.Input.
func (b *Buffer) Value() string {
	return string(b.runes)
}

// SetValue implements suggest.Input. The cursor moves to the end.
func (b *Buffer) SetValue(text string) {
	b.runes = []rune(text)
	b.pos = len(b.runes)
}

// Runes returns a copy of the text content.
func (b *Buffer) Runes() []rune {
	result := make([]rune, len(b.runes))
	copy(result, b.runes)
	return result
}

// Len returns the length of the text in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetPos sets the cursor position, clamped to [0, Len()].
func (b *Buffer) SetPos(pos int) {
	b.pos = clamp(pos, 0, len(b.runes))
}

// CursorStart moves the cursor to the start of the buffer.
func (b *Buffer) CursorStart() {
	b.pos = 0
}

// CursorEnd moves the cursor to the end of the buffer.
func (b *Buffer) CursorEnd() {
	b.pos = len(b.runes)
}

// InsertRunes inserts runes at the cursor and moves the cursor past them.
func (b *Buffer) InsertRunes(runes []rune) {
	if len(runes) == 0 {
		return
	}

	result := make([]rune, len(b.runes)+len(runes))
	copy(result, b.runes[:b.pos])
	copy(result[b.pos:], runes)
	copy(result[b.pos+len(runes):], b.runes[b.pos:])

	b.runes = result
	b.pos += len(runes)
}

// DeleteCharBackward deletes the character before the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharBackward() bool {
	if b.pos == 0 {
		return false
	}
	b.runes = append(b.runes[:b.pos-1], b.runes[b.pos:]...)
	b.pos--
	return true
}

// DeleteCharForward deletes the character under the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharForward() bool {
	if b.pos >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.pos], b.runes[b.pos+1:]...)
	return true
}

// DeleteWordBackward deletes from the start of the previous word to the
// cursor, skipping any whitespace directly before the cursor first.
func (b *Buffer) DeleteWordBackward() bool {
	if b.pos == 0 {
		return false
	}

	start := b.pos
	for start > 0 && unicode.IsSpace(b.runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(b.runes[start-1]) {
		start--
	}

	b.runes = append(b.runes[:start], b.runes[b.pos:]...)
	b.pos = start
	return true
}

// DeleteBeforeCursor deletes everything before the cursor.
func (b *Buffer) DeleteBeforeCursor() bool {
	if b.pos == 0 {
		return false
	}
	b.runes = append([]rune{}, b.runes[b.pos:]...)
	b.pos = 0
	return true
}

// DeleteAfterCursor deletes everything from the cursor to the end.
func (b *Buffer) DeleteAfterCursor() bool {
	if b.pos >= len(b.runes) {
		return false
	}
	b.runes = b.runes[:b.pos]
	return true
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
