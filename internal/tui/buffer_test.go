package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SetValue(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, "", b.Value())
	assert.Equal(t, 0, b.Pos())

	b.SetValue("AAPL")
	assert.Equal(t, "AAPL", b.Value())
	assert.Equal(t, 4, b.Pos())
	assert.Equal(t, 4, b.Len())
}

func TestBuffer_InsertRunes(t *testing.T) {
	b := NewBuffer()
	b.InsertRunes([]rune("TC"))
	b.SetPos(1)
	b.InsertRunes([]rune("ITA"))
	assert.Equal(t, "TITAC", b.Value())
	assert.Equal(t, 4, b.Pos())

	b.InsertRunes(nil)
	assert.Equal(t, "TITAC", b.Value())
}

func TestBuffer_SetPosClamps(t *testing.T) {
	b := NewBuffer()
	b.SetValue("INFY")

	b.SetPos(-3)
	assert.Equal(t, 0, b.Pos())

	b.SetPos(99)
	assert.Equal(t, 4, b.Pos())
}

func TestBuffer_Delete(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		pos      int
		op       func(*Buffer) bool
		expected string
		wantPos  int
		deleted  bool
	}{
		{"backward", "TCS", 3, (*Buffer).DeleteCharBackward, "TC", 2, true},
		{"backward at start", "TCS", 0, (*Buffer).DeleteCharBackward, "TCS", 0, false},
		{"forward", "TCS", 0, (*Buffer).DeleteCharForward, "CS", 0, true},
		{"forward at end", "TCS", 3, (*Buffer).DeleteCharForward, "TCS", 3, false},
		{"word backward", "TATA STEEL", 10, (*Buffer).DeleteWordBackward, "TATA ", 5, true},
		{"word backward skips spaces", "TATA  ", 6, (*Buffer).DeleteWordBackward, "", 0, true},
		{"before cursor", "HDFCBANK", 4, (*Buffer).DeleteBeforeCursor, "BANK", 0, true},
		{"after cursor", "HDFCBANK", 4, (*Buffer).DeleteAfterCursor, "HDFC", 4, true},
		{"after cursor at end", "HDFC", 4, (*Buffer).DeleteAfterCursor, "HDFC", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.SetValue(tt.value)
			b.SetPos(tt.pos)

			assert.Equal(t, tt.deleted, tt.op(b))
			assert.Equal(t, tt.expected, b.Value())
			assert.Equal(t, tt.wantPos, b.Pos())
		})
	}
}

func TestBuffer_RunesIsCopy(t *testing.T) {
	b := NewBuffer()
	b.SetValue("ITC")

	runes := b.Runes()
	runes[0] = 'X'
	assert.Equal(t, "ITC", b.Value())
}

func TestBuffer_CursorStartEnd(t *testing.T) {
	b := NewBuffer()
	b.SetValue("WIPRO")

	b.CursorStart()
	assert.Equal(t, 0, b.Pos())

	b.CursorEnd()
	assert.Equal(t, 5, b.Pos())
}
