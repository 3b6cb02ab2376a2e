package suggest

// TextInput is an in-memory Input.
type TextInput struct {
	value string
}

// Value implements Input.
func (t *TextInput) Value() string {
	return t.value
}

// SetValue implements Input.
func (t *TextInput) SetValue(value string) {
	t.value = value
}

// Row is one rendered suggestion.
type Row struct {
	Text     string
	onSelect func()
}

// Select invokes the row's selection callback.
func (r Row) Select() {
	if r.onSelect != nil {
		r.onSelect()
	}
}

// ListBox is an in-memory Box that keeps its rows in a slice.
type ListBox struct {
	visible bool
	rows    []Row
}

// Ensure the in-memory types satisfy the controller's interfaces.
var (
	_ Input = (*TextInput)(nil)
	_ Box   = (*ListBox)(nil)
)

// Clear implements Box.
func (b *ListBox) Clear() {
	b.rows = nil
}

// SetVisible implements Box.
func (b *ListBox) SetVisible(visible bool) {
	b.visible = visible
}

// Visible implements Box.
func (b *ListBox) Visible() bool {
	return b.visible
}

// AddRow implements Box.
func (b *ListBox) AddRow(text string, onSelect func()) {
	b.rows = append(b.rows, Row{Text: text, onSelect: onSelect})
}

// Rows returns the rendered rows in display order.
func (b *ListBox) Rows() []Row {
	return b.rows
}

// Len returns the number of rendered rows.
func (b *ListBox) Len() int {
	return len(b.rows)
}

// Texts returns the text of every rendered row.
func (b *ListBox) Texts() []string {
	texts := make([]string, len(b.rows))
	for i, row := range b.rows {
		texts[i] = row.Text
	}
	return texts
}
