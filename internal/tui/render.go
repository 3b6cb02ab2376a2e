package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	colorGreen = lipgloss.Color("10")
	colorGray  = lipgloss.Color("8")
)

// RenderConfig holds the styles used by the renderer.
type RenderConfig struct {
	PromptStyle lipgloss.Style
	TextStyle   lipgloss.Style
	CursorStyle lipgloss.Style

	// BoxStyle wraps the suggestion rows
	BoxStyle lipgloss.Style

	// SelectedStyle is applied to the highlighted row
	SelectedStyle lipgloss.Style

	// HintStyle is used for the key hint line under the box
	HintStyle lipgloss.Style
}

// DefaultRenderConfig returns the default styles.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle: lipgloss.NewStyle().Foreground(colorGreen),
		TextStyle:   lipgloss.NewStyle(),
		CursorStyle: lipgloss.NewStyle().Reverse(true),
		BoxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
		SelectedStyle: lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		HintStyle:     lipgloss.NewStyle().Foreground(colorGray),
	}
}

// Renderer turns model state into terminal output.
type Renderer struct {
	config RenderConfig
	width  int
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(config RenderConfig) *Renderer {
	return &Renderer{config: config, width: 80}
}

// SetWidth updates the terminal width.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Width returns the terminal width used for rendering.
func (r *Renderer) Width() int {
	return r.width
}

// RenderInputLine renders the prompt and the buffer with a block cursor.
func (r *Renderer) RenderInputLine(prompt string, buffer *Buffer) string {
	runes := buffer.Runes()
	pos := clamp(buffer.Pos(), 0, len(runes))

	var b strings.Builder
	b.WriteString(r.config.PromptStyle.Render(prompt))
	b.WriteString(r.config.TextStyle.Render(string(runes[:pos])))

	if pos < len(runes) {
		b.WriteString(r.config.CursorStyle.Render(string(runes[pos])))
		b.WriteString(r.config.TextStyle.Render(string(runes[pos+1:])))
	} else {
		b.WriteString(r.config.CursorStyle.Render(" "))
	}

	return b.String()
}

// RenderBox renders the visible suggestion rows, scrolling around the
// highlighted row when there are more than maxRows. Returns "" when the
// box is hidden.
func (r *Renderer) RenderBox(box *SuggestionBox, maxRows int) string {
	if !box.Visible() || box.Len() == 0 {
		return ""
	}
	if maxRows <= 0 {
		maxRows = 6
	}

	texts := box.Texts()
	total := len(texts)
	start, end := calculateVisibleWindow(box.Selected(), total, maxRows)

	// border and the two-column selection marker
	rowWidth := maxInt(1, r.width-6)

	var content strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			content.WriteString("\n")
		}

		text := truncate.StringWithTail(texts[i], uint(rowWidth), "…")
		if i == box.Selected() {
			content.WriteString("> ")
			content.WriteString(r.config.SelectedStyle.Render(text))
		} else {
			content.WriteString("  ")
			content.WriteString(text)
		}
	}

	rendered := r.config.BoxStyle.Render(content.String())
	if start > 0 || end < total {
		rendered += "\n" + r.config.HintStyle.Render(
			strconv.Itoa(start+1)+"-"+strconv.Itoa(end)+" of "+strconv.Itoa(total),
		)
	}
	return rendered
}

// RenderFullView renders the input line followed by the suggestion box.
func (r *Renderer) RenderFullView(prompt string, buffer *Buffer, box *SuggestionBox, maxRows int) string {
	line := r.RenderInputLine(prompt, buffer)
	boxView := r.RenderBox(box, maxRows)
	if boxView == "" {
		return line + "\n"
	}
	return line + "\n" + boxView + "\n"
}

// calculateVisibleWindow determines the start and end indices for a scrolling window.
func calculateVisibleWindow(selected, total, maxVisible int) (start, end int) {
	if total <= maxVisible {
		return 0, total
	}
	if selected < 0 {
		return 0, maxVisible
	}

	// Try to keep selection roughly in the middle
	if selected < 2 {
		start = 0
	} else if selected >= total-2 {
		start = total - maxVisible
	} else {
		start = selected - 1
	}

	end = start + maxVisible
	if end > total {
		end = total
		start = maxInt(0, end-maxVisible)
	}

	return start, end
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
