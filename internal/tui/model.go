// Package tui hosts the suggestion controller in a terminal.
// The line input plays the role of the page's text field and the rendered
// list under it plays the suggestion box.
package tui

import (
	"github.com/atinylittleshell/stocksuggest/internal/suggest"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ResultType indicates how the session ended.
type ResultType int

const (
	// ResultNone indicates no result yet (still editing).
	ResultNone ResultType = iota
	// ResultSubmit indicates Enter with no highlighted suggestion.
	ResultSubmit
	// ResultInterrupt indicates Ctrl+C.
	ResultInterrupt
)

// Result contains the outcome of an input session.
type Result struct {
	Type  ResultType
	Value string
}

// Config holds configuration for creating a new Model.
type Config struct {
	// Prompt is shown before the input. Defaults to "stock> ".
	Prompt string

	// Options configures the suggestion controller. Options.Logger is
	// filled from Logger when unset.
	Options suggest.Options

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// RenderConfig provides styling. If nil, DefaultRenderConfig is used.
	RenderConfig *RenderConfig

	// MaxRows caps how many suggestion rows are drawn at once.
	MaxRows int

	// Width is the initial terminal width.
	Width int

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the Bubble Tea model of the terminal host.
type Model struct {
	buffer     *Buffer
	box        *SuggestionBox
	controller *suggest.Controller
	keymap     *KeyMap

	prompt   string
	renderer *Renderer
	maxRows  int

	result Result
	logger *zap.Logger
}

// New creates a Model and binds a controller to its input and box.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keymap := cfg.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	renderConfig := DefaultRenderConfig()
	if cfg.RenderConfig != nil {
		renderConfig = *cfg.RenderConfig
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "stock> "
	}

	opts := cfg.Options
	if opts.Logger == nil {
		opts.Logger = logger
	}

	renderer := NewRenderer(renderConfig)
	renderer.SetWidth(cfg.Width)

	buffer := NewBuffer()
	box := NewSuggestionBox()

	return Model{
		buffer:     buffer,
		box:        box,
		controller: suggest.New(buffer, box, opts),
		keymap:     keymap,
		prompt:     prompt,
		renderer:   renderer,
		maxRows:    cfg.MaxRows,
		result:     Result{Type: ResultNone},
		logger:     logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case responseMsg:
		m.controller.OnSearchResponse(suggest.Response(msg))
		return m, nil

	case pasteMsg:
		m.buffer.InsertRunes(sanitizeRunes([]rune(string(msg))))
		return m.keyUp()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.result.Type != ResultNone {
		return ""
	}
	return m.renderer.RenderFullView(m.prompt, m.buffer, m.box, m.maxRows)
}

// Result returns the current result. Check Type != ResultNone to see if complete.
func (m Model) Result() Result {
	return m.result
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.buffer.Value()
}

// Box returns the suggestion box (for testing).
func (m Model) Box() *SuggestionBox {
	return m.box
}

// Controller returns the bound controller.
func (m Model) Controller() *suggest.Controller {
	return m.controller
}

// handleKeyMsg processes keyboard input. Keys the suggestion box consumes
// are handled here; every other key counts as a key release on the input
// and triggers a search.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Lookup(msg)

	switch action {
	case ActionQuit:
		m.result = Result{Type: ResultInterrupt}
		return m, tea.Quit

	case ActionAccept:
		if m.box.SelectCurrent() {
			return m, nil
		}
		m.result = Result{Type: ResultSubmit, Value: m.buffer.Value()}
		return m, tea.Quit

	case ActionDismiss:
		m.box.SetVisible(false)
		return m, nil

	case ActionSelectNext:
		if m.box.Visible() {
			m.box.Next()
			return m, nil
		}

	case ActionSelectPrevious:
		if m.box.Visible() {
			m.box.Prev()
			return m, nil
		}

	case ActionPaste:
		return m, Paste

	case ActionCharacterForward:
		m.buffer.SetPos(m.buffer.Pos() + 1)
	case ActionCharacterBackward:
		m.buffer.SetPos(m.buffer.Pos() - 1)
	case ActionLineStart:
		m.buffer.CursorStart()
	case ActionLineEnd:
		m.buffer.CursorEnd()

	case ActionDeleteCharacterBackward:
		m.buffer.DeleteCharBackward()
	case ActionDeleteCharacterForward:
		m.buffer.DeleteCharForward()
	case ActionDeleteWordBackward:
		m.buffer.DeleteWordBackward()
	case ActionDeleteBeforeCursor:
		m.buffer.DeleteBeforeCursor()
	case ActionDeleteAfterCursor:
		m.buffer.DeleteAfterCursor()

	default:
		if len(msg.Runes) > 0 {
			m.buffer.InsertRunes(sanitizeRunes(msg.Runes))
		}
	}

	return m.keyUp()
}

// keyUp hands the keystroke to the controller and waits for its search.
func (m Model) keyUp() (tea.Model, tea.Cmd) {
	return m, waitForResponse(m.controller.OnKeyUp())
}

// waitForResponse turns a controller channel into a command. Bubble Tea
// runs commands concurrently, so responses reach Update in the order they
// resolve.
func waitForResponse(ch <-chan suggest.Response) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		resp, ok := <-ch
		if !ok {
			return nil
		}
		return responseMsg(resp)
	}
}

// responseMsg wraps a suggest.Response for the tea.Msg interface.
type responseMsg suggest.Response

// pasteMsg is sent when paste content is available.
type pasteMsg string

// Paste returns a command that reads from the clipboard.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(str)
}

// sanitizeRunes replaces tabs and newlines with spaces.
func sanitizeRunes(runes []rune) []rune {
	result := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '\t', '\n', '\r':
			result[i] = ' '
		default:
			result[i] = r
		}
	}
	return result
}
