// Package suggest implements a keystroke-driven suggestion box bound to a
// text input and backed by a remote search endpoint.
//
// The controller never touches a concrete UI. Hosts hand it an Input and a
// Box (a terminal model, a browser page, a plain in-memory pair) and deliver
// search responses back on their own UI goroutine.
package suggest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Input is the text field the user types into.
type Input interface {
	// Value returns the current text of the field.
	Value() string
	// SetValue replaces the text of the field. It must not fire any
	// change notifications of its own.
	SetValue(value string)
}

// Box is the container that displays suggestion rows.
type Box interface {
	// Clear removes every rendered row.
	Clear()
	// SetVisible shows or hides the box.
	SetVisible(visible bool)
	// Visible reports whether the box is currently shown.
	Visible() bool
	// AddRow appends a row whose text is rendered verbatim as plain text.
	// onSelect is invoked when the user picks the row.
	AddRow(text string, onSelect func())
}

// Searcher returns the suggestion list for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// SearcherFunc adapts a plain function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string) ([]string, error)

// Search implements Searcher.
func (f SearcherFunc) Search(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}

// StalePolicy decides what happens to a response that arrives after a newer
// keystroke has already been issued.
type StalePolicy int

const (
	// DiscardStale drops any response whose sequence number is not the
	// latest one issued.
	DiscardStale StalePolicy = iota
	// ApplyInArrivalOrder renders every response as it resolves, so a slow
	// response to an older query can overwrite newer suggestions.
	ApplyInArrivalOrder
)

// String returns the config spelling of the policy.
func (p StalePolicy) String() string {
	switch p {
	case DiscardStale:
		return "discard"
	case ApplyInArrivalOrder:
		return "apply"
	default:
		return "unknown"
	}
}

// ParseStalePolicy maps "discard" or "apply" to a StalePolicy.
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch s {
	case "discard", "":
		return DiscardStale, nil
	case "apply":
		return ApplyInArrivalOrder, nil
	default:
		return DiscardStale, fmt.Errorf("unknown stale response policy %q", s)
	}
}

// Response is the outcome of one keystroke-triggered search.
type Response struct {
	// Seq is the sequence number of the keystroke that issued the search.
	Seq int64
	// Query is the raw input value that was searched.
	Query string
	// Suggestions is the list returned by the endpoint, in server order.
	Suggestions []string
	// Err is set when the search failed. Suggestions is nil in that case.
	Err error
}

// Options configures a Controller.
type Options struct {
	// Searcher performs the remote lookup. A nil Searcher turns every
	// keystroke into a no-op apart from the empty-input guard.
	Searcher Searcher

	// Debounce delays each search and skips it if another keystroke
	// arrives in the meantime. Zero searches on every keystroke.
	Debounce time.Duration

	// StalePolicy controls out-of-order responses. Defaults to DiscardStale.
	StalePolicy StalePolicy

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Controller wires keystrokes on an Input to fetching, rendering and
// selecting suggestions in a Box.
//
// OnKeyUp, OnSearchResponse and OnSuggestionClick must be called from a
// single UI goroutine. Searches run on their own goroutines and only ever
// send on the channel returned by OnKeyUp.
type Controller struct {
	input Input
	box   Box

	searcher    Searcher
	debounce    time.Duration
	stalePolicy StalePolicy
	logger      *zap.Logger

	// seq is bumped on every keystroke, including ones that issue no search
	seq atomic.Int64
}

// New binds a controller to the given input and box.
func New(input Input, box Box, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		input:       input,
		box:         box,
		searcher:    opts.Searcher,
		debounce:    opts.Debounce,
		stalePolicy: opts.StalePolicy,
		logger:      logger,
	}
}

// Latest returns the sequence number of the most recent keystroke.
func (c *Controller) Latest() int64 {
	return c.seq.Load()
}

// OnKeyUp handles a key release on the input.
//
// An empty value clears and hides the box immediately and returns nil. Otherwise one
// search is started for the raw value and the returned channel receives its
// Response and is then closed. When debouncing, a search superseded by a
// later keystroke closes its channel without sending anything.
func (c *Controller) OnKeyUp() <-chan Response {
	value := c.input.Value()
	seq := c.seq.Add(1)

	if len(value) == 0 {
		c.box.Clear()
		c.box.SetVisible(false)
		return nil
	}

	if c.searcher == nil {
		return nil
	}

	resultCh := make(chan Response, 1)

	go func() {
		defer close(resultCh)

		if c.debounce > 0 {
			timer := time.NewTimer(c.debounce)
			<-timer.C

			if c.seq.Load() != seq {
				c.logger.Debug("skipping debounced search",
					zap.String("query", value),
					zap.Int64("seq", seq),
				)
				return
			}
		}

		suggestions, err := c.searcher.Search(context.Background(), value)
		resultCh <- Response{
			Seq:         seq,
			Query:       value,
			Suggestions: suggestions,
			Err:         err,
		}
	}()

	return resultCh
}

// OnSearchResponse renders a resolved search.
//
// Failed searches leave the box untouched. Under DiscardStale a response
// for anything but the latest keystroke is dropped. Otherwise the rows are
// fully replaced: an empty list hides the box, a non-empty list shows it
// with one row per suggestion in the order received.
func (c *Controller) OnSearchResponse(resp Response) {
	if resp.Err != nil {
		c.logger.Debug("search failed",
			zap.String("query", resp.Query),
			zap.Int64("seq", resp.Seq),
			zap.Error(resp.Err),
		)
		return
	}

	if c.stalePolicy == DiscardStale {
		if latest := c.seq.Load(); resp.Seq != latest {
			c.logger.Debug("discarding stale suggestions",
				zap.String("query", resp.Query),
				zap.Int64("seq", resp.Seq),
				zap.Int64("latest", latest),
			)
			return
		}
	}

	c.render(resp.Suggestions)
}

// OnSuggestionClick copies the selected text into the input and hides the
// box. It does not issue a new search.
func (c *Controller) OnSuggestionClick(text string) {
	c.input.SetValue(text)
	c.box.SetVisible(false)
}

func (c *Controller) render(suggestions []string) {
	c.box.Clear()

	if len(suggestions) == 0 {
		c.box.SetVisible(false)
		return
	}

	c.box.SetVisible(true)
	for _, suggestion := range suggestions {
		c.box.AddRow(suggestion, func() {
			c.OnSuggestionClick(suggestion)
		})
	}
}
