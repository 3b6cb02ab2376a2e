//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/atinylittleshell/stocksuggest/internal/suggest"
)

// Input is the suggest.Input over a text <input> element.
type Input struct {
	el js.Value
}

// Value implements suggest.Input.
func (i *Input) Value() string {
	return i.el.Get("value").String()
}

// SetValue implements suggest.Input. Assigning the property fires no
// key events.
func (i *Input) SetValue(value string) {
	i.el.Set("value", value)
}

// Box is the suggest.Box over a container element. Rows are <div>
// children whose text is assigned through textContent.
type Box struct {
	doc js.Value
	el  js.Value

	// handlers holds the onclick callbacks of the current rows
	handlers []js.Func
}

// Clear implements suggest.Box.
func (b *Box) Clear() {
	b.el.Call("replaceChildren")
	for _, fn := range b.handlers {
		fn.Release()
	}
	b.handlers = nil
}

// SetVisible implements suggest.Box.
func (b *Box) SetVisible(visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	b.el.Get("style").Set("display", display)
}

// Visible implements suggest.Box.
func (b *Box) Visible() bool {
	return b.el.Get("style").Get("display").String() == "block"
}

// AddRow implements suggest.Box.
func (b *Box) AddRow(text string, onSelect func()) {
	row := b.doc.Call("createElement", "div")
	row.Set("textContent", text)

	onClick := js.FuncOf(func(js.Value, []js.Value) any {
		onSelect()
		return nil
	})
	b.handlers = append(b.handlers, onClick)
	row.Set("onclick", onClick)

	b.el.Call("appendChild", row)
}

// Binding is a controller attached to a page.
type Binding struct {
	Controller *suggest.Controller

	input js.Value
	box   *Box
	keyUp js.Func
}

// Bind looks up the input and box on doc and starts listening for key
// releases on the input.
func Bind(doc js.Value, opts suggest.Options) (*Binding, error) {
	inputEl, ok := lookup(doc, InputID)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, InputID)
	}
	boxEl, ok := lookup(doc, BoxID)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, BoxID)
	}

	box := &Box{doc: doc, el: boxEl}
	controller := suggest.New(&Input{el: inputEl}, box, opts)

	keyUp := js.FuncOf(func(js.Value, []js.Value) any {
		ch := controller.OnKeyUp()
		if ch == nil {
			return nil
		}
		// event handlers must not block
		go func() {
			for resp := range ch {
				controller.OnSearchResponse(resp)
			}
		}()
		return nil
	})
	inputEl.Call("addEventListener", "keyup", keyUp)

	return &Binding{
		Controller: controller,
		input:      inputEl,
		box:        box,
		keyUp:      keyUp,
	}, nil
}

// Release detaches the keyup listener and frees the row callbacks.
func (b *Binding) Release() {
	b.input.Call("removeEventListener", "keyup", b.keyUp)
	b.keyUp.Release()
	b.box.Clear()
}

func lookup(doc js.Value, id string) (js.Value, bool) {
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}
