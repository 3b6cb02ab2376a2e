// Package dom binds a suggestion controller to a browser page. The binding
// itself only builds for GOOS=js GOARCH=wasm.
package dom

import "errors"

// Element ids the page must provide.
const (
	InputID = "stockInput"
	BoxID   = "suggestionBox"
)

// ErrMissingElement is returned by Bind when the page lacks one of the
// required elements.
var ErrMissingElement = errors.New("required element not found")
