//go:build js && wasm

// Command stocksuggest-web is the browser bundle. Build it with
//
//	mkdir -p static
//	GOOS=js GOARCH=wasm go build -o static/stocksuggest.wasm ./cmd/stocksuggest-web
//	cp "$(go env GOROOT)/misc/wasm/wasm_exec.js" static/
//
// and serve the directory with stocksuggest -serve (server.static_dir: static).
// Go 1.24 and later ship wasm_exec.js under lib/wasm instead of misc/wasm.
package main

import (
	"syscall/js"

	"github.com/atinylittleshell/stocksuggest/internal/dom"
	"github.com/atinylittleshell/stocksuggest/internal/search"
	"github.com/atinylittleshell/stocksuggest/internal/suggest"
	"go.uber.org/zap"
)

func main() {
	doc := js.Global().Get("document")

	if doc.Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(js.Value, []js.Value) any {
			onReady.Release()
			bind(doc)
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", onReady)
	} else {
		bind(doc)
	}

	// keep the runtime alive for the page's callbacks
	select {}
}

func bind(doc js.Value) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	origin := js.Global().Get("location").Get("origin").String()
	client, err := search.NewClient(search.ClientConfig{
		BaseURL: origin,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to create search client", zap.Error(err))
		return
	}

	if _, err := dom.Bind(doc, suggest.Options{
		Searcher: client,
		Logger:   logger,
	}); err != nil {
		logger.Error("failed to bind suggestion box", zap.Error(err))
	}
}
