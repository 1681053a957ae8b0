// Package prettyprinter is the public facade for the document layout
// engine.
//
// It re-exports the everyday surface of the library: build a document out
// of combinators, lay it out at a width, render the result.
//
// Philosophy:
//
// A document describes structure, not line breaks. Clients compose
// literal text, optional breaks, indentation and groups without knowing
// the output width; the engine decides every break at layout time, with
// bounded lookahead and no backtracking, in time linear in the output.
//
// Features:
//
//   - **Width-aware grouping**: groups render on one line when they fit.
//   - **Annotations**: attach opaque tags (styles, links) that survive
//     layout untouched and drive renderers.
//   - **Three policies**: pretty (greedy), smart (trap-avoiding
//     lookahead), compact (minimal, width-oblivious).
//   - **Lazy streams**: renderers pull events and may stop early.
//   - **Fusion**: an optional rewrite that merges adjacent literals.
//
// Usage:
//
//	d := prettyprinter.Sep(
//		prettyprinter.Text[any]("hello"),
//		prettyprinter.Text[any]("world"),
//	)
//	out, err := prettyprinter.Format(d, prettyprinter.WithMaxWidth(40))
//
// The full API lives in pkg/doc (algebra and engine), pkg/stream (event
// stream and tree view) and pkg/render (renderers).
package prettyprinter
