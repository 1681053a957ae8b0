// Package doc implements the document algebra and its layout engine.
//
// A Doc describes structured text without committing to an output width:
// it records where the text may break, how breaks indent, and which parts
// form groups that should stay on one line when they fit. Layout resolves
// all of that against concrete Options and emits a flat event stream.
//
// Documents are immutable. Build one once and lay it out any number of
// times with different options; construction never allocates per layout
// call.
package doc

import (
	"strings"

	"github.com/glguy/prettyprinter/internal/textwidth"
)

type kind uint8

const (
	kindFail kind = iota
	kindEmpty
	kindChar
	kindText
	kindLine
	kindFlatAlt
	kindCat
	kindNest
	kindUnion
	kindColumn
	kindNesting
	kindAnnotated
)

// Doc is an immutable document parameterized by an annotation type A.
// Annotations are opaque to layout; they pass through to the stream
// unchanged and only renderers interpret them.
//
// The zero value is not a valid Doc; use the constructors.
type Doc[A any] struct {
	kind  kind
	text  string // kindChar, kindText
	width int    // display cells of text
	delta int    // kindNest
	ann   A      // kindAnnotated

	// first carries the only child of Nest and Annotated, the left side
	// of Cat, the broken branch of FlatAlt and the flat branch of Union.
	first  *Doc[A]
	second *Doc[A] // Cat right, FlatAlt flat, Union broken

	fn func(int) *Doc[A] // kindColumn, kindNesting
}

// Fail is a document with no rendering. Any layout path forced through it
// fails; groups use this to rule out an alternative.
func Fail[A any]() *Doc[A] { return &Doc[A]{kind: kindFail} }

// Empty is the zero-width unit of concatenation.
func Empty[A any]() *Doc[A] { return &Doc[A]{kind: kindEmpty} }

// Char is a single printable character. A '\n' becomes Line.
func Char[A any](r rune) *Doc[A] {
	if r == '\n' {
		return Line[A]()
	}
	return &Doc[A]{kind: kindChar, text: string(r), width: textwidth.Rune(r)}
}

// Text is a literal run of characters. The layout engine requires literal
// runs to be free of line breaks, so Text splits s on '\n' and joins the
// pieces with Line. An empty string is Empty.
func Text[A any](s string) *Doc[A] {
	if s == "" {
		return Empty[A]()
	}
	if !strings.ContainsRune(s, '\n') {
		return textRun[A](s)
	}
	parts := strings.Split(s, "\n")
	d := textRun[A](parts[0])
	for _, p := range parts[1:] {
		d = Cat(d, Cat(Line[A](), textRun[A](p)))
	}
	return d
}

// textRun builds a literal without the newline scan. s must not contain
// line breaks.
func textRun[A any](s string) *Doc[A] {
	if s == "" {
		return Empty[A]()
	}
	return &Doc[A]{kind: kindText, text: s, width: textwidth.String(s)}
}

// Line is a line break that collapses to a single space when flattened by
// an enclosing Group.
func Line[A any]() *Doc[A] { return &Doc[A]{kind: kindLine} }

// LineBreak is a line break that collapses to nothing when flattened.
func LineBreak[A any]() *Doc[A] {
	return FlatAlt(Line[A](), Empty[A]())
}

// HardLine is a line break that can never be flattened: any group
// containing it stays broken.
func HardLine[A any]() *Doc[A] {
	return FlatAlt(Line[A](), Fail[A]())
}

// SoftLine behaves like a space if the following content fits on the
// current line, and like a line break otherwise.
func SoftLine[A any]() *Doc[A] {
	return &Doc[A]{kind: kindUnion, first: Char[A](' '), second: Line[A]()}
}

// SoftBreak behaves like Empty if the following content fits, and like a
// line break otherwise.
func SoftBreak[A any]() *Doc[A] {
	return &Doc[A]{kind: kindUnion, first: Empty[A](), second: Line[A]()}
}

// FlatAlt renders as whenBroken normally and as whenFlat when an enclosing
// group flattens it.
func FlatAlt[A any](whenBroken, whenFlat *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: kindFlatAlt, first: whenBroken, second: whenFlat}
}

// Cat concatenates two documents with no space between them.
func Cat[A any](l, r *Doc[A]) *Doc[A] {
	if l.kind == kindEmpty {
		return r
	}
	if r.kind == kindEmpty {
		return l
	}
	return &Doc[A]{kind: kindCat, first: l, second: r}
}

// Concat concatenates any number of documents; with no arguments it is
// Empty.
func Concat[A any](ds ...*Doc[A]) *Doc[A] {
	d := Empty[A]()
	for _, x := range ds {
		d = Cat(d, x)
	}
	return d
}

// Nest shifts the indentation of line breaks inside d by delta columns.
// delta may be negative.
func Nest[A any](delta int, d *Doc[A]) *Doc[A] {
	if delta == 0 {
		return d
	}
	return &Doc[A]{kind: kindNest, delta: delta, first: d}
}

// Union is the raw grouping primitive: the engine picks flat if it fits
// and broken otherwise. Callers must guarantee that flat is the flattened
// form of broken (same content, breaks replaced by their flat
// equivalents); the engine does not check this. Prefer Group, which
// constructs correct unions.
func Union[A any](flat, broken *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: kindUnion, first: flat, second: broken}
}

// Column builds a document from the column the engine has reached when it
// gets here. f must be pure.
func Column[A any](f func(col int) *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: kindColumn, fn: f}
}

// Nesting builds a document from the current indentation level. f must be
// pure.
func Nesting[A any](f func(indent int) *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: kindNesting, fn: f}
}

// Annotate tags d with ann. Layout is unaffected; the tag travels to the
// stream as a push/pop pair around d's output.
func Annotate[A any](ann A, d *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: kindAnnotated, ann: ann, first: d}
}
