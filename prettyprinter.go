package prettyprinter

import (
	"io"

	"github.com/glguy/prettyprinter/pkg/doc"
	"github.com/glguy/prettyprinter/pkg/render"
	"github.com/glguy/prettyprinter/pkg/stream"
)

// --- Types ---

// Doc is a public alias for the document type.
type Doc[A any] = doc.Doc[A]

// Stream is a public alias for the layout event stream.
type Stream[A any] = stream.Stream[A]

// Tree is a public alias for the nested stream view.
type Tree[A any] = stream.Tree[A]

// Options is a public alias for the layout configuration.
type Options = doc.Options

// Option is a functional option for layout configuration.
type Option = doc.Option

// Policy selects the line-breaking strategy.
type Policy = doc.Policy

// FusionDepth selects how thorough Fuse is.
type FusionDepth = doc.FusionDepth

const (
	PolicyPretty  = doc.PolicyPretty
	PolicySmart   = doc.PolicySmart
	PolicyCompact = doc.PolicyCompact

	Shallow = doc.Shallow
	Deep    = doc.Deep
)

// --- Configuration ---

// WithMaxWidth sets the page width in display columns.
func WithMaxWidth(w int) Option { return doc.WithMaxWidth(w) }

// WithRibbon sets the ribbon fraction in (0, 1].
func WithRibbon(r float64) Option { return doc.WithRibbon(r) }

// WithUnbounded disables width-driven breaking.
func WithUnbounded() Option { return doc.WithUnbounded() }

// WithPolicy selects the line-breaking policy.
func WithPolicy(p Policy) Option { return doc.WithPolicy(p) }

// NewOptions builds validated layout options.
func NewOptions(opts ...Option) (*Options, error) { return doc.NewOptions(opts...) }

// --- Construction ---

// Text is a literal; embedded newlines become line breaks.
func Text[A any](s string) *Doc[A] { return doc.Text[A](s) }

// Char is a single literal character.
func Char[A any](r rune) *Doc[A] { return doc.Char[A](r) }

// Empty is the zero-width unit.
func Empty[A any]() *Doc[A] { return doc.Empty[A]() }

// Line is a break that flattens to a space.
func Line[A any]() *Doc[A] { return doc.Line[A]() }

// HardLine is a break that never flattens.
func HardLine[A any]() *Doc[A] { return doc.HardLine[A]() }

// SoftLine is a space that becomes a break when the line is full.
func SoftLine[A any]() *Doc[A] { return doc.SoftLine[A]() }

// Cat concatenates two documents.
func Cat[A any](l, r *Doc[A]) *Doc[A] { return doc.Cat(l, r) }

// Concat concatenates any number of documents.
func Concat[A any](ds ...*Doc[A]) *Doc[A] { return doc.Concat(ds...) }

// Group lets the engine flatten d when it fits.
func Group[A any](d *Doc[A]) *Doc[A] { return doc.Group(d) }

// Nest shifts the indentation of breaks inside d.
func Nest[A any](delta int, d *Doc[A]) *Doc[A] { return doc.Nest(delta, d) }

// Align indents breaks inside d to the current column.
func Align[A any](d *Doc[A]) *Doc[A] { return doc.Align(d) }

// Indent moves d right by delta columns.
func Indent[A any](delta int, d *Doc[A]) *Doc[A] { return doc.Indent(delta, d) }

// HSep joins documents with spaces.
func HSep[A any](ds ...*Doc[A]) *Doc[A] { return doc.HSep(ds...) }

// VSep joins documents with line breaks.
func VSep[A any](ds ...*Doc[A]) *Doc[A] { return doc.VSep(ds...) }

// Sep joins documents on one line when they fit, one per line otherwise.
func Sep[A any](ds ...*Doc[A]) *Doc[A] { return doc.Sep(ds...) }

// FillSep packs as many documents per line as fit.
func FillSep[A any](ds ...*Doc[A]) *Doc[A] { return doc.FillSep(ds...) }

// Annotate tags d with an opaque annotation.
func Annotate[A any](ann A, d *Doc[A]) *Doc[A] { return doc.Annotate(ann, d) }

// Fuse merges adjacent literals without changing layout semantics.
func Fuse[A any](depth FusionDepth, d *Doc[A]) *Doc[A] { return doc.Fuse(depth, d) }

// --- Layout & Rendering ---

// Layout resolves all line breaks in d and returns the event stream.
func Layout[A any](d *Doc[A], o *Options) Stream[A] { return doc.Layout(d, o) }

// ToTree reconstructs the nested annotation structure of a stream.
func ToTree[A any](s Stream[A]) (*Tree[A], error) { return stream.FromStream(s) }

// Format lays out d with the given options and renders it to a string.
func Format[A any](d *Doc[A], opts ...Option) (string, error) {
	o, err := doc.NewOptions(opts...)
	if err != nil {
		return "", err
	}
	return render.String(doc.Layout(d, o))
}

// Fprint lays out d with the given options and writes the rendering to w.
func Fprint[A any](w io.Writer, d *Doc[A], opts ...Option) error {
	o, err := doc.NewOptions(opts...)
	if err != nil {
		return err
	}
	return render.Write(w, doc.Layout(d, o))
}
