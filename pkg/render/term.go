package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glguy/prettyprinter/pkg/stream"
)

// Term renders annotated streams for a terminal. Each annotation maps to
// a lipgloss style through the style function; nested annotations resolve
// innermost-wins. Line breaks and indentation are never styled, so
// background colors do not bleed across lines.
type Term[A any] struct {
	w     io.Writer
	style func(A) lipgloss.Style
}

// NewTerm builds a terminal renderer writing to w. style maps an
// annotation to the style for its region; it is consulted once per
// annotated region.
func NewTerm[A any](w io.Writer, style func(A) lipgloss.Style) *Term[A] {
	return &Term[A]{w: w, style: style}
}

// Render reconstructs the annotation tree of s and writes the styled
// output. It returns ErrUnrenderable for a Fail-terminated stream and a
// stream.ErrUnbalanced-wrapped error for malformed annotation events.
func (t *Term[A]) Render(s stream.Stream[A]) error {
	tree, err := stream.FromStream(s)
	if err != nil {
		return err
	}
	if tree.Kind == stream.TreeFail {
		return ErrUnrenderable
	}
	return t.walk(tree, nil)
}

// walk recurses over the tree carrying the active style. styles holds the
// innermost style at the top; nil means unstyled.
func (t *Term[A]) walk(tree *stream.Tree[A], active *lipgloss.Style) error {
	switch tree.Kind {
	case stream.TreeEmpty:
		return nil
	case stream.TreeChar, stream.TreeText:
		out := tree.Text
		if active != nil {
			out = active.Render(out)
		}
		_, err := io.WriteString(t.w, out)
		return err
	case stream.TreeLine:
		_, err := io.WriteString(t.w, "\n"+strings.Repeat(" ", tree.Indent))
		return err
	case stream.TreeConcat:
		for _, c := range tree.Children {
			if err := t.walk(c, active); err != nil {
				return err
			}
		}
		return nil
	case stream.TreeAnnotated:
		style := t.style(tree.Ann)
		return t.walk(tree.Children[0], &style)
	default:
		return nil
	}
}
