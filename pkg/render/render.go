// Package render turns layout streams into concrete output.
//
// Write and String are sequential renderers: they walk the stream once,
// emit text verbatim and skip annotations. Term is a structured renderer
// that reconstructs the annotation tree and styles each region for a
// terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/glguy/prettyprinter/pkg/stream"
)

// ErrUnrenderable reports a Fail-terminated stream: the document had no
// renderable alternative under the chosen options.
var ErrUnrenderable = errors.New("render: document has no renderable layout")

// Write renders s to w: characters and text verbatim, each line break as
// a newline followed by the line's indentation in spaces. Annotations are
// skipped (in balanced pairs). A Fail event aborts with ErrUnrenderable;
// output written before the failure stays written.
func Write[A any](w io.Writer, s stream.Stream[A]) error {
	var failed bool
	var werr error
	s(func(ev stream.Event[A]) bool {
		switch ev.Kind {
		case stream.KindFail:
			failed = true
			return false
		case stream.KindChar, stream.KindText:
			_, werr = io.WriteString(w, ev.Text)
		case stream.KindLine:
			_, werr = io.WriteString(w, "\n"+strings.Repeat(" ", ev.Indent))
		case stream.KindPush, stream.KindPop:
			// balance-skip
		}
		return werr == nil
	})
	if failed {
		return ErrUnrenderable
	}
	if werr != nil {
		return fmt.Errorf("render: %w", werr)
	}
	return nil
}

// String renders s to a string.
func String[A any](s stream.Stream[A]) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}
