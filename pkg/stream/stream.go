// Package stream defines the flat event sequence produced by the layout
// engine, plus the nested tree view used by structured renderers.
//
// A Stream is the contract between the engine and any renderer: a renderer
// consumes events in order and never needs to look ahead. Renderers that
// want nested access to annotated regions instead build a Tree with
// FromStream.
package stream

// Kind discriminates stream events.
type Kind uint8

const (
	// KindFail terminates a stream whose document could not be rendered.
	// No further events follow it.
	KindFail Kind = iota
	// KindChar carries a single printable character in Text.
	KindChar
	// KindText carries a run of printable characters without line breaks.
	KindText
	// KindLine is a line break; Indent holds the indentation (in spaces)
	// of the following line.
	KindLine
	// KindPush opens an annotated region; Ann holds the annotation.
	KindPush
	// KindPop closes the most recently opened annotated region.
	KindPop
)

// String returns a short name for the event kind.
func (k Kind) String() string {
	switch k {
	case KindFail:
		return "Fail"
	case KindChar:
		return "Char"
	case KindText:
		return "Text"
	case KindLine:
		return "Line"
	case KindPush:
		return "PushAnnotation"
	case KindPop:
		return "PopAnnotation"
	default:
		return "Unknown"
	}
}

// Event is a single render instruction. Only the fields relevant to Kind
// are set; the rest stay at their zero value.
type Event[A any] struct {
	Kind   Kind
	Text   string // KindChar, KindText
	Indent int    // KindLine
	Ann    A      // KindPush
}

// Stream is a pull-based sequence of events. It is a plain range-over-func
// sequence: ranging over it produces events one at a time, stopping the
// range abandons the rest of the layout without any cleanup, and because
// layout is pure, ranging a second time replays the identical events.
type Stream[A any] func(yield func(Event[A]) bool)

// Of builds a Stream from a fixed slice of events. Mostly useful in tests
// and for renderers that re-emit a modified stream.
func Of[A any](events ...Event[A]) Stream[A] {
	return func(yield func(Event[A]) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

// Collect materializes the stream into a slice.
func (s Stream[A]) Collect() []Event[A] {
	var events []Event[A]
	for ev := range s {
		events = append(events, ev)
	}
	return events
}

// Failed reports whether the stream terminates in a Fail event, meaning
// the document had no renderable alternative.
func (s Stream[A]) Failed() bool {
	failed := false
	for ev := range s {
		if ev.Kind == KindFail {
			failed = true
			break
		}
	}
	return failed
}
