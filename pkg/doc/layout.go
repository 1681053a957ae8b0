package doc

import "github.com/glguy/prettyprinter/pkg/stream"

// mode determines how Line, FlatAlt and Union resolve inside a subtree.
type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

// frame is one entry of the pending-work list. The list is persistent
// (cons cells are never mutated), which lets the fitting check walk ahead
// through it without copying and without disturbing the committed state.
type frame[A any] struct {
	indent int
	mode   mode
	d      *Doc[A]
	pop    bool // emit a PopAnnotation instead of processing d
	next   *frame[A]
}

func push[A any](indent int, m mode, d *Doc[A], next *frame[A]) *frame[A] {
	return &frame[A]{indent: indent, mode: m, d: d, next: next}
}

// Layout resolves every line break in d against o and returns the event
// stream. The stream is lazy: events are produced as the consumer pulls
// them, an abandoned consumer wastes no further work, and because layout
// is pure, ranging the stream again replays it identically.
//
// A nil o means DefaultOptions.
func Layout[A any](d *Doc[A], o *Options) stream.Stream[A] {
	if o == nil {
		o = DefaultOptions()
	}
	if o.policy == PolicyCompact {
		return layoutCompact(d)
	}
	return layoutFitting(d, o)
}

// layoutFitting is the shared engine core for the pretty and smart
// policies. It walks the work list left to right, carrying the current
// column, and consults fits at every Union in break mode.
func layoutFitting[A any](d *Doc[A], o *Options) stream.Stream[A] {
	return func(yield func(stream.Event[A]) bool) {
		col := 0
		work := push(0, modeBreak, d, nil)
		for work != nil {
			cur := work
			work = cur.next

			if cur.pop {
				if !yield(stream.Event[A]{Kind: stream.KindPop}) {
					return
				}
				continue
			}

			switch cur.d.kind {
			case kindFail:
				yield(stream.Event[A]{Kind: stream.KindFail})
				return
			case kindEmpty:
			case kindChar:
				if !yield(stream.Event[A]{Kind: stream.KindChar, Text: cur.d.text}) {
					return
				}
				col += cur.d.width
			case kindText:
				if !yield(stream.Event[A]{Kind: stream.KindText, Text: cur.d.text}) {
					return
				}
				col += cur.d.width
			case kindLine:
				if cur.mode == modeFlat {
					if !yield(stream.Event[A]{Kind: stream.KindChar, Text: " "}) {
						return
					}
					col++
				} else {
					if !yield(stream.Event[A]{Kind: stream.KindLine, Indent: cur.indent}) {
						return
					}
					col = cur.indent
				}
			case kindFlatAlt:
				child := cur.d.first
				if cur.mode == modeFlat {
					child = cur.d.second
				}
				work = push(cur.indent, cur.mode, child, work)
			case kindCat:
				work = push(cur.indent, cur.mode, cur.d.first,
					push(cur.indent, cur.mode, cur.d.second, work))
			case kindNest:
				work = push(cur.indent+cur.d.delta, cur.mode, cur.d.first, work)
			case kindUnion:
				if cur.mode == modeFlat {
					work = push(cur.indent, modeFlat, cur.d.first, work)
					break
				}
				candidate := push(cur.indent, modeFlat, cur.d.first, work)
				if fits(o, cur.indent, col, candidate) {
					work = candidate
				} else {
					work = push(cur.indent, modeBreak, cur.d.second, work)
				}
			case kindColumn:
				work = push(cur.indent, cur.mode, cur.d.fn(col), work)
			case kindNesting:
				work = push(cur.indent, cur.mode, cur.d.fn(cur.indent), work)
			case kindAnnotated:
				if !yield(stream.Event[A]{Kind: stream.KindPush, Ann: cur.d.ann}) {
					return
				}
				work = push(cur.indent, cur.mode, cur.d.first,
					&frame[A]{pop: true, next: work})
			}
		}
	}
}

// lineLimit is the last usable column of a line whose indentation is
// indent: the page width capped by the ribbon measured from the indent.
func (o *Options) lineLimit(indent int) int {
	return min(o.maxWidth, indent+o.ribbonWidth())
}

// fits decides whether the flat candidate at the head of work, rendered
// from column col, reaches a line break (or the end of all pending work)
// without overrunning the budget of the current line.
//
// The scan walks the persistent work list, so committed output is never
// revisited, and it stops as soon as the budget is exceeded or a break in
// break mode is found; its cost is bounded by the remaining line budget.
// A nested group met along the way is resolved exactly as the engine
// would resolve it, so text that follows the group on the same line is
// counted against the budget.
// Under the smart policy the scan does not stop at the first break:
// breaks that stay deeper than the group's indentation floor restart the
// width count on their own line, and only a break at or below the floor
// ends the lookahead. That bounds the lookahead at the next line the
// group can no longer influence. Fail anywhere in the scan means "does
// not fit", which is how a group whose flat branch is poisoned falls
// through to its broken branch.
func fits[A any](o *Options, groupIndent, col int, work *frame[A]) bool {
	// Without a width there is nothing to overflow, so the extended
	// lookahead buys nothing; scan to the first break as pretty does.
	smart := o.policy == PolicySmart && !o.unbounded
	// The floor below which a break must drop before the smart lookahead
	// stops: content indented deeper than where the group began is still
	// under the group's influence.
	floor := min(groupIndent, col)

	limit := o.lineLimit(groupIndent)
	for work != nil {
		if !o.unbounded && col > limit {
			return false
		}
		cur := work
		work = cur.next
		if cur.pop {
			continue
		}
		switch cur.d.kind {
		case kindFail:
			return false
		case kindEmpty:
		case kindChar, kindText:
			col += cur.d.width
		case kindLine:
			if cur.mode == modeFlat {
				col++
				break
			}
			if !smart || cur.indent <= floor {
				return true
			}
			// still inside the group's sphere: keep scanning on the
			// next line
			col = cur.indent
			limit = o.lineLimit(cur.indent)
		case kindFlatAlt:
			child := cur.d.first
			if cur.mode == modeFlat {
				child = cur.d.second
			}
			work = push(cur.indent, cur.mode, child, work)
		case kindCat:
			work = push(cur.indent, cur.mode, cur.d.first,
				push(cur.indent, cur.mode, cur.d.second, work))
		case kindNest:
			work = push(cur.indent+cur.d.delta, cur.mode, cur.d.first, work)
		case kindUnion:
			if cur.mode == modeFlat || smart {
				// Committed flat, or the smart lookahead estimating the
				// nested group by its single-line branch.
				work = push(cur.indent, modeFlat, cur.d.first, work)
				break
			}
			// Resolve the nested group the way the engine itself would:
			// flatten it when its flat branch fits from here, scan into
			// its broken branch otherwise. The broken branch of a
			// soft-line union starts with a Line, which ends the scan,
			// but a broken branch may just as well open with unbreakable
			// text that still lands on this line and must be counted.
			if fits(o, cur.indent, col, push(cur.indent, modeFlat, cur.d.first, work)) {
				work = push(cur.indent, modeFlat, cur.d.first, work)
			} else {
				work = push(cur.indent, modeBreak, cur.d.second, work)
			}
		case kindColumn:
			work = push(cur.indent, cur.mode, cur.d.fn(col), work)
		case kindNesting:
			work = push(cur.indent, cur.mode, cur.d.fn(cur.indent), work)
		case kindAnnotated:
			work = push(cur.indent, cur.mode, cur.d.first, work)
		}
	}
	return !(!o.unbounded && col > limit)
}

// layoutCompact is the width-oblivious policy: groups never flatten,
// Nest is a no-op and every break lands at column zero.
func layoutCompact[A any](d *Doc[A]) stream.Stream[A] {
	return func(yield func(stream.Event[A]) bool) {
		col := 0
		work := push(0, modeBreak, d, nil)
		for work != nil {
			cur := work
			work = cur.next

			if cur.pop {
				if !yield(stream.Event[A]{Kind: stream.KindPop}) {
					return
				}
				continue
			}

			switch cur.d.kind {
			case kindFail:
				yield(stream.Event[A]{Kind: stream.KindFail})
				return
			case kindEmpty:
			case kindChar:
				if !yield(stream.Event[A]{Kind: stream.KindChar, Text: cur.d.text}) {
					return
				}
				col += cur.d.width
			case kindText:
				if !yield(stream.Event[A]{Kind: stream.KindText, Text: cur.d.text}) {
					return
				}
				col += cur.d.width
			case kindLine:
				if !yield(stream.Event[A]{Kind: stream.KindLine, Indent: 0}) {
					return
				}
				col = 0
			case kindFlatAlt:
				work = push(0, modeBreak, cur.d.first, work)
			case kindCat:
				work = push(0, modeBreak, cur.d.first,
					push(0, modeBreak, cur.d.second, work))
			case kindNest:
				work = push(0, modeBreak, cur.d.first, work)
			case kindUnion:
				work = push(0, modeBreak, cur.d.second, work)
			case kindColumn:
				work = push(0, modeBreak, cur.d.fn(col), work)
			case kindNesting:
				work = push(0, modeBreak, cur.d.fn(0), work)
			case kindAnnotated:
				if !yield(stream.Event[A]{Kind: stream.KindPush, Ann: cur.d.ann}) {
					return
				}
				work = push(0, modeBreak, cur.d.first,
					&frame[A]{pop: true, next: work})
			}
		}
	}
}
