package stream

import (
	"errors"
	"fmt"
)

// ErrUnbalanced reports that a stream's annotation events do not pair up.
// Conforming layout output is always balanced; hitting this error means the
// stream was hand-built or mutated on its way to the renderer.
var ErrUnbalanced = errors.New("stream: unbalanced annotation events")

// TreeKind discriminates tree nodes.
type TreeKind uint8

const (
	// TreeFail marks a tree built from a Fail-terminated stream.
	TreeFail TreeKind = iota
	// TreeEmpty is a node with no content, produced for an empty stream
	// or an annotation region with nothing inside it.
	TreeEmpty
	// TreeChar holds a single character in Text.
	TreeChar
	// TreeText holds a run of characters in Text.
	TreeText
	// TreeLine is a line break with the following line's indentation.
	TreeLine
	// TreeConcat holds two or more children rendered in order.
	TreeConcat
	// TreeAnnotated wraps its single child in the annotation Ann.
	TreeAnnotated
)

// Tree is the nested view of a Stream: annotation push/pop pairs become
// Annotated nodes wrapping the events between them. Trees are read-only
// derivations; renderers recurse over them but never modify them.
type Tree[A any] struct {
	Kind     TreeKind
	Text     string   // TreeChar, TreeText
	Indent   int      // TreeLine
	Ann      A        // TreeAnnotated
	Children []*Tree[A] // TreeConcat (len >= 2), TreeAnnotated (len == 1)
}

// FromStream reconstructs the nested annotation structure of s.
//
// It maintains a stack of in-progress regions: KindPush opens a region,
// KindPop closes the innermost one and folds it into its parent. A pop
// without an open region, or a stream that ends with open regions, is a
// structural error wrapping ErrUnbalanced. A Fail event yields the TreeFail
// node and no error, regardless of how much content preceded it: failure is
// a property of the layout, not of the stream's shape, and a failed layout
// has no partial rendering worth keeping.
func FromStream[A any](s Stream[A]) (*Tree[A], error) {
	type region struct {
		ann   A
		nodes []*Tree[A]
	}
	stack := []region{{}}
	failed := false

	pos := 0
	for ev := range s {
		switch ev.Kind {
		case KindFail:
			failed = true
		case KindChar:
			top := &stack[len(stack)-1]
			top.nodes = append(top.nodes, &Tree[A]{Kind: TreeChar, Text: ev.Text})
		case KindText:
			top := &stack[len(stack)-1]
			top.nodes = append(top.nodes, &Tree[A]{Kind: TreeText, Text: ev.Text})
		case KindLine:
			top := &stack[len(stack)-1]
			top.nodes = append(top.nodes, &Tree[A]{Kind: TreeLine, Indent: ev.Indent})
		case KindPush:
			stack = append(stack, region{ann: ev.Ann})
		case KindPop:
			if len(stack) == 1 {
				return nil, fmt.Errorf("event %d: pop without matching push: %w", pos, ErrUnbalanced)
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := &Tree[A]{
				Kind:     TreeAnnotated,
				Ann:      closed.ann,
				Children: []*Tree[A]{gather(closed.nodes)},
			}
			top := &stack[len(stack)-1]
			top.nodes = append(top.nodes, node)
		}
		pos++
		if failed {
			break
		}
	}

	if failed {
		return &Tree[A]{Kind: TreeFail}, nil
	}
	if open := len(stack) - 1; open > 0 {
		return nil, fmt.Errorf("stream ended with %d unclosed annotation(s): %w", open, ErrUnbalanced)
	}
	return gather(stack[0].nodes), nil
}

// gather folds sibling nodes into a single tree.
func gather[A any](nodes []*Tree[A]) *Tree[A] {
	switch len(nodes) {
	case 0:
		return &Tree[A]{Kind: TreeEmpty}
	case 1:
		return nodes[0]
	default:
		return &Tree[A]{Kind: TreeConcat, Children: nodes}
	}
}

// Events flattens the tree back into its stream form. For any tree built
// by FromStream from a balanced stream, Events reproduces that stream
// exactly.
func (t *Tree[A]) Events() Stream[A] {
	return func(yield func(Event[A]) bool) {
		t.emit(yield)
	}
}

func (t *Tree[A]) emit(yield func(Event[A]) bool) bool {
	switch t.Kind {
	case TreeFail:
		return yield(Event[A]{Kind: KindFail})
	case TreeEmpty:
		return true
	case TreeChar:
		return yield(Event[A]{Kind: KindChar, Text: t.Text})
	case TreeText:
		return yield(Event[A]{Kind: KindText, Text: t.Text})
	case TreeLine:
		return yield(Event[A]{Kind: KindLine, Indent: t.Indent})
	case TreeConcat:
		for _, c := range t.Children {
			if !c.emit(yield) {
				return false
			}
		}
		return true
	case TreeAnnotated:
		if !yield(Event[A]{Kind: KindPush, Ann: t.Ann}) {
			return false
		}
		if !t.Children[0].emit(yield) {
			return false
		}
		return yield(Event[A]{Kind: KindPop})
	default:
		return true
	}
}
