package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/glguy/prettyprinter/pkg/doc"
)

// tag annotates document fragments for colored output.
type tag uint8

const (
	tagKey tag = iota
	tagString
	tagNumber
	tagBool
	tagNull
	tagPunct
	tagAlias
)

// styles maps annotation tags to terminal styles for --color output.
func styles(t tag) lipgloss.Style {
	switch t {
	case tagKey:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case tagString:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case tagNumber:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case tagBool:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case tagNull:
		return lipgloss.NewStyle().Faint(true)
	case tagAlias:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	default:
		return lipgloss.NewStyle()
	}
}

// buildNode turns a parsed YAML node into a document in JSON-like flow
// style: collections stay on one line when they fit and break into
// indented lines otherwise.
func buildNode(n *yaml.Node) (*doc.Doc[tag], error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return doc.Empty[tag](), nil
		}
		return buildNode(n.Content[0])
	case yaml.MappingNode:
		pairs := make([]*doc.Doc[tag], 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := doc.Annotate(tagKey, doc.Text[tag](scalarText(n.Content[i])))
			val, err := buildNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, doc.Concat(key, punct(": "), val))
		}
		return collection("{", "}", pairs), nil
	case yaml.SequenceNode:
		items := make([]*doc.Doc[tag], 0, len(n.Content))
		for _, c := range n.Content {
			item, err := buildNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return collection("[", "]", items), nil
	case yaml.ScalarNode:
		return scalar(n), nil
	case yaml.AliasNode:
		// rendered by reference, never expanded
		return doc.Annotate(tagAlias, doc.Text[tag]("*"+n.Value)), nil
	default:
		return nil, fmt.Errorf("unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

// collection is the grouped open/body/close shape shared by mappings and
// sequences: flat it reads "{a: 1, b: 2}", broken each entry gets its own
// line nested by two columns.
func collection(open, close string, items []*doc.Doc[tag]) *doc.Doc[tag] {
	if len(items) == 0 {
		return punct(open + close)
	}
	body := doc.Join(doc.Cat(punct(","), doc.Line[tag]()), items...)
	return doc.Group(doc.Concat(
		punct(open),
		doc.Nest(2, doc.Cat(doc.LineBreak[tag](), body)),
		doc.LineBreak[tag](),
		punct(close),
	))
}

func punct(s string) *doc.Doc[tag] {
	return doc.Annotate(tagPunct, doc.Text[tag](s))
}

func scalar(n *yaml.Node) *doc.Doc[tag] {
	switch n.Tag {
	case "!!str":
		return doc.Annotate(tagString, doc.Text[tag](fmt.Sprintf("%q", n.Value)))
	case "!!int", "!!float":
		return doc.Annotate(tagNumber, doc.Text[tag](n.Value))
	case "!!bool":
		return doc.Annotate(tagBool, doc.Text[tag](n.Value))
	case "!!null":
		return doc.Annotate(tagNull, doc.Text[tag]("null"))
	default:
		return doc.Annotate(tagString, doc.Text[tag](n.Value))
	}
}

// scalarText renders a mapping key: bare when it looks like an
// identifier, quoted otherwise.
func scalarText(n *yaml.Node) string {
	if n.Value != "" && !strings.ContainsAny(n.Value, " \t\n\"':,{}[]") {
		return n.Value
	}
	return fmt.Sprintf("%q", n.Value)
}
