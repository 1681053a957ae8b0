package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/glguy/prettyprinter/pkg/stream"
)

// plain maps every annotation to the zero style, so output is testable
// independent of the terminal's color profile.
func plain(string) lipgloss.Style { return lipgloss.NewStyle() }

func TestTerm_RendersTextAndIndent(t *testing.T) {
	s := stream.Of(
		stream.Event[string]{Kind: stream.KindText, Text: "a"},
		stream.Event[string]{Kind: stream.KindPush, Ann: "style"},
		stream.Event[string]{Kind: stream.KindText, Text: "b"},
		stream.Event[string]{Kind: stream.KindPop},
		stream.Event[string]{Kind: stream.KindLine, Indent: 2},
		stream.Event[string]{Kind: stream.KindText, Text: "c"},
	)

	var sb strings.Builder
	err := NewTerm(&sb, plain).Render(s)
	require.NoError(t, err)
	require.Equal(t, "ab\n  c", sb.String())
}

func TestTerm_UnbalancedStream(t *testing.T) {
	s := stream.Of(stream.Event[string]{Kind: stream.KindPop})
	err := NewTerm(&strings.Builder{}, plain).Render(s)
	require.ErrorIs(t, err, stream.ErrUnbalanced)
}

func TestTerm_FailStream(t *testing.T) {
	s := stream.Of(stream.Event[string]{Kind: stream.KindFail})
	err := NewTerm(&strings.Builder{}, plain).Render(s)
	require.ErrorIs(t, err, ErrUnrenderable)
}
