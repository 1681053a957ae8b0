package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func balanced() Stream[string] {
	return Of(
		Event[string]{Kind: KindText, Text: "let "},
		Event[string]{Kind: KindPush, Ann: "keyword"},
		Event[string]{Kind: KindText, Text: "x"},
		Event[string]{Kind: KindPush, Ann: "operator"},
		Event[string]{Kind: KindChar, Text: "="},
		Event[string]{Kind: KindPop},
		Event[string]{Kind: KindLine, Indent: 2},
		Event[string]{Kind: KindText, Text: "1"},
		Event[string]{Kind: KindPop},
	)
}

func TestFromStream_NestsAnnotations(t *testing.T) {
	tree, err := FromStream(balanced())
	require.NoError(t, err)

	require.Equal(t, TreeConcat, tree.Kind)
	require.Len(t, tree.Children, 2)

	ann := tree.Children[1]
	require.Equal(t, TreeAnnotated, ann.Kind)
	require.Equal(t, "keyword", ann.Ann)

	inner := ann.Children[0]
	require.Equal(t, TreeConcat, inner.Kind)
	require.Equal(t, TreeAnnotated, inner.Children[1].Kind)
	require.Equal(t, "operator", inner.Children[1].Ann)
}

func TestFromStream_RoundTrip(t *testing.T) {
	streams := map[string]Stream[string]{
		"nested":       balanced(),
		"flat":         Of(Event[string]{Kind: KindText, Text: "plain"}),
		"empty":        Of[string](),
		"empty region": Of(Event[string]{Kind: KindPush, Ann: "a"}, Event[string]{Kind: KindPop}),
		"lines": Of(
			Event[string]{Kind: KindText, Text: "a"},
			Event[string]{Kind: KindLine, Indent: 4},
			Event[string]{Kind: KindText, Text: "b"},
		),
	}

	for name, s := range streams {
		tree, err := FromStream(s)
		require.NoError(t, err, name)
		require.Equal(t, s.Collect(), tree.Events().Collect(), name)
	}
}

func TestFromStream_StrayPop(t *testing.T) {
	s := Of(
		Event[string]{Kind: KindText, Text: "x"},
		Event[string]{Kind: KindPop},
	)
	_, err := FromStream(s)
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestFromStream_UnclosedPush(t *testing.T) {
	s := Of(
		Event[string]{Kind: KindPush, Ann: "open"},
		Event[string]{Kind: KindText, Text: "x"},
	)
	_, err := FromStream(s)
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestFromStream_FailStream(t *testing.T) {
	tree, err := FromStream(Of(Event[string]{Kind: KindFail}))
	require.NoError(t, err)
	require.Equal(t, TreeFail, tree.Kind)

	// Round-tripping a failed tree reproduces the Fail event.
	require.True(t, tree.Events().Failed())
}

func TestFromStream_FailDiscardsPrecedingContent(t *testing.T) {
	s := Of(
		Event[string]{Kind: KindText, Text: "partial"},
		Event[string]{Kind: KindPush, Ann: "open"},
		Event[string]{Kind: KindFail},
	)
	tree, err := FromStream(s)
	require.NoError(t, err)
	require.Equal(t, TreeFail, tree.Kind)
	require.Empty(t, tree.Children)
}

func TestFromStream_EmptyStreamIsEmptyTree(t *testing.T) {
	tree, err := FromStream(Of[string]())
	require.NoError(t, err)
	require.Equal(t, TreeEmpty, tree.Kind)
	require.Empty(t, tree.Events().Collect())
}
