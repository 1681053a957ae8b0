package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream_CollectPreservesOrder(t *testing.T) {
	s := Of(
		Event[string]{Kind: KindText, Text: "a"},
		Event[string]{Kind: KindLine, Indent: 2},
		Event[string]{Kind: KindChar, Text: "b"},
	)
	events := s.Collect()
	require.Len(t, events, 3)
	require.Equal(t, KindText, events[0].Kind)
	require.Equal(t, KindLine, events[1].Kind)
	require.Equal(t, 2, events[1].Indent)
	require.Equal(t, "b", events[2].Text)
}

func TestStream_EarlyStop(t *testing.T) {
	s := Of(
		Event[string]{Kind: KindText, Text: "a"},
		Event[string]{Kind: KindText, Text: "b"},
		Event[string]{Kind: KindText, Text: "c"},
	)
	seen := 0
	s(func(Event[string]) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}

func TestStream_Failed(t *testing.T) {
	require.True(t, Of(Event[int]{Kind: KindFail}).Failed())
	require.False(t, Of(Event[int]{Kind: KindText, Text: "x"}).Failed())
	require.False(t, Of[int]().Failed())
}

func TestKind_String(t *testing.T) {
	names := map[Kind]string{
		KindFail: "Fail",
		KindChar: "Char",
		KindText: "Text",
		KindLine: "Line",
		KindPush: "PushAnnotation",
		KindPop:  "PopAnnotation",
	}
	for k, want := range names {
		require.Equal(t, want, k.String())
	}
}
