package doc

import (
	"testing"
)

// renderWide lays the document out with plenty of room, so only hard
// structure shows up in the output.
func renderWide(t *testing.T, d *Doc[any]) string {
	t.Helper()
	return renderAt(t, d, WithMaxWidth(200))
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain", input: "hello", want: "hello"},
		{name: "Empty String", input: "", want: ""},
		{name: "Embedded Newline", input: "a\nb", want: "a\nb"},
		{name: "Trailing Newline", input: "a\n", want: "a\n"},
		{name: "Only Newlines", input: "\n\n", want: "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderWide(t, Text[any](tt.input))
			if got != tt.want {
				t.Errorf("Text(%q) rendered %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestChar_NewlineBecomesLine(t *testing.T) {
	if Char[any]('\n').kind != kindLine {
		t.Error("Char('\\n') should construct a Line")
	}
}

func TestCat_EmptyIsIdentity(t *testing.T) {
	d := Text[any]("x")
	if Cat(Empty[any](), d) != d {
		t.Error("Cat(Empty, d) should be d")
	}
	if Cat(d, Empty[any]()) != d {
		t.Error("Cat(d, Empty) should be d")
	}
}

func TestGroup_AlreadyFlatBuildsNoUnion(t *testing.T) {
	d := Text[any]("static")
	if g := Group(d); g != d {
		t.Error("grouping break-free content should be the identity")
	}
}

func TestGroup_NeverFlatBuildsNoUnion(t *testing.T) {
	d := Cat(Text[any]("a"), Cat(HardLine[any](), Text[any]("b")))
	if g := Group(d); g.kind == kindUnion {
		t.Error("grouping never-flattenable content should not build a union")
	}
}

func TestGroup_Idempotent(t *testing.T) {
	d := Group(VSep(Text[any]("a"), Text[any]("b")))
	if Group(d) != d {
		t.Error("grouping a group should be the identity")
	}
}

func TestCombinators(t *testing.T) {
	tests := []struct {
		name string
		doc  *Doc[any]
		want string
	}{
		{name: "HSep", doc: HSep(Words[any]("a b c")...), want: "a b c"},
		{name: "VSep", doc: VSep(Words[any]("a b c")...), want: "a\nb\nc"},
		{name: "HCat", doc: HCat(Words[any]("a b c")...), want: "abc"},
		{name: "VCat", doc: VCat(Words[any]("a b c")...), want: "a\nb\nc"},
		{name: "Sep Fits", doc: Sep(Words[any]("a b c")...), want: "a b c"},
		{name: "CatAll Fits", doc: CatAll(Words[any]("a b c")...), want: "abc"},
		{name: "Join", doc: Join(Text[any](", "), Words[any]("x y")...), want: "x, y"},
		{name: "Enclose", doc: Parens(Text[any]("v")), want: "(v)"},
		{name: "Brackets", doc: Brackets(Text[any]("v")), want: "[v]"},
		{name: "Braces", doc: Braces(Text[any]("v")), want: "{v}"},
		{name: "Angles", doc: Angles(Text[any]("v")), want: "<v>"},
		{name: "DoubleQuotes", doc: DoubleQuotes(Text[any]("v")), want: `"v"`},
		{name: "SingleQuotes", doc: SingleQuotes(Text[any]("v")), want: "'v'"},
		{name: "Spaces", doc: Cat(Spaces[any](3), Text[any]("x")), want: "   x"},
		{name: "Spaces Negative", doc: Cat(Spaces[any](-1), Text[any]("x")), want: "x"},
		{name: "Fill Pads", doc: Cat(Fill(6, Text[any]("ab")), Text[any]("|")), want: "ab    |"},
		{name: "Fill Wide Enough", doc: Cat(Fill(2, Text[any]("abcd")), Text[any]("|")), want: "abcd|"},
		{name: "Indent", doc: Indent(4, VSep(Text[any]("a"), Text[any]("b"))), want: "    a\n    b"},
		{name: "Hang", doc: Cat(Text[any]("go "), Hang(2, VSep(Text[any]("a"), Text[any]("b")))), want: "go a\n     b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderWide(t, tt.doc)
			if got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPunctuate(t *testing.T) {
	ds := Punctuate(Char[any](','), Words[any]("a b c"))
	got := renderWide(t, HSep(ds...))
	if got != "a, b, c" {
		t.Errorf("rendered %q, want %q", got, "a, b, c")
	}
}

func TestWidth_ReportsRenderedWidth(t *testing.T) {
	d := Width(Text[any]("abc"), func(w int) *Doc[any] {
		return Text[any](map[bool]string{true: "!", false: "?"}[w == 3])
	})
	if got := renderWide(t, d); got != "abc!" {
		t.Errorf("rendered %q, want %q", got, "abc!")
	}
}

func TestFillBreak_BreaksWhenTooWide(t *testing.T) {
	d := Cat(FillBreak(2, Text[any]("abcd")), Text[any]("|"))
	if got := renderWide(t, d); got != "abcd\n  |" {
		t.Errorf("rendered %q, want %q", got, "abcd\n  |")
	}
}

func TestReflow_WrapsProse(t *testing.T) {
	got := renderAt(t, Reflow[any]("one two three four"), WithMaxWidth(9))
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}
