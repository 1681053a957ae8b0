package doc

import "strings"

// This file is sugar only: everything here reduces to the primitive
// constructors in doc.go.

// Space is a single space character.
func Space[A any]() *Doc[A] { return Char[A](' ') }

// Spaces is a run of n spaces; n <= 0 is Empty.
func Spaces[A any](n int) *Doc[A] {
	if n <= 0 {
		return Empty[A]()
	}
	return textRun[A](strings.Repeat(" ", n))
}

// Align lays out d with the indentation level set to the current column,
// so that later lines inside d line up under its first character.
func Align[A any](d *Doc[A]) *Doc[A] {
	return Column(func(col int) *Doc[A] {
		return Nesting(func(indent int) *Doc[A] {
			return Nest(col-indent, d)
		})
	})
}

// Hang lays out d with its first line at the current column and all later
// lines indented by delta relative to it.
func Hang[A any](delta int, d *Doc[A]) *Doc[A] {
	return Align(Nest(delta, d))
}

// Indent moves the whole of d right by delta columns.
func Indent[A any](delta int, d *Doc[A]) *Doc[A] {
	return Hang(delta, Cat(Spaces[A](delta), d))
}

// Width lays out d, then appends f applied to d's rendered width.
func Width[A any](d *Doc[A], f func(w int) *Doc[A]) *Doc[A] {
	return Column(func(start int) *Doc[A] {
		return Cat(d, Column(func(end int) *Doc[A] {
			return f(end - start)
		}))
	})
}

// Fill lays out d and pads with spaces until it is at least w columns
// wide.
func Fill[A any](w int, d *Doc[A]) *Doc[A] {
	return Width(d, func(got int) *Doc[A] {
		return Spaces[A](w - got)
	})
}

// FillBreak is like Fill, but if d is already wider than w it starts a
// new line nested by w instead of padding.
func FillBreak[A any](w int, d *Doc[A]) *Doc[A] {
	return Width(d, func(got int) *Doc[A] {
		if got > w {
			return Nest(w, LineBreak[A]())
		}
		return Spaces[A](w - got)
	})
}

// Join concatenates ds with sep between each adjacent pair.
func Join[A any](sep *Doc[A], ds ...*Doc[A]) *Doc[A] {
	if len(ds) == 0 {
		return Empty[A]()
	}
	d := ds[0]
	for _, x := range ds[1:] {
		d = Cat(d, Cat(sep, x))
	}
	return d
}

// HSep joins ds with spaces.
func HSep[A any](ds ...*Doc[A]) *Doc[A] {
	return Join(Space[A](), ds...)
}

// VSep joins ds with line breaks that collapse to spaces when grouped.
func VSep[A any](ds ...*Doc[A]) *Doc[A] {
	return Join(Line[A](), ds...)
}

// Sep joins ds on one space-separated line when they fit, one per line
// otherwise.
func Sep[A any](ds ...*Doc[A]) *Doc[A] {
	return Group(VSep(ds...))
}

// FillSep joins ds with soft lines: as many as fit per line, breaking
// where needed.
func FillSep[A any](ds ...*Doc[A]) *Doc[A] {
	return Join(SoftLine[A](), ds...)
}

// HCat concatenates ds with nothing between them.
func HCat[A any](ds ...*Doc[A]) *Doc[A] {
	return Concat(ds...)
}

// VCat joins ds with line breaks that collapse to nothing when grouped.
func VCat[A any](ds ...*Doc[A]) *Doc[A] {
	return Join(LineBreak[A](), ds...)
}

// CatAll joins ds tightly on one line when they fit, one per line
// otherwise.
func CatAll[A any](ds ...*Doc[A]) *Doc[A] {
	return Group(VCat(ds...))
}

// FillCat joins ds with soft breaks: as many as fit per line, with no
// separator, breaking where needed.
func FillCat[A any](ds ...*Doc[A]) *Doc[A] {
	return Join(SoftBreak[A](), ds...)
}

// Words splits s on whitespace and turns each word into a Text.
func Words[A any](s string) []*Doc[A] {
	fields := strings.Fields(s)
	ds := make([]*Doc[A], len(fields))
	for i, f := range fields {
		ds[i] = textRun[A](f)
	}
	return ds
}

// Reflow turns prose into a document that fills each line up to the page
// width.
func Reflow[A any](s string) *Doc[A] {
	return FillSep(Words[A](s)...)
}

// Punctuate appends p to every document except the last. The result still
// needs joining with one of the sep/cat families.
func Punctuate[A any](p *Doc[A], ds []*Doc[A]) []*Doc[A] {
	out := make([]*Doc[A], len(ds))
	for i, d := range ds {
		if i < len(ds)-1 {
			out[i] = Cat(d, p)
		} else {
			out[i] = d
		}
	}
	return out
}

// Enclose wraps d as l d r.
func Enclose[A any](l, r, d *Doc[A]) *Doc[A] {
	return Cat(l, Cat(d, r))
}

// Surround wraps d in s on both sides.
func Surround[A any](s, d *Doc[A]) *Doc[A] {
	return Enclose(s, s, d)
}

// Parens wraps d in parentheses.
func Parens[A any](d *Doc[A]) *Doc[A] {
	return Enclose(Char[A]('('), Char[A](')'), d)
}

// Brackets wraps d in square brackets.
func Brackets[A any](d *Doc[A]) *Doc[A] {
	return Enclose(Char[A]('['), Char[A](']'), d)
}

// Braces wraps d in curly braces.
func Braces[A any](d *Doc[A]) *Doc[A] {
	return Enclose(Char[A]('{'), Char[A]('}'), d)
}

// Angles wraps d in angle brackets.
func Angles[A any](d *Doc[A]) *Doc[A] {
	return Enclose(Char[A]('<'), Char[A]('>'), d)
}

// SingleQuotes wraps d in single quotes.
func SingleQuotes[A any](d *Doc[A]) *Doc[A] {
	return Surround(Char[A]('\''), d)
}

// DoubleQuotes wraps d in double quotes.
func DoubleQuotes[A any](d *Doc[A]) *Doc[A] {
	return Surround(Char[A]('"'), d)
}
