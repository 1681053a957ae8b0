package doc

// flatState reports what flattening would do to a document.
type flatState uint8

const (
	// flatNever: the document contains content that refuses to flatten
	// (HardLine, Fail); a group around it must stay broken.
	flatNever flatState = iota
	// flatSame: flattening is the identity; no union is needed.
	flatSame
	// flatChanged: flattening produces a genuinely different document.
	flatChanged
)

// Group offers the engine a choice between d laid out on one line and d
// with its internal breaks intact. When flattening d changes nothing, or
// can never succeed, no union is built.
func Group[A any](d *Doc[A]) *Doc[A] {
	switch d.kind {
	case kindUnion:
		// already grouped
		return d
	case kindFlatAlt:
		flat, st := flatten(d.second)
		switch st {
		case flatChanged, flatSame:
			return Union(flat, d)
		default:
			return d
		}
	}
	flat, st := flatten(d)
	if st == flatChanged {
		return Union(flat, d)
	}
	return d
}

// flatten rewrites d into its single-line form: Line becomes a space,
// FlatAlt resolves to its flat branch and Union to its flat branch. The
// returned state is flatNever when some branch cannot flatten, in which
// case the returned document is Fail.
func flatten[A any](d *Doc[A]) (*Doc[A], flatState) {
	switch d.kind {
	case kindFail:
		return d, flatNever
	case kindEmpty, kindChar, kindText:
		return d, flatSame
	case kindLine:
		return Char[A](' '), flatChanged
	case kindFlatAlt:
		flat, st := flatten(d.second)
		if st == flatNever {
			return Fail[A](), flatNever
		}
		return flat, flatChanged
	case kindCat:
		l, ls := flatten(d.first)
		r, rs := flatten(d.second)
		if ls == flatNever || rs == flatNever {
			return Fail[A](), flatNever
		}
		if ls == flatSame && rs == flatSame {
			return d, flatSame
		}
		return Cat(l, r), flatChanged
	case kindNest:
		inner, st := flatten(d.first)
		switch st {
		case flatNever:
			return Fail[A](), flatNever
		case flatSame:
			return d, flatSame
		default:
			return Nest(d.delta, inner), flatChanged
		}
	case kindUnion:
		return d.first, flatChanged
	case kindColumn:
		f := d.fn
		return Column(func(col int) *Doc[A] { return flattenOrFail(f(col)) }), flatChanged
	case kindNesting:
		f := d.fn
		return Nesting(func(i int) *Doc[A] { return flattenOrFail(f(i)) }), flatChanged
	case kindAnnotated:
		inner, st := flatten(d.first)
		switch st {
		case flatNever:
			return Fail[A](), flatNever
		case flatSame:
			return d, flatSame
		default:
			return Annotate(d.ann, inner), flatChanged
		}
	default:
		return d, flatSame
	}
}

// flattenOrFail collapses the state into the document: un-flattenable
// content becomes Fail. Used under Column/Nesting where the state cannot
// be known until layout supplies the argument.
func flattenOrFail[A any](d *Doc[A]) *Doc[A] {
	flat, st := flatten(d)
	if st == flatNever {
		return Fail[A]()
	}
	return flat
}
