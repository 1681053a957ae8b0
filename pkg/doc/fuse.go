package doc

// FusionDepth controls how far Fuse looks for mergeable literals.
type FusionDepth uint8

const (
	// Shallow merges literals that are directly adjacent under Cat and
	// drops Empty identities. Cheap; safe to apply routinely.
	Shallow FusionDepth = iota
	// Deep additionally rewrites inside Nest, Union, FlatAlt, annotation
	// boundaries and the results of Column/Nesting callbacks, merging
	// literals that only become adjacent once that structure is entered.
	// More thorough and more expensive; structure-sharing in the input
	// expands into repeated work here.
	Deep
)

// Fuse rewrites d into an equivalent document with fewer nodes, merging
// adjacent literal runs so the engine traverses less. Layout output is
// identical for every Options; in particular no Union's flat/broken
// pairing is altered, only the branches are individually rewritten.
func Fuse[A any](depth FusionDepth, d *Doc[A]) *Doc[A] {
	return fuse(depth == Deep, d)
}

func fuse[A any](deep bool, d *Doc[A]) *Doc[A] {
	switch d.kind {
	case kindCat:
		l := fuse(deep, d.first)
		r := fuse(deep, d.second)
		if l.kind == kindEmpty {
			return r
		}
		if r.kind == kindEmpty {
			return l
		}
		if isLiteral(l) {
			if isLiteral(r) {
				return textRun[A](l.text + r.text)
			}
			// reassociate to reach the literal at the head of a Cat
			// chain: (lit <> (lit <> x)) -> (litlit <> x)
			if r.kind == kindCat && isLiteral(r.first) {
				return fuse(deep, Cat(textRun[A](l.text+r.first.text), r.second))
			}
		}
		return Cat(l, r)
	case kindNest:
		if !deep {
			return d
		}
		inner := fuse(true, d.first)
		switch {
		case inner.kind == kindNest:
			return fuse(true, Nest(d.delta+inner.delta, inner.first))
		case isLiteral(inner) || inner.kind == kindEmpty:
			// indentation only matters at a break; none in a literal
			return inner
		default:
			return Nest(d.delta, inner)
		}
	case kindUnion:
		if !deep {
			return d
		}
		return Union(fuse(true, d.first), fuse(true, d.second))
	case kindFlatAlt:
		if !deep {
			return d
		}
		return FlatAlt(fuse(true, d.first), fuse(true, d.second))
	case kindAnnotated:
		if !deep {
			return d
		}
		return Annotate(d.ann, fuse(true, d.first))
	case kindColumn:
		if !deep {
			return d
		}
		f := d.fn
		return Column(func(col int) *Doc[A] { return fuse(true, f(col)) })
	case kindNesting:
		if !deep {
			return d
		}
		f := d.fn
		return Nesting(func(i int) *Doc[A] { return fuse(true, f(i)) })
	default:
		return d
	}
}

// isLiteral reports whether d is a printable leaf that can merge with a
// neighboring one.
func isLiteral[A any](d *Doc[A]) bool {
	return d.kind == kindChar || d.kind == kindText
}
