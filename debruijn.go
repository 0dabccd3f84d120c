package lambda

import "golang.org/x/exp/slices"

// The nameless (de Bruijn) form exists only to decide alpha-equivalence.
// It is computed from scratch at each comparison and never stored on a
// Term. Every variant is comparable, so == on two forms is deep structural
// equality of whole trees.
type nameless interface {
	isNameless()
}

// nIndex is a bound variable: the number of abstractions between the
// occurrence and its binder (0 = the nearest enclosing one).
type nIndex int

// nFree is a free variable, which keeps its name.
type nFree string

type nAbs struct {
	Body nameless
}

type nApp struct {
	Fn, Arg nameless
}

func (nIndex) isNameless() {}
func (nFree) isNameless()  {}
func (nAbs) isNameless()   {}
func (nApp) isNameless()   {}

// toNameless converts t given ctx, the stack of bound names innermost
// binder first.
func toNameless(t Term, ctx []string) nameless {
	switch t := t.(type) {
	case Var:
		if i := slices.Index(ctx, t.Name); i >= 0 {
			return nIndex(i)
		}
		return nFree(t.Name)
	case Abs:
		return nAbs{toNameless(t.Body, prepend(t.Param, ctx))}
	case App:
		return nApp{toNameless(t.Fn, ctx), toNameless(t.Arg, ctx)}
	}
	panic("unreachable")
}

// AlphaEq reports whether s and t are equal up to consistent renaming of
// bound variables. This is the only term equality in the package; named
// structural equality is never what callers want.
func AlphaEq(s, t Term) bool {
	return toNameless(s, nil) == toNameless(t, nil)
}
