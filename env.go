package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Env is an insertion-ordered store of named terms. It is owned by the
// driving process: mutation is expected to be serialized against in-flight
// evaluations, so Env does no locking of its own. Aliases get expanded
// before evaluation starts, never during it.
type Env struct {
	names []string
	defs  map[string]Term
}

func NewEnv() *Env {
	return &Env{defs: make(map[string]Term)}
}

// Bind inserts or overwrites a definition. Rebinding is not an error and
// keeps the name's original position in the listing order.
func (e *Env) Bind(name string, t Term) {
	if _, ok := e.defs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.defs[name] = t
}

// Unbind removes a definition. Removing an absent name is a no-op.
func (e *Env) Unbind(name string) {
	if _, ok := e.defs[name]; !ok {
		return
	}
	delete(e.defs, name)
	if i := slices.Index(e.names, name); i >= 0 {
		e.names = append(e.names[:i], e.names[i+1:]...)
	}
}

func (e *Env) Lookup(name string) (Term, bool) {
	t, ok := e.defs[name]
	return t, ok
}

func (e *Env) Len() int {
	return len(e.names)
}

// ContainsExpr reports whether some binding's term is alpha-equivalent to
// t, returning the first matching name in insertion order. Display layers
// use it to show an alias instead of the literal expression. The match is
// plain alpha-equivalence; entries are not normalized first.
func (e *Env) ContainsExpr(t Term) (string, bool) {
	for _, n := range e.names {
		if AlphaEq(e.defs[n], t) {
			return n, true
		}
	}
	return "", false
}

// Definition pairs a name with its bound term.
type Definition struct {
	Name string
	Term Term
}

// Definitions lists every binding in insertion order.
func (e *Env) Definitions() []Definition {
	return lo.Map(e.names, func(n string, _ int) Definition {
		return Definition{n, e.defs[n]}
	})
}

// Expand replaces every free occurrence of a defined alias in t by its
// (recursively expanded) definition, so that reduction never has to
// consult the environment. Bound occurrences shadow aliases, and the
// replacement is capture-avoiding because it goes through Subst. A name
// already under expansion is left alone, which cuts self-referential
// definition chains instead of looping.
func (e *Env) Expand(t Term) Term {
	return e.expand(t, make(map[string]bool))
}

func (e *Env) expand(t Term, path map[string]bool) Term {
	for name := range FreeVars(t) {
		def, ok := e.defs[name]
		if !ok || path[name] {
			continue
		}
		path[name] = true
		t = Subst(t, name, e.expand(def, path))
		delete(path, name)
	}
	return t
}
