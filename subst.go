package lambda

// Subst replaces every free occurrence of name in target with repl,
// renaming binders in target where needed so that no free variable of repl
// is captured. The result is alpha-equivalent to the mathematical
// capture-avoiding substitution whatever fresh names get picked.
func Subst(target Term, name string, repl Term) Term {
	switch t := target.(type) {
	case Var:
		if t.Name == name {
			return repl
		}
		return t
	case App:
		return App{Subst(t.Fn, name, repl), Subst(t.Arg, name, repl)}
	case Abs:
		if t.Param == name {
			// The binder shadows name; nothing below is free.
			return t
		}
		if _, capture := FreeVars(repl)[t.Param]; capture {
			avoid := FreeVars(repl)
			collectNames(t.Body, avoid)
			avoid[name] = struct{}{}
			fresh := pickFreshName(t.Param, avoid)
			t = Abs{fresh, t.Note, Subst(t.Body, t.Param, Var{fresh})}
		}
		return Abs{t.Param, t.Note, Subst(t.Body, name, repl)}
	}
	panic("unreachable")
}

// pickFreshName primes base until it collides with nothing in avoid.
func pickFreshName(base string, avoid map[string]struct{}) string {
	if _, taken := avoid[base]; taken {
		return pickFreshName(base+"'", avoid)
	}
	return base
}
