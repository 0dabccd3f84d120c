package lambda

import "testing"

func TestAlphaEqBoundNames(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want bool
	}{
		{`λx.x`, `λy.y`, true},
		{`λx.λy.x`, `λa.λb.a`, true},
		{`λx.λy.x`, `λx.λy.y`, false},
		{`λx.x y`, `λz.z y`, true},
		{`λx.x y`, `λx.x z`, false}, // free names matter
		{`x`, `x`, true},
		{`x`, `y`, false},
		{`λx.x`, `λx.x x`, false},
		{`(λx.x) (λy.y)`, `(λa.a) (λb.b)`, true},
	} {
		if got := AlphaEq(parse(t, tc.a), parse(t, tc.b)); got != tc.want {
			t.Errorf("AlphaEq(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// AlphaEq must be an equivalence relation.
func TestAlphaEqEquivalence(t *testing.T) {
	a := parse(t, `λx.λy.x y`)
	b := parse(t, `λf.λz.f z`)
	c := parse(t, `λu.λv.u v`)
	if !AlphaEq(a, a) {
		t.Error("not reflexive")
	}
	if !AlphaEq(a, b) || !AlphaEq(b, a) {
		t.Error("not symmetric")
	}
	if !AlphaEq(a, b) || !AlphaEq(b, c) || !AlphaEq(a, c) {
		t.Error("not transitive")
	}
}

func TestToNamelessIndices(t *testing.T) {
	// λx.λy.x y ~ λ.λ.1 0
	got := toNameless(parse(t, `λx.λy.x y`), nil)
	want := nameless(nAbs{nAbs{nApp{nIndex(1), nIndex(0)}}})
	if got != want {
		t.Errorf("toNameless = %#v, want %#v", got, want)
	}
	// Free variables keep their names.
	got = toNameless(parse(t, `λx.x y`), nil)
	want = nAbs{nApp{nIndex(0), nFree("y")}}
	if got != want {
		t.Errorf("toNameless = %#v, want %#v", got, want)
	}
	// A non-empty context binds names by distance.
	got = toNameless(parse(t, `x`), []string{"x", "y"})
	if got != nameless(nIndex(0)) {
		t.Errorf("toNameless under context = %#v, want index 0", got)
	}
}
