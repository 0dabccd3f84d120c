package lambda

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestSubstBasics(t *testing.T) {
	for _, tc := range []struct {
		target, name, repl, want string
	}{
		{`x`, "x", `λy.y`, `λy.y`},
		{`z`, "x", `λy.y`, `z`},
		{`x x`, "x", `y`, `y y`},
		{`λx.x`, "x", `y`, `λx.x`}, // binder shadows
		{`λz.x z`, "x", `y`, `λz.y z`},
	} {
		got := Subst(parse(t, tc.target), tc.name, parse(t, tc.repl))
		wantAlphaEq(t, got, tc.want)
	}
}

// Substituting a replacement whose free variables collide with a binder
// must rename the binder, never capture.
func TestSubstCaptureAvoidance(t *testing.T) {
	// (λy.x)[x := y] must not become λy.y.
	got := Subst(parse(t, `λy.x`), "x", parse(t, `y`))
	if AlphaEq(got, parse(t, `λy.y`)) {
		t.Fatalf("captured: got %s", got)
	}
	wantAlphaEq(t, got, `λz.y`)
	if !slices.Contains(freeNames(got), "y") {
		t.Errorf("free y of the replacement vanished: %s", got)
	}

	// Deeper: (λy.x y)[x := λz.y z] keeps the outer y free.
	got = Subst(parse(t, `λy.x y`), "x", parse(t, `λz.y z`))
	wantAlphaEq(t, got, `λw.(λz.y z) w`)
	if !slices.Contains(freeNames(got), "y") {
		t.Errorf("free y of the replacement vanished: %s", got)
	}
}

// The fresh name is the binder primed past every colliding name.
func TestSubstFreshNaming(t *testing.T) {
	got := Subst(parse(t, `λy.x`), "x", parse(t, `y`))
	abs, ok := got.(Abs)
	if !ok {
		t.Fatalf("got %T, want Abs", got)
	}
	if abs.Param != "y'" {
		t.Errorf("fresh binder = %q, want \"y'\"", abs.Param)
	}

	// y' is free in the replacement too, so priming continues.
	got = Subst(parse(t, `λy.x`), "x", parse(t, `y y'`))
	abs = got.(Abs)
	if abs.Param != "y''" {
		t.Errorf("fresh binder = %q, want \"y''\"", abs.Param)
	}
}

// Renaming must also avoid the substituted name itself: in
// (λx'.x x')[x := x'] the binder may not become x'.
func TestSubstFreshAvoidsSubstName(t *testing.T) {
	got := Subst(parse(t, `λx'.x x'`), "x", parse(t, `x'`))
	wantAlphaEq(t, got, `λz.x' z`)
	if got := freeNames(got); !slices.Equal(got, []string{"x'"}) {
		t.Errorf("free names = %v, want [x']", got)
	}
}
