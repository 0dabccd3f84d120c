package lambda

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

const sampleLibrary = `# combinators
id = λx.x
tru = λx.λy.x   # boolean true
fls = λx.λy.y

not = λb.b fls tru
`

func TestLoadLibrary(t *testing.T) {
	e := NewEnv()
	if err := e.LoadLibrary(strings.NewReader(sampleLibrary)); err != nil {
		t.Fatal(err)
	}
	if got := defNames(e); !slices.Equal(got, []string{"id", "tru", "fls", "not"}) {
		t.Fatalf("names = %v", got)
	}
	tru, _ := e.Lookup("tru")
	wantAlphaEq(t, tru, `λa.λb.a`)

	// not tru reduces to fls once expanded.
	got, outcome := Reduce(e.Expand(parse(t, `not tru`)), NormalOrder, nil)
	if outcome != NormalForm {
		t.Fatalf("outcome = %v", outcome)
	}
	wantAlphaEq(t, got, `λx.λy.y`)
	if name, ok := e.ContainsExpr(got); !ok || name != "fls" {
		t.Errorf("ContainsExpr = %q, %v, want fls", name, ok)
	}
}

func TestLoadLibraryErrors(t *testing.T) {
	e := NewEnv()
	err := e.LoadLibrary(strings.NewReader("id = λx.x\noops = λ\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want a line 2 error", err)
	}
	// Bindings before the bad line survive.
	if _, ok := e.Lookup("id"); !ok {
		t.Error("id lost after failed load")
	}

	err = e.LoadLibrary(strings.NewReader("λx.x\n"))
	if err == nil || !strings.Contains(err.Error(), "not a binding") {
		t.Fatalf("err = %v, want not-a-binding", err)
	}
}

func TestSaveLibraryRoundTrip(t *testing.T) {
	e := NewEnv()
	e.Bind("id", parse(t, `λx.x`))
	e.Bind("app", parse(t, `λf.λx.f x`))
	e.Bind("typed", parse(t, `λx:A->B.x`))

	var b strings.Builder
	if err := e.SaveLibrary(&b); err != nil {
		t.Fatal(err)
	}

	loaded := NewEnv()
	if err := loaded.LoadLibrary(strings.NewReader(b.String())); err != nil {
		t.Fatalf("reloading saved library: %v\n%s", err, b.String())
	}
	if !slices.Equal(defNames(loaded), defNames(e)) {
		t.Fatalf("order changed: %v vs %v", defNames(loaded), defNames(e))
	}
	for _, d := range e.Definitions() {
		got, ok := loaded.Lookup(d.Name)
		if !ok || !AlphaEq(got, d.Term) {
			t.Errorf("%s: reloaded as %v, want %v", d.Name, got, d.Term)
		}
	}
}
