// Package lambda implements the pure lambda calculus: named terms,
// capture-avoiding substitution, three single-step reduction strategies
// (call-by-value, call-by-name, normal order), an evaluation driver with
// immediate-cycle detection, an insertion-ordered definition environment,
// and a simple (monomorphic, annotation-driven) type checker with
// derivation trees. Parsing and rendering of terms live in this package
// too; the interactive front end is cmd/lam.
package lambda

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Term is the closed syntax of lambda terms. A term is a finite immutable
// tree; every transformation in this package builds a new one, so terms can
// be shared freely.
type Term interface {
	isTerm()
	fmt.Stringer
}

// Var references a binder or a free/global name.
type Var struct {
	Name string
}

// Abs binds Param over Body. Note optionally annotates the parameter's type
// for the type checker (nil when the binder is unannotated); evaluation
// never reads it.
type Abs struct {
	Param string
	Note  Ty
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

// FreeVars returns the set of names occurring free in t.
func FreeVars(t Term) map[string]struct{} {
	free := make(map[string]struct{})
	collectFree(t, nil, free)
	return free
}

func collectFree(t Term, bound []string, free map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		if !slices.Contains(bound, t.Name) {
			free[t.Name] = struct{}{}
		}
	case Abs:
		collectFree(t.Body, prepend(t.Param, bound), free)
	case App:
		collectFree(t.Fn, bound, free)
		collectFree(t.Arg, bound, free)
	default:
		panic("unreachable")
	}
}

// Closed reports whether t has no free variables. Callers that require
// well-formed (closed) input check this after alias expansion, before
// evaluation.
func Closed(t Term) bool {
	return len(FreeVars(t)) == 0
}

// collectNames adds every name occurring in t, bound or free, to names.
func collectNames(t Term, names map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		names[t.Name] = struct{}{}
	case Abs:
		names[t.Param] = struct{}{}
		collectNames(t.Body, names)
	case App:
		collectNames(t.Fn, names)
		collectNames(t.Arg, names)
	default:
		panic("unreachable")
	}
}
