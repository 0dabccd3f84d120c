package lambda

import (
	"errors"
	"fmt"
)

// ErrNormalForm is returned by Step when no reduction rule applies: the
// term is already in the strategy's normal form.
var ErrNormalForm = errors.New("no rule applies")

// Strategy selects one of the three single-step reduction disciplines.
type Strategy int

const (
	CallByValue Strategy = iota
	CallByName
	NormalOrder
)

// ParseStrategy maps the identifiers "call-by-value", "call-by-name" and
// "normal-order" to their Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "call-by-value":
		return CallByValue, nil
	case "call-by-name":
		return CallByName, nil
	case "normal-order":
		return NormalOrder, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

func (s Strategy) String() string {
	switch s {
	case CallByValue:
		return "call-by-value"
	case CallByName:
		return "call-by-name"
	case NormalOrder:
		return "normal-order"
	}
	panic("unreachable")
}

// Step reduces t by one step, or returns ErrNormalForm when t is normal
// under s. Variables and abstractions alone are never redexes: a free
// variable is an irreducible value here because aliases are expanded
// before reduction begins, not during it.
func (s Strategy) Step(t Term) (Term, error) {
	switch s {
	case CallByValue:
		return stepValue(t)
	case CallByName:
		return stepName(t)
	case NormalOrder:
		return stepNormal(t)
	}
	panic("unreachable")
}

// stepValue reduces the function to an abstraction first, then the
// argument to a value, then beta-reduces.
func stepValue(t Term) (Term, error) {
	app, ok := t.(App)
	if !ok {
		return nil, ErrNormalForm
	}
	abs, ok := app.Fn.(Abs)
	if !ok {
		fn, err := stepValue(app.Fn)
		if err != nil {
			return nil, err
		}
		return App{fn, app.Arg}, nil
	}
	if arg, err := stepValue(app.Arg); err == nil {
		return App{abs, arg}, nil
	}
	return Subst(abs.Body, abs.Param, app.Arg), nil
}

// stepName beta-reduces as soon as the function is an abstraction,
// substituting the argument unreduced; the argument is never stepped on
// its own.
func stepName(t Term) (Term, error) {
	app, ok := t.(App)
	if !ok {
		return nil, ErrNormalForm
	}
	if abs, ok := app.Fn.(Abs); ok {
		return Subst(abs.Body, abs.Param, app.Arg), nil
	}
	fn, err := stepName(app.Fn)
	if err != nil {
		return nil, err
	}
	return App{fn, app.Arg}, nil
}

// stepNormal contracts the leftmost-outermost redex, descending into
// subterms and under binders when the head admits no step. ErrNormalForm
// here means full beta normal form.
func stepNormal(t Term) (Term, error) {
	switch t := t.(type) {
	case Var:
		return nil, ErrNormalForm
	case Abs:
		body, err := stepNormal(t.Body)
		if err != nil {
			return nil, err
		}
		return Abs{t.Param, t.Note, body}, nil
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Subst(abs.Body, abs.Param, t.Arg), nil
		}
		if fn, err := stepNormal(t.Fn); err == nil {
			return App{fn, t.Arg}, nil
		}
		if arg, err := stepNormal(t.Arg); err == nil {
			return App{t.Fn, arg}, nil
		}
		return nil, ErrNormalForm
	}
	panic("unreachable")
}
