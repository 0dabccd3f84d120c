package lambda

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Ty is the closed syntax of simple types.
type Ty interface {
	isType()
	fmt.Stringer
}

// TyBase is an atomic type such as A or Int.
type TyBase struct {
	Name string
}

// TyArr is the function type From -> To.
type TyArr struct {
	From, To Ty
}

// TyError is a failed typing judgment carrying a human-readable message.
// It is absorbing: no rule ever builds an arrow out of one; the checker
// propagates it unchanged to the root.
type TyError struct {
	Msg string
}

func (TyBase) isType()  {}
func (TyArr) isType()   {}
func (TyError) isType() {}

// IsError reports whether t is a TyError.
func IsError(t Ty) bool {
	_, ok := t.(TyError)
	return ok
}

// TyEq is structural type equality. A TyError operand is never equal to
// anything, itself included.
func TyEq(a, b Ty) bool {
	switch a := a.(type) {
	case TyBase:
		b, ok := b.(TyBase)
		return ok && a.Name == b.Name
	case TyArr:
		b, ok := b.(TyArr)
		return ok && TyEq(a.From, b.From) && TyEq(a.To, b.To)
	case TyError:
		return false
	}
	panic("unreachable")
}

// TyBinding associates a variable name with its type.
type TyBinding struct {
	Name string
	Ty   Ty
}

// TyCtx is a typing context, innermost binding first. It is created fresh
// per top-level check and never persisted.
type TyCtx []TyBinding

func (c TyCtx) lookup(name string) (Ty, bool) {
	i := slices.IndexFunc(c, func(b TyBinding) bool { return b.Name == name })
	if i < 0 {
		return nil, false
	}
	return c[i].Ty, true
}
