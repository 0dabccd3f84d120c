package lambda

import "fmt"

// Derivation records one typing judgment (context, term, resulting type),
// the rule that produced it, and the subderivations it rests on. The tree
// mirrors the checker's recursion exactly. It is pure data; rendering
// belongs to the presentation layer.
type Derivation struct {
	Ctx      TyCtx
	Term     Term
	Ty       Ty
	Rule     string
	Premises []*Derivation
}

// Rule names attached to derivation nodes. T-Error marks the node where a
// check failed; ancestors of a failure keep their structural rule name
// while their type is the propagated TyError.
const (
	RuleVar   = "T-Var"
	RuleAbs   = "T-Abs"
	RuleApp   = "T-App"
	RuleError = "T-Error"
)

// TypeOf computes the simple type of t under ctx, or a TyError describing
// why t has none. Typing failures are ordinary values, never Go errors or
// panics, so a caller can report one and keep evaluating untyped.
func TypeOf(ctx TyCtx, t Term) Ty {
	_, ty := Derive(ctx, t)
	return ty
}

// Derive performs the same check as TypeOf while recording the proof tree
// that justifies the answer, one node per recursive call. An erroneous
// subterm short-circuits the remaining premises of its parent, matching
// TypeOf's absorbing-error behavior.
func Derive(ctx TyCtx, t Term) (*Derivation, Ty) {
	switch t := t.(type) {
	case Var:
		ty, ok := ctx.lookup(t.Name)
		if !ok {
			err := Ty(TyError{fmt.Sprintf("unbound variable %q", t.Name)})
			return &Derivation{ctx, t, err, RuleError, nil}, err
		}
		return &Derivation{ctx, t, ty, RuleVar, nil}, ty
	case Abs:
		if t.Note == nil {
			err := Ty(TyError{fmt.Sprintf("cannot type abstraction: binder %q has no type annotation", t.Param)})
			return &Derivation{ctx, t, err, RuleError, nil}, err
		}
		prem, body := Derive(prepend(TyBinding{t.Param, t.Note}, ctx), t.Body)
		ty := body
		if !IsError(body) {
			ty = TyArr{t.Note, body}
		}
		return &Derivation{ctx, t, ty, RuleAbs, []*Derivation{prem}}, ty
	case App:
		fnPrem, fn := Derive(ctx, t.Fn)
		if IsError(fn) {
			return &Derivation{ctx, t, fn, RuleApp, []*Derivation{fnPrem}}, fn
		}
		arr, ok := fn.(TyArr)
		if !ok {
			err := Ty(TyError{fmt.Sprintf("application of non-function: %s has type %s", t.Fn, fn)})
			return &Derivation{ctx, t, err, RuleError, []*Derivation{fnPrem}}, err
		}
		argPrem, arg := Derive(ctx, t.Arg)
		prems := []*Derivation{fnPrem, argPrem}
		if IsError(arg) {
			return &Derivation{ctx, t, arg, RuleApp, prems}, arg
		}
		if !TyEq(arg, arr.From) {
			err := Ty(TyError{fmt.Sprintf("argument type mismatch: want %s, got %s", arr.From, arg)})
			return &Derivation{ctx, t, err, RuleError, prems}, err
		}
		return &Derivation{ctx, t, arr.To, RuleApp, prems}, arr.To
	}
	panic("unreachable")
}
