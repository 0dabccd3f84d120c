package lambda

import (
	"strings"

	"github.com/samber/lo"
)

// Rendering is minimal-paren: application associates left, an abstraction
// body extends as far right as possible, and parentheses appear only where
// re-parsing would otherwise regroup. Everything String produces parses
// back to an alpha-equivalent term.

func (v Var) String() string {
	return v.Name
}

func (a Abs) String() string {
	if a.Note != nil {
		return "λ" + a.Param + ":" + a.Note.String() + "." + a.Body.String()
	}
	return "λ" + a.Param + "." + a.Body.String()
}

func (a App) String() string {
	fn := a.Fn.String()
	if _, ok := a.Fn.(Abs); ok {
		fn = "(" + fn + ")"
	}
	arg := a.Arg.String()
	switch a.Arg.(type) {
	case App, Abs:
		arg = "(" + arg + ")"
	}
	return fn + " " + arg
}

func (t TyBase) String() string {
	return t.Name
}

func (t TyArr) String() string {
	from := t.From.String()
	if _, ok := t.From.(TyArr); ok {
		from = "(" + from + ")"
	}
	return from + "->" + t.To.String()
}

func (t TyError) String() string {
	return "error: " + t.Msg
}

// TermLaTeX renders t for a math environment, parenthesized like String.
func TermLaTeX(t Term) string {
	switch t := t.(type) {
	case Var:
		return latexName(t.Name)
	case Abs:
		if t.Note != nil {
			return `\lambda ` + latexName(t.Param) + `{:}` + TyLaTeX(t.Note) + `.\,` + TermLaTeX(t.Body)
		}
		return `\lambda ` + latexName(t.Param) + `.\,` + TermLaTeX(t.Body)
	case App:
		fn := TermLaTeX(t.Fn)
		if _, ok := t.Fn.(Abs); ok {
			fn = `(` + fn + `)`
		}
		arg := TermLaTeX(t.Arg)
		switch t.Arg.(type) {
		case App, Abs:
			arg = `(` + arg + `)`
		}
		return fn + `\ ` + arg
	}
	panic("unreachable")
}

// TyLaTeX renders a type with \to for arrows.
func TyLaTeX(t Ty) string {
	switch t := t.(type) {
	case TyBase:
		return latexName(t.Name)
	case TyArr:
		from := TyLaTeX(t.From)
		if _, ok := t.From.(TyArr); ok {
			from = `(` + from + `)`
		}
		return from + ` \to ` + TyLaTeX(t.To)
	case TyError:
		return `\text{error: ` + t.Msg + `}`
	}
	panic("unreachable")
}

// DerivationLaTeX renders the proof tree as nested \dfrac fractions, rule
// names attached with \textsc.
func DerivationLaTeX(d *Derivation) string {
	concl := judgmentLaTeX(d)
	if len(d.Premises) == 0 {
		return `\dfrac{}{` + concl + `}\,\textsc{` + d.Rule + `}`
	}
	prems := strings.Join(lo.Map(d.Premises, func(p *Derivation, _ int) string {
		return DerivationLaTeX(p)
	}), `\quad `)
	return `\dfrac{` + prems + `}{` + concl + `}\,\textsc{` + d.Rule + `}`
}

func judgmentLaTeX(d *Derivation) string {
	ctx := strings.Join(lo.Map(d.Ctx, func(b TyBinding, _ int) string {
		return latexName(b.Name) + `{:}` + TyLaTeX(b.Ty)
	}), `,\ `)
	if ctx != "" {
		ctx += ` `
	}
	return ctx + `\vdash ` + TermLaTeX(d.Term) + ` : ` + TyLaTeX(d.Ty)
}

// latexName escapes the characters our identifiers may contain that are
// special to TeX: underscores and primes.
func latexName(s string) string {
	s = strings.ReplaceAll(s, "_", `\_`)
	return strings.ReplaceAll(s, "'", `{\prime}`)
}
