package lambda

// Outcome classifies how Reduce stopped.
type Outcome int

const (
	// NormalForm: the final term admits no step under the strategy.
	NormalForm Outcome = iota
	// Diverging: a step produced a term alpha-equivalent to its
	// predecessor. This is a deliberately narrow heuristic that only
	// catches immediately self-reproducing redexes such as
	// (λx.x x)(λx.x x); it is not a general halting check and must not
	// grow into one.
	Diverging
)

func (o Outcome) String() string {
	switch o {
	case NormalForm:
		return "normal form"
	case Diverging:
		return "diverging"
	}
	panic("unreachable")
}

// Reduce repeatedly steps t under s and returns the final term together
// with the reason stepping stopped. report, if non-nil, is called with
// every reduct in order, so callers can display or suppress intermediate
// steps. The sequence is unbounded in principle: when a term grows forever
// without ever reproducing itself, Reduce does not return. Callers needing
// a termination guarantee beyond the two terminal conditions must impose
// their own step or time budget around Step.
func Reduce(t Term, s Strategy, report func(Term)) (Term, Outcome) {
	for {
		next, err := s.Step(t)
		if err != nil {
			return t, NormalForm
		}
		if report != nil {
			report(next)
		}
		if AlphaEq(next, t) {
			return next, Diverging
		}
		t = next
	}
}
