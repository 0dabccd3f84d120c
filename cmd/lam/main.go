// Command lam is an interactive interpreter for the pure lambda calculus.
//
//	usage: lam [ -strategy id ] [ -load file ] [ -max-steps n ] [ -quiet ]
//
// A line of the form "name = term" defines an alias; a bare term is
// expanded against the environment and reduced under the current strategy,
// printing every intermediate step. Colon commands inspect and mutate the
// session; see :help.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"lambda"
)

const (
	historyFile = ".lam_history"
	prompt      = "λ> "
)

const helpText = `REPL input:
  name = term          Bind an alias.
  term                 Expand aliases, reduce, print each step.

Commands:
  :env                 List definitions in insertion order.
  :rm <name>           Remove a definition.
  :strategy [id]       Show or set the strategy
                       (normal-order | call-by-name | call-by-value).
  :type <term>         Type the term under the empty context.
  :derive <term>       Print the LaTeX typing derivation.
  :latex <term>        Print the term as LaTeX.
  :load <file>         Load a library file.
  :save <file>         Save the environment to a library file.
  :help                This text.
  :quit                Exit.`

func usage() {
	fmt.Fprint(os.Stderr, "usage: lam [ -strategy id ] [ -load file ] [ -max-steps n ] [ -quiet ]\n\n")
	fmt.Fprint(os.Stderr, "lam is an interactive interpreter for the pure lambda calculus.\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// session owns the one mutable resource, the environment, and the display
// settings. Everything else is pure library calls.
type session struct {
	env      *lambda.Env
	strategy lambda.Strategy
	maxSteps int
	quiet    bool
}

func main() {
	s := &session{env: lambda.NewEnv(), strategy: lambda.NormalOrder}
	flag.Usage = usage
	flag.Func("strategy", "reduction strategy `id` (default normal-order)", func(v string) error {
		st, err := lambda.ParseStrategy(v)
		if err != nil {
			return err
		}
		s.strategy = st
		return nil
	})
	flag.Func("load", "library `file` to load at startup (repeatable)", func(v string) error {
		return s.loadFile(v)
	})
	flag.IntVar(&s.maxSteps, "max-steps", 10000, "stop reporting after `n` steps, 0 for no limit")
	flag.BoolVar(&s.quiet, "quiet", false, "suppress intermediate steps")
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := s.command(strings.TrimSpace(line)); quit {
				return
			}
			continue
		}
		s.evalLine(line)
	}
}

// command dispatches a colon command, reporting whether to exit.
func (s *session) command(line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Println(helpText)
	case ":env":
		for _, d := range s.env.Definitions() {
			fmt.Printf("%s = %s\n", d.Name, d.Term)
		}
	case ":rm":
		if rest == "" {
			fmt.Println("usage: :rm <name>")
			break
		}
		s.env.Unbind(rest)
	case ":strategy":
		if rest == "" {
			fmt.Println(s.strategy)
			break
		}
		st, err := lambda.ParseStrategy(rest)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		s.strategy = st
	case ":type":
		if t, ok := s.parseArg(rest); ok {
			fmt.Println(lambda.TypeOf(nil, s.env.Expand(t)))
		}
	case ":derive":
		if t, ok := s.parseArg(rest); ok {
			d, _ := lambda.Derive(nil, s.env.Expand(t))
			fmt.Println(lambda.DerivationLaTeX(d))
		}
	case ":latex":
		if t, ok := s.parseArg(rest); ok {
			fmt.Println(lambda.TermLaTeX(s.env.Expand(t)))
		}
	case ":load":
		if rest == "" {
			fmt.Println("usage: :load <file>")
			break
		}
		if err := s.loadFile(rest); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case ":save":
		if rest == "" {
			fmt.Println("usage: :save <file>")
			break
		}
		if err := s.saveFile(rest); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	default:
		fmt.Printf("unknown command %q, try :help\n", cmd)
	}
	return false
}

func (s *session) parseArg(src string) (lambda.Term, bool) {
	if src == "" {
		fmt.Println("usage: :cmd <term>")
		return nil, false
	}
	t, err := lambda.ParseTerm(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	return t, true
}

// evalLine handles a binding or a term to reduce.
func (s *session) evalLine(line string) {
	name, t, err := lambda.ParseStmt(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if name != "" {
		s.env.Bind(name, t)
		return
	}
	t = s.env.Expand(t)
	if free := lambda.FreeVars(t); len(free) > 0 {
		names := maps.Keys(free)
		slices.Sort(names)
		fmt.Fprintf(os.Stderr, "unbound: %s\n", strings.Join(names, " "))
		return
	}
	s.reduce(t)
}

// reduce runs the driver, printing each transition unless -quiet. The
// -max-steps budget is the externally imposed counter the core leaves to
// its caller; 0 means rely on the driver's own terminal conditions alone.
func (s *session) reduce(t lambda.Term) {
	if s.maxSteps <= 0 {
		final, outcome := lambda.Reduce(t, s.strategy, s.report)
		s.finish(final, outcome)
		return
	}
	cur := t
	for steps := 0; ; steps++ {
		next, err := s.strategy.Step(cur)
		if err != nil {
			s.finish(cur, lambda.NormalForm)
			return
		}
		s.report(next)
		if lambda.AlphaEq(next, cur) {
			s.finish(next, lambda.Diverging)
			return
		}
		if steps+1 >= s.maxSteps {
			fmt.Printf("stopped after %d steps; raise -max-steps to continue\n", s.maxSteps)
			return
		}
		cur = next
	}
}

func (s *session) report(t lambda.Term) {
	if !s.quiet {
		fmt.Printf("→ %s\n", t)
	}
}

func (s *session) finish(t lambda.Term, o lambda.Outcome) {
	switch o {
	case lambda.Diverging:
		fmt.Printf("diverging under %s\n", s.strategy)
	default:
		if alias, ok := s.env.ContainsExpr(t); ok {
			fmt.Printf("%s    (= %s)\n", t, alias)
		} else {
			fmt.Println(t)
		}
	}
}

func (s *session) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.env.LoadLibrary(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (s *session) saveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.env.SaveLibrary(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
