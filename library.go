package lambda

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Library files hold one "name = term" binding per line. Blank lines are
// skipped, as is anything after a '#'. SaveLibrary output is accepted by
// LoadLibrary unchanged.

// LoadLibrary reads bindings from r into e, in file order. The first
// malformed line aborts the load; bindings before it stay bound.
func (e *Env) LoadLibrary(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		name, t, err := ParseStmt(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if name == "" {
			return fmt.Errorf("line %d: not a binding", line)
		}
		e.Bind(name, t)
	}
	return sc.Err()
}

// SaveLibrary writes every binding in insertion order.
func (e *Env) SaveLibrary(w io.Writer) error {
	for _, d := range e.Definitions() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", d.Name, d.Term); err != nil {
			return err
		}
	}
	return nil
}
