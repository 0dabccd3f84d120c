package lambda

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Concrete syntax:
//
//	stmt := IDENT "=" term | term
//	term := ("λ" | "\") IDENT (":" type)? "." term | atom atom*
//	atom := IDENT | "(" term ")"
//	type := IDENT | type "->" type | "(" type ")"
//
// Application associates left, "->" associates right. Free identifiers
// parse to Var; whether they name an alias is the environment's business
// at expansion time, not the parser's.

// scan splits src into identifier and punctuation tokens.
func scan(src string) ([]string, error) {
	res := strings.Fields(src)
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	res = sep("(")
	res = sep(")")
	res = sep("->")
	res = sep(".")
	res = sep(":")
	res = sep("=")
	res = sep("λ")
	res = sep(`\`)
	for _, s := range res {
		if !isPunct(s) && !isIdent(s) {
			return nil, fmt.Errorf("unexpected token %q", s)
		}
	}
	return res, nil
}

func isPunct(s string) bool {
	switch s {
	case "(", ")", ".", ":", "->", "=", "λ", `\`:
		return true
	}
	return false
}

func isIdent(s string) bool {
	if s == "" || isPunct(s) {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\''
	}) < 0
}

// ParseTerm parses src as a single term, requiring all input be consumed.
func ParseTerm(src string) (Term, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) != 0 {
		return nil, fmt.Errorf(`expected token "EOF", got %q`, p.tokens[0])
	}
	return t, nil
}

// ParseStmt parses either a binding "name = term" or a bare term. For a
// bare term the returned name is empty.
func ParseStmt(src string) (string, Term, error) {
	tokens, err := scan(src)
	if err != nil {
		return "", nil, err
	}
	name := ""
	if len(tokens) >= 2 && tokens[1] == "=" {
		if !isIdent(tokens[0]) {
			return "", nil, fmt.Errorf("cannot bind %q", tokens[0])
		}
		name, tokens = tokens[0], tokens[2:]
	}
	p := &parser{tokens}
	t, err := p.parseTerm()
	if err != nil {
		return "", nil, err
	}
	if len(p.tokens) != 0 {
		return "", nil, fmt.Errorf(`expected token "EOF", got %q`, p.tokens[0])
	}
	return name, t, nil
}

type parser struct {
	tokens []string
}

func (p *parser) peek() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0]
}

func (p *parser) next(what string) (string, error) {
	if len(p.tokens) == 0 {
		return "", fmt.Errorf("expected %s, got \"EOF\"", what)
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, nil
}

func (p *parser) expect(tok string) error {
	got, err := p.next(fmt.Sprintf("token %q", tok))
	if err != nil {
		return err
	}
	if got != tok {
		return fmt.Errorf("expected token %q, got %q", tok, got)
	}
	return nil
}

func (p *parser) parseTerm() (Term, error) {
	if p.peek() == "λ" || p.peek() == `\` {
		p.tokens = p.tokens[1:]
		return p.parseLambda()
	}
	t, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case "", ")":
			return t, nil
		}
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		t = App{t, arg}
	}
}

// parseLambda parses the remainder of an abstraction, the λ itself already
// consumed. The domain annotation is optional.
func (p *parser) parseLambda() (Term, error) {
	param, err := p.next("identifier")
	if err != nil {
		return nil, err
	}
	if !isIdent(param) {
		return nil, fmt.Errorf("expected identifier, got %q", param)
	}
	var note Ty
	if p.peek() == ":" {
		p.tokens = p.tokens[1:]
		if note, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if err := p.expect("."); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{param, note, body}, nil
}

func (p *parser) parseAtom() (Term, error) {
	tok, err := p.next("term")
	if err != nil {
		return nil, err
	}
	switch tok {
	case "(":
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return t, p.expect(")")
	case "λ", `\`:
		return p.parseLambda()
	}
	if !isIdent(tok) {
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
	return Var{tok}, nil
}

func (p *parser) parseType() (Ty, error) {
	var from Ty
	tok, err := p.next("type")
	if err != nil {
		return nil, err
	}
	switch {
	case tok == "(":
		if from, err = p.parseType(); err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
	case isIdent(tok):
		from = TyBase{tok}
	default:
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
	if p.peek() == "->" {
		p.tokens = p.tokens[1:]
		to, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return TyArr{from, to}, nil
	}
	return from, nil
}
