// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package syntax parses shell source written in the bash command
// language into a structured AST with exact source positions, without
// executing anything.
package syntax

import "fmt"

// Parser holds the configuration for parsing shell source. A Parser
// value is safe to reuse and to use concurrently: every Parse call
// runs on a fresh copy of the mutable parsing state.
type Parser struct {
	strict  bool
	limited bool
	limit   int
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// Strict controls how the parser treats incomplete input. In strict
// mode, the default, a here-document cut short by the end of input is
// an error. When strict is false the partial body read so far is
// attached instead, and a here-document with no body at all is left
// unresolved.
func Strict(strict bool) ParserOption {
	return func(p *Parser) { p.strict = strict }
}

// ExpansionLimit bounds the depth of nested parser instances used for
// the interiors of command and process substitutions. At depth n the
// interior of a substitution n+1 levels deep is left unparsed: its raw
// text stays in the enclosing word, which gets no sub-node for it.
// Without this option the depth is unbounded.
func ExpansionLimit(n int) ParserOption {
	return func(p *Parser) { p.limited = true; p.limit = n }
}

// NewParser allocates a new Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{strict: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses src into a sequence of top-level trees, one per
// newline-separated command list. Errors are returned as *ParseError,
// *MatchedPairError, *HeredocError or *UnsupportedError.
func (p *Parser) Parse(src string) ([]Node, error) {
	pp := &parser{src: src, strict: p.strict, limited: p.limited, limit: p.limit}
	units, _, err := pp.parseProgram(0, len(src))
	return units, err
}

// Parse parses src with a throwaway parser using the given options.
func Parse(src string, opts ...ParserOption) ([]Node, error) {
	return NewParser(opts...).Parse(src)
}

// parser is the per-call state of a parse: the token stream, one
// token of lookahead, and the expansion budget. Nested substitutions
// get parser instances of their own over a narrower window.
type parser struct {
	src     string
	strict  bool
	limited bool
	limit   int

	tok   *Tokenizer
	cur   Token
	queue []Token
}

func (p *parser) next() error {
	if len(p.queue) > 0 {
		p.cur = p.queue[0]
		p.queue = p.queue[1:]
		return nil
	}
	tok, err := p.tok.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) peek() (Token, error) {
	if len(p.queue) == 0 {
		tok, err := p.tok.Next()
		if err != nil {
			return Token{}, err
		}
		p.queue = append(p.queue, tok)
	}
	return p.queue[0], nil
}

func (p *parser) skipNewlines() error {
	for p.cur.Type == NEWLINE {
		if err := p.next(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) unexpected() error {
	if p.cur.Type == EOF {
		return &ParseError{Text: "unexpected EOF", Input: p.src, Pos: p.tok.eofErrPos()}
	}
	text := fmt.Sprintf("unexpected token '%s'", tokenRepr(p.cur.Value))
	return &ParseError{Text: text, Input: p.src, Pos: p.cur.Pos}
}

func (p *parser) slice(sp Span) string { return p.src[sp.Start:sp.End] }

func rsvd(tok Token) *ReservedWord {
	return &ReservedWord{Span: tok.span(), S: tok.Value, Word: tok.Value}
}

func opNode(tok Token) *Operator {
	return &Operator{Span: tok.span(), S: tok.Value, Op: tok.Value}
}

func pipeNode(tok Token) *Pipe {
	return &Pipe{Span: tok.span(), S: tok.Value, Pipe: tok.Value}
}

// synEnd is the syntactic end of a node: for a here-document
// redirection it stops at the delimiter word, so that enclosing spans
// do not swallow a body that is gathered from later lines.
func synEnd(n Node) int {
	if r, ok := n.(*Redirect); ok {
		return r.Output.Pos().End
	}
	return n.Pos().End
}

func partsSpan(parts []Node) Span {
	return Span{parts[0].Pos().Start, synEnd(parts[len(parts)-1])}
}

// parseProgram reads input units from the window src[start:end] until
// EOF. It returns the units along with the newline tokens that
// terminated each of them, which nested parsing uses to join units.
func (p *parser) parseProgram(start, end int) ([]Node, []Token, error) {
	p.tok = newTokenizer(p.src, start, end, p.strict)
	if err := p.next(); err != nil {
		return nil, nil, err
	}
	var units []Node
	var seps []Token
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, nil, err
		}
		if p.cur.Type == EOF {
			return units, seps, nil
		}
		unit, err := p.parseSimpleList()
		if err != nil {
			return nil, nil, err
		}
		units = append(units, unit)
		switch p.cur.Type {
		case NEWLINE:
			seps = append(seps, p.cur)
			if err := p.next(); err != nil {
				return nil, nil, err
			}
		case EOF:
		default:
			return nil, nil, p.unexpected()
		}
	}
}

// nestedParse runs a child parser over the interior of a substitution.
// ok is false when the expansion limit was exhausted and the interior
// was left unparsed.
func (p *parser) nestedParse(start, end int) (Node, bool, error) {
	child := &parser{src: p.src, strict: p.strict, limited: p.limited, limit: p.limit}
	if child.limited {
		child.limit--
		if child.limit < 0 {
			return nil, false, nil
		}
	}
	units, seps, err := child.parseProgram(start, end)
	if err != nil {
		return nil, false, err
	}
	return joinUnits(p.src, units, seps), true, nil
}

// joinUnits merges the trees of a multi-line substitution interior
// into a single node, splicing list parts and joining units with
// newline operators.
func joinUnits(src string, units []Node, seps []Token) Node {
	if len(units) == 0 {
		return nil
	}
	if len(units) == 1 {
		return units[0]
	}
	var parts []Node
	for i, u := range units {
		if lst, ok := u.(*List); ok {
			parts = append(parts, lst.Parts...)
		} else {
			parts = append(parts, u)
		}
		if i == len(units)-1 {
			break
		}
		if _, ok := parts[len(parts)-1].(*Operator); !ok && i < len(seps) {
			nl := seps[i]
			parts = append(parts, &Operator{Span: nl.span(), S: nl.Value, Op: nl.Value})
		}
	}
	sp := Span{parts[0].Pos().Start, synEnd(parts[len(parts)-1])}
	return &List{Span: sp, S: src[sp.Start:sp.End], Parts: parts}
}

// parseSimpleList parses one top-level and-or list, flat: executables
// alternating with '&&', '||', ';' and '&' operators. A trailing ';'
// or '&' is kept as a final operator node.
func (p *parser) parseSimpleList() (Node, error) {
	n, err := p.parsePipelineCommand()
	if err != nil {
		return nil, err
	}
	parts := []Node{n}
	for {
		switch p.cur.Type {
		case LAND, LOR:
			op := p.cur
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			parts = append(parts, opNode(op))
		case AND, SEMICOLON:
			op := p.cur
			if err := p.next(); err != nil {
				return nil, err
			}
			parts = append(parts, opNode(op))
			if p.cur.Type == NEWLINE || p.cur.Type == EOF {
				return p.listNode(parts), nil
			}
		default:
			if len(parts) == 1 {
				return parts[0], nil
			}
			return p.listNode(parts), nil
		}
		if n, err = p.parsePipelineCommand(); err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
}

func (p *parser) listNode(parts []Node) Node {
	if len(parts) == 1 {
		return parts[0]
	}
	sp := partsSpan(parts)
	return &List{Span: sp, S: p.slice(sp), Parts: parts}
}

// parseCompoundList parses the command list inside a compound
// construct, stopping before the reserved word or closer that ends it.
// Newlines act as separators and become '\n' operator nodes.
func (p *parser) parseCompoundList() (Node, error) {
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	n, err := p.parsePipelineCommand()
	if err != nil {
		return nil, err
	}
	parts := []Node{n}
	for {
		switch p.cur.Type {
		case LAND, LOR:
			op := p.cur
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			parts = append(parts, opNode(op))
		case SEMICOLON, AND:
			op := p.cur
			if err := p.next(); err != nil {
				return nil, err
			}
			parts = append(parts, opNode(op))
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			if p.atCompoundEnd() {
				return p.listNode(parts), nil
			}
		case NEWLINE:
			nl := p.cur
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			if p.atCompoundEnd() {
				return p.listNode(parts), nil
			}
			parts = append(parts, &Operator{Span: nl.span(), S: nl.Value, Op: nl.Value})
		default:
			return p.listNode(parts), nil
		}
		if n, err = p.parsePipelineCommand(); err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
}

func (p *parser) atCompoundEnd() bool {
	switch p.cur.Type {
	case THEN, ELIF, ELSE, FI, DO, DONE, ESAC, RPAREN, RBRACE, EOF,
		DSEMI, SEMIFALL, DSEMIFALL:
		return true
	}
	return false
}

// parsePipelineCommand parses a pipeline with an optional leading '!'.
func (p *parser) parsePipelineCommand() (Node, error) {
	switch p.cur.Type {
	case BANG:
		bang := rsvd(p.cur)
		if err := p.next(); err != nil {
			return nil, err
		}
		inner, err := p.parsePipelineCommand()
		if err != nil {
			return nil, err
		}
		if pl, ok := inner.(*Pipeline); ok {
			pl.Parts = append([]Node{bang}, pl.Parts...)
			pl.Start = bang.Start
			pl.S = p.slice(pl.Span)
			return pl, nil
		}
		parts := []Node{bang, inner}
		sp := partsSpan(parts)
		return &Pipeline{Span: sp, S: p.slice(sp), Parts: parts}, nil
	case TIME:
		return nil, &UnsupportedError{Construct: "time command", Pos: p.cur.Pos}
	}
	return p.parsePipeline()
}

func (p *parser) parsePipeline() (Node, error) {
	n, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	parts := []Node{n}
	for p.cur.Type == OR || p.cur.Type == PIPEALL {
		parts = append(parts, pipeNode(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if n, err = p.parseCommand(); err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	sp := partsSpan(parts)
	return &Pipeline{Span: sp, S: p.slice(sp), Parts: parts}, nil
}

func (p *parser) parseCommand() (Node, error) {
	switch p.cur.Type {
	case IF:
		return p.compoundCommand(p.parseIf)
	case WHILE, UNTIL:
		return p.compoundCommand(p.parseWhileUntil)
	case FOR:
		return p.compoundCommand(p.parseFor)
	case LPAREN:
		return p.compoundCommand(p.parseSubshell)
	case LBRACE:
		return p.compoundCommand(p.parseGroup)
	case FUNCTION:
		return p.parseFunction()
	case CASE:
		return nil, &UnsupportedError{Construct: "case command", Pos: p.cur.Pos}
	case SELECT:
		return nil, &UnsupportedError{Construct: "select command", Pos: p.cur.Pos}
	case COPROC:
		return nil, &UnsupportedError{Construct: "coproc command", Pos: p.cur.Pos}
	case ARITHCMD:
		return nil, &UnsupportedError{Construct: "arithmetic command", Pos: p.cur.Pos}
	case ARITHFOREXPRS:
		return nil, &UnsupportedError{Construct: "arithmetic for", Pos: p.cur.Pos}
	case CONDSTART:
		return nil, &UnsupportedError{Construct: "conditional command", Pos: p.cur.Pos}
	case TIME:
		return nil, &UnsupportedError{Construct: "time command", Pos: p.cur.Pos}
	case WORD:
		pk, err := p.peek()
		if err != nil {
			return nil, err
		}
		if pk.Type == LPAREN {
			return p.parseFunctionDef()
		}
		return p.parseSimpleCommand()
	}
	if p.cur.Type == ASSIGNWORD || p.cur.Type == NUMBER ||
		p.cur.Type == REDIRWORD || p.cur.Type.isRedirOp() {
		return p.parseSimpleCommand()
	}
	return nil, p.unexpected()
}

// compoundCommand runs one of the shell-command parsers and attaches
// any trailing redirections to the compound node it built.
func (p *parser) compoundCommand(parse func() (*Compound, error)) (Node, error) {
	c, err := parse()
	if err != nil {
		return nil, err
	}
	return p.attachRedirects(c)
}

func (p *parser) attachRedirects(c *Compound) (*Compound, error) {
	for p.cur.Type == NUMBER || p.cur.Type == REDIRWORD || p.cur.Type.isRedirOp() {
		r, err := p.parseRedirect()
		if err != nil {
			return nil, err
		}
		c.Redirects = append(c.Redirects, r)
		c.End = synEnd(r)
		c.S = p.slice(c.Span)
	}
	return c, nil
}

func (p *parser) parseSimpleCommand() (Node, error) {
	var parts []Node
loop:
	for {
		switch {
		case p.cur.Type == WORD:
			w, err := p.expandWordToken(p.cur, false)
			if err != nil {
				return nil, err
			}
			parts = append(parts, w)
			if err := p.next(); err != nil {
				return nil, err
			}
		case p.cur.Type == ASSIGNWORD:
			a, err := p.expandWordToken(p.cur, true)
			if err != nil {
				return nil, err
			}
			parts = append(parts, a)
			if err := p.next(); err != nil {
				return nil, err
			}
		case p.cur.Type == NUMBER || p.cur.Type == REDIRWORD || p.cur.Type.isRedirOp():
			r, err := p.parseRedirect()
			if err != nil {
				return nil, err
			}
			parts = append(parts, r)
		default:
			break loop
		}
	}
	if len(parts) == 0 {
		return nil, p.unexpected()
	}
	sp := partsSpan(parts)
	return &Command{Span: sp, S: p.slice(sp), Parts: parts}, nil
}

// parseRedirect parses one redirection, including an optional leading
// io number or {varname}. Here-document redirections are pushed on the
// tokenizer's pending stack; their bodies arrive when the next newline
// is read.
func (p *parser) parseRedirect() (*Redirect, error) {
	var input Node
	start := p.cur.Pos
	switch p.cur.Type {
	case NUMBER:
		input = &Number{Span: p.cur.span(), S: p.cur.Value, Value: p.cur.Num}
		if err := p.next(); err != nil {
			return nil, err
		}
	case REDIRWORD:
		input = &Word{Span: p.cur.span(), S: p.cur.Value, Word: p.cur.Value}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if !p.cur.Type.isRedirOp() {
		return nil, p.unexpected()
	}
	op := p.cur
	if err := p.next(); err != nil {
		return nil, err
	}
	r := &Redirect{Input: input, Op: op.Value}
	r.Start = start
	switch op.Type {
	case SHL, DHEREDOC:
		if p.cur.Type != WORD {
			return nil, p.unexpected()
		}
		// the delimiter is not expanded
		out := &Word{Span: p.cur.span(), S: p.cur.Value, Word: p.cur.Value}
		r.Output = out
		r.End = out.End
		r.S = p.slice(r.Span)
		p.tok.pushHeredoc(r, op.Type == DHEREDOC)
		if err := p.next(); err != nil {
			return nil, err
		}
	case DPLIN, DPLOUT:
		switch p.cur.Type {
		case NUMBER:
			r.Output = &Number{Span: p.cur.span(), S: p.cur.Value, Value: p.cur.Num}
		case WORD:
			w, err := p.expandWordAsWord(p.cur)
			if err != nil {
				return nil, err
			}
			r.Output = w
		case DASH:
			r.Output = &Word{Span: p.cur.span(), S: p.cur.Value, Word: p.cur.Value}
		default:
			return nil, p.unexpected()
		}
		r.End = p.cur.End
		r.S = p.slice(r.Span)
		if err := p.next(); err != nil {
			return nil, err
		}
	default:
		if p.cur.Type != WORD {
			return nil, p.unexpected()
		}
		w, err := p.expandWordAsWord(p.cur)
		if err != nil {
			return nil, err
		}
		r.Output = w
		r.End = w.End
		r.S = p.slice(r.Span)
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (p *parser) wrapCompound(n Node) *Compound {
	return &Compound{Span: n.Pos(), S: n.Source(), List: []Node{n}}
}

func (p *parser) parseIf() (*Compound, error) {
	parts := []Node{rsvd(p.cur)}
	if err := p.next(); err != nil {
		return nil, err
	}
	cond, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	parts = append(parts, cond)
	if p.cur.Type != THEN {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	body, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	parts = append(parts, body)
	for p.cur.Type == ELIF {
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		cond, err := p.parseCompoundList()
		if err != nil {
			return nil, err
		}
		parts = append(parts, cond)
		if p.cur.Type != THEN {
			return nil, p.unexpected()
		}
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		body, err := p.parseCompoundList()
		if err != nil {
			return nil, err
		}
		parts = append(parts, body)
	}
	if p.cur.Type == ELSE {
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		body, err := p.parseCompoundList()
		if err != nil {
			return nil, err
		}
		parts = append(parts, body)
	}
	if p.cur.Type != FI {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	sp := partsSpan(parts)
	return p.wrapCompound(&If{Span: sp, S: p.slice(sp), Parts: parts}), nil
}

func (p *parser) parseWhileUntil() (*Compound, error) {
	isWhile := p.cur.Type == WHILE
	parts := []Node{rsvd(p.cur)}
	if err := p.next(); err != nil {
		return nil, err
	}
	cond, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	parts = append(parts, cond)
	if p.cur.Type != DO {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	body, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	parts = append(parts, body)
	if p.cur.Type != DONE {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	sp := partsSpan(parts)
	if isWhile {
		return p.wrapCompound(&While{Span: sp, S: p.slice(sp), Parts: parts}), nil
	}
	return p.wrapCompound(&Until{Span: sp, S: p.slice(sp), Parts: parts}), nil
}

func (p *parser) parseFor() (*Compound, error) {
	parts := []Node{rsvd(p.cur)}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type == ARITHFOREXPRS {
		return nil, &UnsupportedError{Construct: "arithmetic for", Pos: p.cur.Pos}
	}
	if p.cur.Type != WORD {
		return nil, p.unexpected()
	}
	v, err := p.expandWordAsWord(p.cur)
	if err != nil {
		return nil, err
	}
	parts = append(parts, v)
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type == SEMICOLON {
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	} else {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.cur.Type == IN {
			parts = append(parts, rsvd(p.cur))
			if err := p.next(); err != nil {
				return nil, err
			}
			for p.cur.Type == WORD {
				w, err := p.expandWordAsWord(p.cur)
				if err != nil {
					return nil, err
				}
				parts = append(parts, w)
				if err := p.next(); err != nil {
					return nil, err
				}
			}
			switch p.cur.Type {
			case SEMICOLON:
				parts = append(parts, rsvd(p.cur))
				if err := p.next(); err != nil {
					return nil, err
				}
			case NEWLINE:
			default:
				return nil, p.unexpected()
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
		}
	}
	openTok, closeTok := DO, DONE
	if p.cur.Type == LBRACE {
		openTok, closeTok = LBRACE, RBRACE
	}
	if p.cur.Type != openTok {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	body, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	parts = append(parts, body)
	if p.cur.Type != closeTok {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	sp := partsSpan(parts)
	return p.wrapCompound(&For{Span: sp, S: p.slice(sp), Parts: parts}), nil
}

func (p *parser) parseSubshell() (*Compound, error) {
	return p.parseBracketed(RPAREN)
}

func (p *parser) parseGroup() (*Compound, error) {
	return p.parseBracketed(RBRACE)
}

func (p *parser) parseBracketed(closer TokenType) (*Compound, error) {
	lhs := rsvd(p.cur)
	if err := p.next(); err != nil {
		return nil, err
	}
	inner, err := p.parseCompoundList()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != closer {
		return nil, p.unexpected()
	}
	rhs := rsvd(p.cur)
	if err := p.next(); err != nil {
		return nil, err
	}
	sp := Span{lhs.Start, rhs.End}
	return &Compound{Span: sp, S: p.slice(sp), List: []Node{lhs, inner, rhs}}, nil
}

// parseFunctionDef parses the name() form; the current token is the
// name word and the next one is known to be '('.
func (p *parser) parseFunctionDef() (Node, error) {
	name, err := p.expandWordAsWord(p.cur)
	if err != nil {
		return nil, err
	}
	if err := p.next(); err != nil { // now at '('
		return nil, err
	}
	parts := []Node{name, rsvd(p.cur)}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type != RPAREN {
		return nil, p.unexpected()
	}
	parts = append(parts, rsvd(p.cur))
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}
	parts = append(parts, body)
	sp := Span{name.Start, body.End}
	return &Function{Span: sp, S: p.slice(sp), Name: name, Body: body, Parts: parts}, nil
}

// parseFunction parses the 'function name' form, with optional
// parentheses.
func (p *parser) parseFunction() (Node, error) {
	kw := rsvd(p.cur)
	parts := []Node{kw}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type != WORD {
		return nil, p.unexpected()
	}
	name, err := p.expandWordAsWord(p.cur)
	if err != nil {
		return nil, err
	}
	parts = append(parts, name)
	// only the token right after the name may be a body brace
	p.tok.state |= stAllowOpnBrc
	err = p.next()
	p.tok.state &^= stAllowOpnBrc
	if err != nil {
		return nil, err
	}
	if p.cur.Type == LPAREN {
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Type != RPAREN {
			return nil, p.unexpected()
		}
		parts = append(parts, rsvd(p.cur))
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}
	parts = append(parts, body)
	sp := Span{kw.Start, body.End}
	return &Function{Span: sp, S: p.slice(sp), Name: name, Body: body, Parts: parts}, nil
}

// parseFunctionBody parses the shell command that makes up a function
// body, with any trailing redirections attached to it.
func (p *parser) parseFunctionBody() (*Compound, error) {
	var c *Compound
	var err error
	switch p.cur.Type {
	case LBRACE:
		c, err = p.parseGroup()
	case LPAREN:
		c, err = p.parseSubshell()
	case IF:
		c, err = p.parseIf()
	case WHILE, UNTIL:
		c, err = p.parseWhileUntil()
	case FOR:
		c, err = p.parseFor()
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}
	return p.attachRedirects(c)
}
