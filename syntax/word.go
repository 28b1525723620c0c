// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "strings"

// The word expansion analyzer. It re-scans the raw text of a WORD or
// ASSIGNMENT_WORD token, emitting a sub-node for every construct found
// inside and building the expansion-normalized text with quotes
// stripped. Command and process substitutions re-enter the parser on
// their interior via a nested parser instance.

// expandWordToken analyzes tok into a word or assignment node.
func (p *parser) expandWordToken(tok Token, assign bool) (Node, error) {
	w, err := p.expandWordAsWord(tok)
	if err != nil {
		return nil, err
	}
	if assign {
		return &Assignment{Span: w.Span, S: w.S, Word: w.Word, Parts: w.Parts}, nil
	}
	return w, nil
}

// expandWordAsWord analyzes tok into a word node.
func (p *parser) expandWordAsWord(tok Token) (*Word, error) {
	parts, text, err := p.expandWordInternal(tok.Value, tok.Pos, false, tok.Flags&FlagAssignment != 0)
	if err != nil {
		return nil, err
	}
	return &Word{Span: tok.span(), S: tok.Value, Word: text, Parts: parts}, nil
}

// expandWordInternal walks w from left to right. base is the absolute
// offset of w within the top-level input, so that every emitted
// sub-node gets a span into the original buffer. inDq is set while
// analyzing the interior of a double-quoted string, assign while
// analyzing an assignment word, where tildes are also live after '='
// and ':'.
func (p *parser) expandWordInternal(w string, base int, inDq, assign bool) ([]Node, string, error) {
	var parts []Node
	var b strings.Builder
	n := len(w)
	i := 0
	for i < n {
		c := w[i]
		switch {
		case c == '\\':
			if i+1 >= n {
				b.WriteByte(c)
				i++
				break
			}
			next := w[i+1]
			if next == '\n' {
				i += 2 // line continuation expands to nothing
				break
			}
			if inDq && next != '$' && next != '`' && next != '"' && next != '\\' {
				// inside double quotes a backslash only quotes
				// the characters it must
				b.WriteByte(c)
			}
			b.WriteByte(next)
			i += 2
		case c == '\'' && !inDq:
			e, err := scanSingleQuote(w, i+1, n)
			if err != nil {
				return nil, "", err
			}
			b.WriteString(w[i+1 : e-1])
			i = e
		case c == '"':
			e, err := scanDoubleQuote(w, i+1, n)
			if err != nil {
				return nil, "", err
			}
			sub, text, err := p.expandWordInternal(w[i+1:e-1], base+i+1, true, assign)
			if err != nil {
				return nil, "", err
			}
			parts = append(parts, sub...)
			b.WriteString(text)
			i = e
		case c == '$' && i+1 < n:
			var err error
			parts, i, err = p.expandDollar(&b, parts, w, base, i, n, inDq, assign)
			if err != nil {
				return nil, "", err
			}
		case c == '`':
			e, err := scanBackquote(w, i+1, n)
			if err != nil {
				return nil, "", err
			}
			node, ok, err := p.substNode(KindCommandSubst, base+i, base+e, base+i+1, base+e-1)
			if err != nil {
				return nil, "", err
			}
			if ok {
				parts = append(parts, node)
			}
			b.WriteString(w[i:e])
			i = e
		case (c == '<' || c == '>') && !inDq && i == 0 && i+1 < n && w[i+1] == '(':
			e, err := scanParen(w, i+2, n)
			if err != nil {
				return nil, "", err
			}
			node, ok, err := p.substNode(KindProcessSubst, base+i, base+e, base+i+2, base+e-1)
			if err != nil {
				return nil, "", err
			}
			if ok {
				parts = append(parts, node)
			}
			b.WriteString(w[i:e])
			i = e
		case c == '~' && !inDq && (i == 0 || (assign && (w[i-1] == '=' || w[i-1] == ':'))):
			j := i + 1
			for j < n && w[j] != '/' && w[j] != ':' {
				j++
			}
			val := w[i:j]
			parts = append(parts, &Tilde{Span: Span{base + i, base + j}, S: val, Value: val})
			b.WriteString(val)
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return parts, b.String(), nil
}

// expandDollar handles the constructs introduced by an unescaped '$'
// with at least one more character after it.
func (p *parser) expandDollar(b *strings.Builder, parts []Node, w string, base, i, n int, inDq, assign bool) ([]Node, int, error) {
	switch c2 := w[i+1]; {
	case c2 == '(' && i+2 < n && w[i+2] == '(':
		// $((...)) is arithmetic only if the region closes with a
		// double parenthesis; $((a) b) is a command substitution
		e, err := scanParen(w, i+2, n)
		if err != nil {
			return nil, 0, err
		}
		if inner, err2 := scanParen(w, i+3, n); err2 == nil && inner == e-1 {
			return nil, 0, &UnsupportedError{Construct: "arithmetic expansion", Pos: base + i}
		}
		return p.dollarSubst(b, parts, w, base, i, e)
	case c2 == '(':
		e, err := scanParen(w, i+2, n)
		if err != nil {
			return nil, 0, err
		}
		return p.dollarSubst(b, parts, w, base, i, e)
	case c2 == '{':
		e, err := scanBrace(w, i+2, n)
		if err != nil {
			return nil, 0, err
		}
		val := w[i:e]
		parts = append(parts, &Parameter{Span: Span{base + i, base + e}, S: val, Value: w[i+2 : e-1]})
		b.WriteString(val)
		return parts, e, nil
	case c2 == '[':
		return nil, 0, &UnsupportedError{Construct: "arithmetic expansion", Pos: base + i}
	case c2 == '\'' && !inDq:
		e, err := scanAnsiQuote(w, i+2, n)
		if err != nil {
			return nil, 0, err
		}
		b.WriteString(w[i+2 : e-1])
		return parts, e, nil
	case c2 == '"' && !inDq:
		e, err := scanDoubleQuote(w, i+2, n)
		if err != nil {
			return nil, 0, err
		}
		sub, text, err := p.expandWordInternal(w[i+2:e-1], base+i+2, true, assign)
		if err != nil {
			return nil, 0, err
		}
		parts = append(parts, sub...)
		b.WriteString(text)
		return parts, e, nil
	case identStart(c2):
		j := i + 2
		for j < n && identChar(w[j]) {
			j++
		}
		val := w[i:j]
		parts = append(parts, &Parameter{Span: Span{base + i, base + j}, S: val, Value: w[i+1 : j]})
		b.WriteString(val)
		return parts, j, nil
	case specialParam(c2):
		val := w[i : i+2]
		parts = append(parts, &Parameter{Span: Span{base + i, base + i + 2}, S: val, Value: val[1:]})
		b.WriteString(val)
		return parts, i + 2, nil
	default:
		b.WriteByte('$')
		return parts, i + 1, nil
	}
}

// dollarSubst finishes a $(...) substitution whose region ends at
// local offset e.
func (p *parser) dollarSubst(b *strings.Builder, parts []Node, w string, base, i, e int) ([]Node, int, error) {
	node, ok, err := p.substNode(KindCommandSubst, base+i, base+e, base+i+2, base+e-1)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		parts = append(parts, node)
	}
	b.WriteString(w[i:e])
	return parts, e, nil
}

// substNode parses the interior of a substitution with a nested parser
// and wraps the result. ok is false when the expansion limit blocked
// the nested parse; the substitution then contributes no sub-node and
// its raw text stays in the word.
func (p *parser) substNode(kind NodeKind, start, end, innerStart, innerEnd int) (Node, bool, error) {
	sub, ok, err := p.nestedParse(innerStart, innerEnd)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	sp := Span{start, end}
	s := p.src[start:end]
	if kind == KindProcessSubst {
		return &ProcessSubst{Span: sp, S: s, Command: sub}, true, nil
	}
	return &CommandSubst{Span: sp, S: s, Command: sub}, true, nil
}
