// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"fmt"
	"strings"
)

// ParseError reports a syntax error: an unexpected token or an
// unexpected end of input. Input holds the buffer the parse ran
// against, Pos the byte offset the error was detected at.
type ParseError struct {
	Text  string
	Input string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (position %d)", e.Text, e.Pos)
}

// MatchedPairError reports an opener whose matching closer was never
// found before the end of input.
type MatchedPairError struct {
	Expected byte // the closer that was being looked for
	Input    string
	Pos      int
}

func (e *MatchedPairError) Error() string {
	return fmt.Sprintf("EOF when looking for matching %q (position %d)",
		string(e.Expected), e.Pos)
}

// HeredocError reports a here-document whose delimiter line was never
// found before the end of input.
type HeredocError struct {
	Delim string
	Input string
	Pos   int
}

func (e *HeredocError) Error() string {
	return fmt.Sprintf("here-document delimited by end-of-file (wanted '%s') (position %d)",
		e.Delim, e.Pos)
}

// UnsupportedError reports a construct that the tokenizer recognized
// but the driver does not build nodes for.
type UnsupportedError struct {
	Construct string
	Pos       int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("not supported: %s (position %d)", e.Construct, e.Pos)
}

// tokenRepr renders a token value for error messages, keeping control
// characters readable.
func tokenRepr(val string) string {
	return strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(val)
}
