// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// shellMeta reports whether b can start an operator token or otherwise
// terminates a word.
func shellMeta(b byte) bool {
	return b == '|' || b == '&' || b == ';' || b == '<' || b == '>' ||
		b == '(' || b == ')' || b == '\n'
}

// shellBlank reports whether b is a horizontal space character.
// Newlines are tokens of their own and are never blank.
func shellBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// shellBreak reports whether b ends a word.
func shellBreak(b byte) bool {
	return shellBlank(b) || shellMeta(b)
}

func identStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func identChar(b byte) bool {
	return identStart(b) || (b >= '0' && b <= '9')
}

func digit(b byte) bool { return b >= '0' && b <= '9' }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !digit(s[i]) {
			return false
		}
	}
	return true
}

// legalIdentifier reports whether s is a valid shell variable name.
func legalIdentifier(s string) bool {
	if s == "" || !identStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !identChar(s[i]) {
			return false
		}
	}
	return true
}

// specialParam reports whether b names one of the single-character
// special parameters following a '$'.
func specialParam(b byte) bool {
	switch b {
	case '@', '*', '#', '?', '-', '$', '!':
		return true
	}
	return digit(b)
}

// WordFlag is a bitset describing how a word token was quoted and what
// it may expand to.
type WordFlag uint16

const (
	FlagQuoted WordFlag = 1 << iota
	FlagHasDollar
	FlagAssignment
	FlagNoSplit
	FlagCompAssign
	FlagArrayRef
	FlagDQuote
	FlagExpanded
	FlagQuotedNull
	FlagSplitSpace
)

// parserState is a bitset of conditions that change how the tokenizer
// interprets the next characters.
type parserState uint32

const (
	stCmdSubst parserState = 1 << iota
	stCasePat
	stAlExpNext
	stAllowOpnBrc
	stNeedClosBrc
	stDblParen
	stSubshell
	stCmdSubstring
	stAssignOK
	stEOFToken
	stCondCmd
	stCondExpr
	stArith
	stArithFor
	stForCmd
	stCaseCmd
	stCompAssign
	stRegexp
	stHeredoc
	stReparse
	stRedirList
)
