// Copyright (c) 2018, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package shell contains high-level convenience functions on top of
// the syntax package.
package shell

import "mvdan.cc/bashast/syntax"

// Split tokenizes src shallowly and returns the raw source text of
// each word it contains, quotes and substitutions included, without
// building an AST. Only plain and assignment words are kept: operators,
// reserved words, io numbers, {name} redirection prefixes and newlines
// are dropped.
//
// Lexical failures surface as *syntax.MatchedPairError.
func Split(src string) ([]string, error) {
	tok := syntax.NewTokenizer(src)
	var words []string
	for {
		t, err := tok.Next()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case syntax.EOF:
			return words, nil
		case syntax.WORD, syntax.ASSIGNWORD:
			words = append(words, t.Value)
		}
	}
}
