// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// invariantCorpus holds inputs exercising most of the grammar; the
// invariant tests below must hold for every tree parsed from them.
var invariantCorpus = []string{
	"a b c",
	"a | b && c",
	"! a | b",
	"(a) | (b) > /dev/null",
	"(a && (b; c&)) || d",
	"{ a; b; }",
	"if foo; then bar; elif baz; then b2; else c; fi",
	"for a in b c; do d; done",
	"for a; do b; done",
	"while a; do b; done",
	"until a; do b; done",
	"a=b c=$(d) e",
	"a 2>/dev/null <f >>g 3>&1",
	"a $(b $(c)) `d`",
	"a ${x} $1 ~u 'lit' \"q $v\"",
	"function f { a; }",
	"f() (b)",
	"a;\nb\nc& d",
	"a <<EOF\nbody\nEOF",
	"a <<-EOF\n\tbody\n\tEOF",
	"a <<<here",
	"$(a;b) | c",
}

func children(n Node) []Node {
	var out []Node
	switch x := n.(type) {
	case *Word:
		out = x.Parts
	case *Assignment:
		out = x.Parts
	case *Redirect:
		if x.Input != nil {
			out = append(out, x.Input)
		}
		if x.Output != nil {
			out = append(out, x.Output)
		}
		if x.Heredoc != nil {
			out = append(out, x.Heredoc)
		}
	case *Command:
		out = x.Parts
	case *Pipeline:
		out = x.Parts
	case *List:
		out = x.Parts
	case *Compound:
		out = append(out, x.List...)
		for _, r := range x.Redirects {
			out = append(out, r)
		}
	case *If:
		out = x.Parts
	case *For:
		out = x.Parts
	case *While:
		out = x.Parts
	case *Until:
		out = x.Parts
	case *Function:
		out = x.Parts
	case *CommandSubst:
		if x.Command != nil {
			out = append(out, x.Command)
		}
	case *ProcessSubst:
		if x.Command != nil {
			out = append(out, x.Command)
		}
	}
	return out
}

func parseCorpus(t *testing.T, src string) []Node {
	t.Helper()
	trees, err := Parse(src)
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return trees
}

func TestSourceSlices(t *testing.T) {
	t.Parallel()
	for _, src := range invariantCorpus {
		for _, tree := range parseCorpus(t, src) {
			Inspect(tree, func(n Node) bool {
				sp := n.Pos()
				if sp.Start < 0 || sp.End > len(src) || sp.Start > sp.End {
					t.Errorf("%q: node %s has bad span (%d, %d)",
						src, n.Kind(), sp.Start, sp.End)
					return true
				}
				if got := src[sp.Start:sp.End]; got != n.Source() {
					t.Errorf("%q: node %s: source slice %q does not match span text %q",
						src, n.Kind(), n.Source(), got)
				}
				return true
			})
		}
	}
}

func TestSpansNest(t *testing.T) {
	t.Parallel()
	var check func(t *testing.T, src string, n Node)
	check = func(t *testing.T, src string, n Node) {
		sp := n.Pos()
		for _, c := range children(n) {
			csp := c.Pos()
			if csp.Start < sp.Start {
				t.Errorf("%q: %s child starts before its %s parent",
					src, c.Kind(), n.Kind())
			}
			// a redirect stretches past its parent once a
			// here-document body is attached to it
			if r, ok := c.(*Redirect); !ok || r.Heredoc == nil {
				if csp.End > sp.End {
					t.Errorf("%q: %s child ends after its %s parent",
						src, c.Kind(), n.Kind())
				}
			}
			check(t, src, c)
		}
	}
	for _, src := range invariantCorpus {
		for _, tree := range parseCorpus(t, src) {
			check(t, src, tree)
		}
	}
}

func TestListAlternation(t *testing.T) {
	t.Parallel()
	for _, src := range invariantCorpus {
		for _, tree := range parseCorpus(t, src) {
			Inspect(tree, func(n Node) bool {
				lst, ok := n.(*List)
				if !ok {
					return true
				}
				for i, part := range lst.Parts {
					_, isOp := part.(*Operator)
					if isOp != (i%2 == 1) {
						t.Errorf("%q: list part %d is %s, breaking alternation",
							src, i, part.Kind())
					}
				}
				return true
			})
		}
	}
}

func TestPipelineShape(t *testing.T) {
	t.Parallel()
	for _, src := range invariantCorpus {
		for _, tree := range parseCorpus(t, src) {
			Inspect(tree, func(n Node) bool {
				pl, ok := n.(*Pipeline)
				if !ok {
					return true
				}
				parts := pl.Parts
				negated := false
				if rw, ok := parts[0].(*ReservedWord); ok && rw.Word == "!" {
					parts = parts[1:]
					negated = true
				}
				execs, pipes := 0, 0
				for i, part := range parts {
					_, isPipe := part.(*Pipe)
					if isPipe != (i%2 == 1) {
						t.Errorf("%q: pipeline part %d is %s, breaking alternation",
							src, i, part.Kind())
					}
					if isPipe {
						pipes++
					} else {
						execs++
					}
				}
				if !negated && execs < 2 {
					t.Errorf("%q: pipeline with %d executables", src, execs)
				}
				if pipes != execs-1 {
					t.Errorf("%q: pipeline with %d executables but %d pipes",
						src, execs, pipes)
				}
				return true
			})
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, src := range invariantCorpus {
		if strings.Contains(src, "<<") {
			continue // a heredoc body lies outside its tree's span
		}
		trees := parseCorpus(t, src)
		at := 0
		for _, tree := range trees {
			sp := tree.Pos()
			gap := src[at:sp.Start]
			if strings.TrimLeft(gap, " \t\n;&") != "" {
				t.Errorf("%q: non-separator gap %q before tree", src, gap)
			}
			if src[sp.Start:sp.End] != tree.Source() {
				t.Errorf("%q: tree source mismatch", src)
			}
			at = sp.End
		}
		if strings.TrimLeft(src[at:], " \t\n;&") != "" {
			t.Errorf("%q: non-separator trailing text %q", src, src[at:])
		}
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()
	reparseable := func(n Node) bool {
		switch n.Kind() {
		case KindCommand, KindList, KindPipeline, KindCompound:
		default:
			return false
		}
		ok := true
		Inspect(n, func(c Node) bool {
			switch x := c.(type) {
			case *Redirect:
				if x.Heredoc != nil {
					ok = false
				}
			case *Operator:
				if x.Op == "\n" {
					ok = false
				}
			}
			return true
		})
		return ok
	}
	for _, src := range invariantCorpus {
		for _, tree := range parseCorpus(t, src) {
			Inspect(tree, func(n Node) bool {
				if !reparseable(n) {
					return true
				}
				again, err := Parse(n.Source())
				if err != nil {
					t.Errorf("%q: reparsing %q: %v", src, n.Source(), err)
					return true
				}
				if len(again) != 1 {
					t.Errorf("%q: reparsing %q gave %d trees", src, n.Source(), len(again))
					return true
				}
				if diff := cmp.Diff(n, again[0], treeCmp); diff != "" {
					t.Errorf("%q: reparsing %q gave a different tree (-orig +reparsed):\n%s",
						src, n.Source(), diff)
				}
				return true
			})
		}
	}
}

func TestPosConverter(t *testing.T) {
	t.Parallel()
	src := "ab\ncd\n\nef"
	c := NewPosConverter(src)
	cases := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 1, 1}},
		{1, Position{1, 1, 2}},
		{2, Position{2, 1, 3}}, // the newline itself
		{3, Position{3, 2, 1}},
		{5, Position{5, 2, 3}},
		{6, Position{6, 3, 1}},
		{7, Position{7, 4, 1}},
		{8, Position{8, 4, 2}},
	}
	for _, tc := range cases {
		if got := c.Position(tc.offset); got != tc.want {
			t.Errorf("Position(%d): got %+v, want %+v", tc.offset, got, tc.want)
		}
	}
}
