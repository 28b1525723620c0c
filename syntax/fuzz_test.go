// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build go1.18

package syntax

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("a b c")
	f.Add("a | b && c; d &")
	f.Add("if foo; then bar; fi >log 2>&1")
	f.Add("for a in $(b) `c`; do d; done")
	f.Add("a <<EOF\nbody\nEOF")
	f.Add(`x="y $z" w ~u`)
	f.Add("f() { a; }")
	f.Add("for ((i=0;i<3;i++)); do a; done")
	f.Fuzz(func(t *testing.T, src string) {
		trees, err := Parse(src)
		if err != nil {
			// must be one of the typed failures
			switch err.(type) {
			case *ParseError, *MatchedPairError, *HeredocError, *UnsupportedError:
			default:
				t.Fatalf("untyped error %T: %v", err, err)
			}
			return
		}
		for _, tree := range trees {
			Inspect(tree, func(n Node) bool {
				sp := n.Pos()
				if sp.Start < 0 || sp.End > len(src) || sp.Start > sp.End {
					t.Fatalf("bad span (%d, %d) on %s in %q", sp.Start, sp.End, n.Kind(), src)
				}
				if src[sp.Start:sp.End] != n.Source() {
					t.Fatalf("source slice mismatch on %s in %q", n.Kind(), src)
				}
				if sp.Start == sp.End && n.Kind() != KindWord {
					t.Fatalf("empty span on %s in %q", n.Kind(), src)
				}
				return true
			})
		}
	})
}
