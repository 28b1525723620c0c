// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "testing"

type kindCounter struct {
	counts map[NodeKind]int
}

func (c *kindCounter) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	c.counts[n.Kind()]++
	return c
}

func TestWalkCounts(t *testing.T) {
	t.Parallel()
	trees, err := Parse("a $(b) | c 2>/dev/null")
	if err != nil {
		t.Fatal(err)
	}
	counter := &kindCounter{counts: map[NodeKind]int{}}
	Walk(counter, trees[0])
	want := map[NodeKind]int{
		KindPipeline:     1,
		KindPipe:         1,
		KindCommand:      3, // the two pipeline legs and the comsub interior
		KindWord:         5,
		KindCommandSubst: 1,
		KindRedirect:     1,
		KindNumber:       1,
	}
	for kind, n := range want {
		if counter.counts[kind] != n {
			t.Errorf("count of %s nodes: got %d, want %d", kind, counter.counts[kind], n)
		}
	}
}

func TestInspectPrune(t *testing.T) {
	t.Parallel()
	trees, err := Parse("a $x $(b $y)")
	if err != nil {
		t.Fatal(err)
	}
	// pruning at words must hide every parameter beneath them
	params := 0
	Inspect(trees[0], func(n Node) bool {
		switch n.(type) {
		case *Parameter:
			params++
		case *Word:
			return false
		}
		return true
	})
	if params != 0 {
		t.Errorf("saw %d parameters despite pruning at words", params)
	}

	params = 0
	Inspect(trees[0], func(n Node) bool {
		if _, ok := n.(*Parameter); ok {
			params++
		}
		return true
	})
	if params != 2 {
		t.Errorf("full walk saw %d parameters, want 2", params)
	}
}
