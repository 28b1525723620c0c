// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax_test

import (
	"fmt"

	"mvdan.cc/bashast/syntax"
)

func ExampleParse() {
	trees, err := syntax.Parse("grep -q foo | wc -l")
	if err != nil {
		return
	}
	for _, tree := range trees {
		fmt.Println(tree.Kind(), tree.Source())
	}
	// Output: pipeline grep -q foo | wc -l
}

func ExampleInspect() {
	trees, err := syntax.Parse(`tar cz "$src" > "$dst".tar.gz`)
	if err != nil {
		return
	}
	syntax.Inspect(trees[0], func(n syntax.Node) bool {
		if p, ok := n.(*syntax.Parameter); ok {
			fmt.Println(p.Value)
		}
		return true
	})
	// Output:
	// src
	// dst
}

func ExampleNewPosConverter() {
	src := "a\nfoo bar"
	trees, err := syntax.Parse(src)
	if err != nil {
		return
	}
	conv := syntax.NewPosConverter(src)
	last := trees[len(trees)-1]
	pos := conv.Position(last.Pos().Start)
	fmt.Printf("%d:%d\n", pos.Line, pos.Column)
	// Output: 2:1
}
