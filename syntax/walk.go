// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "fmt"

// Visitor holds a Visit method which is invoked for each node
// encountered by Walk. If the result visitor w is not nil, Walk visits
// each of the children of node with the visitor w, followed by a call
// of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

func walkNodes(v Visitor, nodes []Node) {
	for _, n := range nodes {
		Walk(v, n)
	}
}

// Walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor w
// for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch x := node.(type) {
	case *Word:
		walkNodes(v, x.Parts)
	case *Assignment:
		walkNodes(v, x.Parts)
	case *Redirect:
		if x.Input != nil {
			Walk(v, x.Input)
		}
		if x.Output != nil {
			Walk(v, x.Output)
		}
		if x.Heredoc != nil {
			Walk(v, x.Heredoc)
		}
	case *Command:
		walkNodes(v, x.Parts)
	case *Pipeline:
		walkNodes(v, x.Parts)
	case *List:
		walkNodes(v, x.Parts)
	case *Compound:
		walkNodes(v, x.List)
		for _, r := range x.Redirects {
			Walk(v, r)
		}
	case *If:
		walkNodes(v, x.Parts)
	case *For:
		walkNodes(v, x.Parts)
	case *While:
		walkNodes(v, x.Parts)
	case *Until:
		walkNodes(v, x.Parts)
	case *Function:
		// Name and Body alias entries of Parts; walking Parts
		// visits each child exactly once.
		walkNodes(v, x.Parts)
	case *CommandSubst:
		if x.Command != nil {
			Walk(v, x.Command)
		}
	case *ProcessSubst:
		if x.Command != nil {
			Walk(v, x.Command)
		}
	case *Operator, *ReservedWord, *Pipe, *Parameter, *Tilde, *Heredoc, *Number:
	default:
		panic(fmt.Sprintf("syntax.Walk: unexpected node type %T", x))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order calling f for every
// node. If f returns false, the node's children are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
