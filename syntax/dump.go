// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"fmt"
	"strings"
)

// Dump renders a node as an indented canonical text form, used by the
// golden tests and handy when debugging consumers. Fields appear in
// alphabetical order; node lists are indented one level per depth.
func Dump(n Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

type dumpField struct {
	name string
	val  any
}

func dumpNode(b *strings.Builder, n Node, level int) {
	if n == nil {
		b.WriteString("None")
		return
	}
	var fields []dumpField
	switch x := n.(type) {
	case *Operator:
		fields = []dumpField{{"op", x.Op}, {"pos", x.Span}}
	case *ReservedWord:
		fields = []dumpField{{"pos", x.Span}, {"word", x.Word}}
	case *Pipe:
		fields = []dumpField{{"pipe", x.Pipe}, {"pos", x.Span}}
	case *Word:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}, {"word", x.Word}}
	case *Assignment:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}, {"word", x.Word}}
	case *Parameter:
		fields = []dumpField{{"pos", x.Span}, {"value", x.Value}}
	case *Tilde:
		fields = []dumpField{{"pos", x.Span}, {"value", x.Value}}
	case *Heredoc:
		fields = []dumpField{{"pos", x.Span}, {"value", x.Value}}
	case *Number:
		fields = []dumpField{{"pos", x.Span}, {"value", x.Value}}
	case *Redirect:
		fields = []dumpField{
			{"heredoc", x.Heredoc}, {"input", x.Input},
			{"output", x.Output}, {"pos", x.Span}, {"type", x.Op},
		}
	case *Command:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *Pipeline:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *List:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *Compound:
		rs := make([]Node, len(x.Redirects))
		for i, r := range x.Redirects {
			rs[i] = r
		}
		fields = []dumpField{{"list", x.List}, {"pos", x.Span}, {"redirects", rs}}
	case *If:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *For:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *While:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *Until:
		fields = []dumpField{{"parts", x.Parts}, {"pos", x.Span}}
	case *Function:
		fields = []dumpField{
			{"body", Node(x.Body)}, {"name", Node(x.Name)},
			{"parts", x.Parts}, {"pos", x.Span},
		}
	case *CommandSubst:
		fields = []dumpField{{"command", x.Command}, {"pos", x.Span}}
	case *ProcessSubst:
		fields = []dumpField{{"command", x.Command}, {"pos", x.Span}}
	default:
		panic(fmt.Sprintf("syntax.Dump: unexpected node type %T", x))
	}

	name := n.Kind().String()
	b.WriteString(strings.ToUpper(name[:1]) + name[1:] + "Node(")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		dumpValue(b, f.val, level)
	}
	b.WriteByte(')')
}

func dumpValue(b *strings.Builder, v any, level int) {
	switch x := v.(type) {
	case Span:
		fmt.Fprintf(b, "(%d, %d)", x.Start, x.End)
	case string:
		b.WriteString(dumpString(x))
	case int:
		fmt.Fprintf(b, "%d", x)
	case []Node:
		if len(x) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, n := range x {
			b.WriteString(strings.Repeat("  ", level+1))
			dumpNode(b, n, level+1)
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat("  ", level))
		b.WriteByte(']')
	case *Heredoc:
		if x == nil {
			b.WriteString("None")
			return
		}
		dumpNode(b, x, level)
	case *Number:
		// io numbers print bare, the way the shell wrote them
		fmt.Fprintf(b, "%d", x.Value)
	case Node:
		if num, ok := x.(*Number); ok {
			fmt.Fprintf(b, "%d", num.Value)
			return
		}
		dumpNode(b, x, level)
	case nil:
		b.WriteString("None")
	default:
		panic(fmt.Sprintf("syntax.Dump: unexpected field type %T", x))
	}
}

func dumpString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
