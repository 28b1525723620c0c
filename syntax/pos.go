// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "sort"

// Span marks the location of a node or token as byte offsets into the
// original input, half-open. Spans always refer to the top-level source
// string, including for nodes that were parsed inside a command or
// process substitution.
type Span struct {
	Start, End int
}

// Pos returns the span itself, so that embedding Span into a node type
// satisfies the position half of the Node interface.
func (s Span) Pos() Span { return s }

// Position describes a source position in human-readable form. Lines
// and columns are 1-based and counted in bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// PosConverter translates byte offsets within a source string into
// line and column positions.
type PosConverter struct {
	src   string
	lines []int // offset of the first byte of each line
}

// NewPosConverter returns a converter for the given source string. The
// source must be the same string the offsets were produced against.
func NewPosConverter(src string) *PosConverter {
	c := &PosConverter{src: src, lines: []int{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			c.lines = append(c.lines, i+1)
		}
	}
	return c
}

// Position converts a byte offset into a Position. Offsets past the end
// of the source are reported on its last line.
func (c *PosConverter) Position(offset int) Position {
	i := sort.SearchInts(c.lines, offset+1) - 1
	return Position{
		Offset: offset,
		Line:   i + 1,
		Column: offset - c.lines[i] + 1,
	}
}
