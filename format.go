package main

import (
	"fmt"
	"strconv"
	"strings"
)

// formatGrid renders a stack set as two text rows: the first shows every
// stack's top value in brackets, left to right by index, all columns the
// same width; the second centers each stack's index under its column. It is
// a pure projection and never mutates anything.
func formatGrid(ss *stackSet) string {
	tops := make([]string, len(ss.stacks))
	width := 0
	for i, st := range ss.stacks {
		if v, ok := st.top(); ok {
			tops[i] = v.String()
		}
		if n := len(tops[i]); n > width {
			width = n
		}
		if n := len(strconv.Itoa(i)); n > width {
			width = n
		}
	}

	var cells, idxs strings.Builder
	for i, top := range tops {
		fmt.Fprintf(&cells, "[%*s]", width, top)
		idxs.WriteString(center(strconv.Itoa(i), width+2))
	}
	return cells.String() + "\n" + idxs.String()
}

func center(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
