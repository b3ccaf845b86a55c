package regexlib

import (
	"fmt"
	"io"
)

// WriteDOT prints a Graphviz representation of prog's NFA arena to w —
// a debug view, adapted from the teacher's DFA/NFA exporter to the
// ID-indexed arena representation. Not part of the matching contract;
// cmd/regexviz is the only consumer.
func WriteDOT(w io.Writer, prog *Program) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for id := range prog.states {
		s := &prog.states[id]
		shape := "circle"
		if s.isTerminal {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)

		for c, targets := range s.trans {
			for _, to := range targets {
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, to, string(c))
			}
		}
		for _, to := range s.eps {
			fmt.Fprintf(w, "    n%d -> n%d [label=\"eps\"];\n", id, to)
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", prog.Start)
	fmt.Fprintln(w, "}")
}
