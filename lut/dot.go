//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"fmt"
	"io"

	"github.com/markkurossi/tmap/aig"
)

// Dot creates graphviz dot output of the mapped cover: one node per
// chosen LUT, edges from cut leaves to their LUT, and the primary
// inputs and outputs as plaintext terminals.
func (m *TechMapper) Dot(out io.Writer) error {
	fmt.Fprintf(out, "digraph mapping\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for i := uint32(1); i <= m.aig.NumInputs(); i++ {
		lit := aig.LiteralFromIndex(i)
		fmt.Fprintf(out, "    n%d\t[label=\"%d\"];\n", lit, lit)
	}
	for i := uint32(0); i < m.aig.NumLatches(); i++ {
		lit := aig.LiteralFromIndex(m.aig.NumInputs() + 1 + i)
		fmt.Fprintf(out, "    n%d\t[label=\"L%d\"];\n", lit, lit)
	}
	for idx := range m.aig.Outputs() {
		fmt.Fprintf(out, "    o%d\t[label=\"o%d\"];\n", idx, idx)
	}
	fmt.Fprintf(out, "  }\n")

	luts := m.lutLiterals()

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for _, lit := range luts {
		fmt.Fprintf(out, "    n%d\t[label=\"LUT %d\"];\n", lit, lit)
	}
	fmt.Fprintf(out, "  }\n")

	for _, lit := range luts {
		best, err := m.engine.BestCut(lit)
		if err != nil {
			return err
		}
		for _, leaf := range best.Leaves() {
			fmt.Fprintf(out, "  n%d -> n%d;\n",
				aig.LiteralFromIndex(leaf), lit)
		}
	}

	for idx, output := range m.aig.Outputs() {
		if output < 2 {
			continue
		}
		fmt.Fprintf(out, "  n%d -> o%d;\n", output.Even(), idx)
	}
	fmt.Fprintf(out, "}\n")
	return nil
}

// lutLiterals returns the implemented and-literals in ascending
// order.
func (m *TechMapper) lutLiterals() []aig.Literal {
	var luts []aig.Literal

	first := m.aig.FirstAndLiteral().Index()
	for i := uint32(0); i < m.aig.NumAnds(); i++ {
		lit := aig.LiteralFromIndex(first + i)
		if m.implementation[lit] {
			luts = append(luts, lit)
		}
	}
	return luts
}
