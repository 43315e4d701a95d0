//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/tmap/aig"
)

// PrintResults prints the mapping summary report.
func (m *TechMapper) PrintResults(w io.Writer) {
	fmt.Fprintf(w, ">> Technology Mapping results\n")

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Metric").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column("LUT count")
	row.Column(fmt.Sprintf("%d", m.area)).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("Levels")
	row.Column(fmt.Sprintf("%d", m.depth)).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// PrintImplementation prints the chosen cover: for every and-node
// its implementing cut, or "not implemented".
func (m *TechMapper) PrintImplementation(w io.Writer) error {
	fmt.Fprintf(w, ">> Implementation details:\n")
	return printImplementation(w, m.aig, m.engine, m.Implemented)
}

// PrintImplementation prints the engine's running implementation
// estimate: and-nodes proactively covered during enumeration.
func (e *CutEngine) PrintImplementation(w io.Writer) error {
	fmt.Fprintf(w, ">> Implementation details:\n")
	return printImplementation(w, e.aig, e, e.Implemented)
}

// printImplementation tabulates the implemented map in ascending
// node order. Nodes are annotated with their fanout in superscript.
func printImplementation(w io.Writer, a *aig.Aig, e *CutEngine,
	implemented func(aig.Literal) bool) error {

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Node").SetAlign(tabulate.MR)
	tab.Header("Implementation").SetAlign(tabulate.ML)

	first := a.FirstAndLiteral().Index()
	for i := uint32(0); i < a.NumAnds(); i++ {
		lit := aig.LiteralFromIndex(first + i)

		row := tab.Row()
		row.Column(nodeString(a, lit))
		if implemented(lit) {
			best, err := e.BestCut(lit)
			if err != nil {
				return err
			}
			row.Column(best.String())
		} else {
			row.Column("not implemented").SetFormat(tabulate.FmtItalic)
		}
	}
	tab.Print(w)
	return nil
}

// nodeString formats a node literal with its fanout as superscript.
func nodeString(a *aig.Aig, l aig.Literal) string {
	return fmt.Sprintf("%d%s", uint32(l), superscript.Itoa(int(a.Fanout(l))))
}

// PrintState dumps all cut sets of the engine.
func (e *CutEngine) PrintState(w io.Writer) {
	fmt.Fprintf(w, ">> Current state of the CutEngine for %s\n",
		e.aig.Source())

	for i := range e.cutsets {
		fmt.Fprintf(w, "\nNode %d:\n", e.literalAt(i))
		fmt.Fprintf(w, "------------------------\n")
		if e.cutsets[i].Empty() {
			fmt.Fprintf(w, "No cut set defined.\n")
			continue
		}
		for _, cut := range e.cutsets[i].Cuts() {
			fmt.Fprintf(w, "%s\n", cut)
		}
	}
}

// PrintOutputsBestCuts lists the cut sets of all and-node outputs.
func (e *CutEngine) PrintOutputsBestCuts(w io.Writer) {
	for _, output := range e.aig.Outputs() {
		if !e.aig.IsAnd(output) {
			continue
		}
		fmt.Fprintf(w, "\nOutput %d:\n", uint32(output))
		fmt.Fprintf(w, "------------------------\n")

		set, err := e.CutSetOf(output)
		if err != nil || set.Empty() {
			fmt.Fprintf(w, "No cut set defined.\n")
			continue
		}
		for _, cut := range set.Cuts() {
			fmt.Fprintf(w, "%s\n", cut)
		}
	}
}
