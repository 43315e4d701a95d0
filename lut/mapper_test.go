//
// mapper_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"bytes"
	"testing"

	"github.com/markkurossi/tmap/aig"
)

func mapGraph(t *testing.T, a *aig.Aig, goal Goal, k, c int) *TechMapper {
	t.Helper()
	e, err := NewCutEngine(a, goal, k, c)
	if err != nil {
		t.Fatalf("NewCutEngine: %s", err)
	}
	m := NewTechMapper(e)
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	return m
}

func TestMapSingleAnd(t *testing.T) {
	a := parseAig(t, srcSingleAnd)
	m := mapGraph(t, a, MinimizeArea, 2, 0)

	if m.Area() != 1 {
		t.Errorf("Area = %d, expected 1", m.Area())
	}
	if m.Depth() != 1 {
		t.Errorf("Depth = %d, expected 1", m.Depth())
	}
	if m.Power() != 0 {
		t.Errorf("Power = %d, expected 0", m.Power())
	}
	if !m.Implemented(6) {
		t.Errorf("output node not implemented")
	}
	if m.NumLuts() != 1 {
		t.Errorf("NumLuts = %d, expected 1", m.NumLuts())
	}
}

func TestMapChainK2(t *testing.T) {
	a := parseAig(t, srcChain)
	m := mapGraph(t, a, MinimizeArea, 2, 0)

	// Two LUTs: node 10 over {6, 8} and node 8 over {2, 4}.
	if m.Area() != 2 {
		t.Errorf("Area = %d, expected 2", m.Area())
	}
	if m.Depth() != 2 {
		t.Errorf("Depth = %d, expected 2", m.Depth())
	}
	if !m.Implemented(8) || !m.Implemented(10) {
		t.Errorf("chain nodes not implemented")
	}
}

func TestMapChainK3(t *testing.T) {
	a := parseAig(t, srcChain)
	m := mapGraph(t, a, MinimizeArea, 3, 0)

	// A single LUT over the three inputs.
	if m.Area() != 1 {
		t.Errorf("Area = %d, expected 1", m.Area())
	}
	if m.Depth() != 1 {
		t.Errorf("Depth = %d, expected 1", m.Depth())
	}
	if m.Implemented(8) {
		t.Errorf("absorbed node 8 implemented")
	}
	if !m.Implemented(10) {
		t.Errorf("output node not implemented")
	}
}

func TestMapFanoutReuse(t *testing.T) {
	a := parseAig(t, srcFanout)
	m := mapGraph(t, a, MinimizeArea, 3, 0)

	if m.Area() > 3 {
		t.Errorf("Area = %d, expected at most 3", m.Area())
	}
	if !m.Implemented(10) || !m.Implemented(12) {
		t.Errorf("output nodes not implemented")
	}
	checkCoverage(t, m)
}

func TestMapInputOutput(t *testing.T) {
	// One output is driven directly by an input.
	a := parseAig(t, `aag 3 2 0 2 1
2
4
2
6
6 4 2
`)
	m := mapGraph(t, a, MinimizeArea, 2, 0)

	// The input-driven output costs one LUT-equivalent and one
	// level on top of the and-node LUT.
	if m.Area() != 2 {
		t.Errorf("Area = %d, expected 2", m.Area())
	}
	if m.Depth() != 1 {
		t.Errorf("Depth = %d, expected 1", m.Depth())
	}
	if m.NumLuts() != 1 {
		t.Errorf("NumLuts = %d, expected 1", m.NumLuts())
	}
	checkAreaLaw(t, m, 1)
}

func TestMapBench(t *testing.T) {
	for _, k := range []int{2, 4, 6} {
		for _, c := range []int{0, 1, 4} {
			m := mapGraph(t, benchAig(t), MinimizeArea, k, c)

			if m.Depth() < 1 {
				t.Errorf("k=%d c=%d: Depth = %d", k, c, m.Depth())
			}
			checkCoverage(t, m)
			checkAreaLaw(t, m, 0)
		}
	}
}

func TestMapDeterminism(t *testing.T) {
	first := mapGraph(t, benchAig(t), MinimizeArea, 4, 2)
	second := mapGraph(t, benchAig(t), MinimizeArea, 4, 2)

	if first.Area() != second.Area() || first.Depth() != second.Depth() {
		t.Errorf("mapping not deterministic: %d/%d vs %d/%d",
			first.Area(), first.Depth(), second.Area(), second.Depth())
	}
	forEachAnd(first.aig, func(lit aig.Literal) {
		if first.Implemented(lit) != second.Implemented(lit) {
			t.Errorf("cover of node %d not deterministic", lit)
		}
	})
}

func TestMapGoals(t *testing.T) {
	for _, src := range []string{srcSingleAnd, srcChain, srcFanout} {
		area := mapGraph(t, parseAig(t, src), MinimizeArea, 3, 0)
		delay := mapGraph(t, parseAig(t, src), MinimizeDelay, 3, 0)

		if delay.Depth() > area.Depth() {
			t.Errorf("MinimizeDelay depth %d exceeds MinimizeArea depth %d",
				delay.Depth(), area.Depth())
		}
		if area.Area() > delay.Area() {
			t.Errorf("MinimizeArea area %d exceeds MinimizeDelay area %d",
				area.Area(), delay.Area())
		}
	}
}

func TestMapReports(t *testing.T) {
	m := mapGraph(t, parseAig(t, srcChain), MinimizeArea, 2, 0)

	var buf bytes.Buffer
	m.PrintResults(&buf)
	if buf.Len() == 0 {
		t.Errorf("empty results report")
	}

	buf.Reset()
	if err := m.PrintImplementation(&buf); err != nil {
		t.Fatalf("PrintImplementation: %s", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty implementation report")
	}

	buf.Reset()
	m.engine.PrintState(&buf)
	if buf.Len() == 0 {
		t.Errorf("empty engine state dump")
	}

	buf.Reset()
	m.engine.PrintOutputsBestCuts(&buf)
	if buf.Len() == 0 {
		t.Errorf("empty output cut listing")
	}

	buf.Reset()
	if err := m.Dot(&buf); err != nil {
		t.Fatalf("Dot: %s", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty dot output")
	}
}

// checkCoverage verifies that every implemented LUT's cut leaves are
// primary inputs, latches, or other implemented LUTs.
func checkCoverage(t *testing.T, m *TechMapper) {
	t.Helper()
	a := m.aig

	for _, output := range a.Outputs() {
		if a.IsAnd(output) && !m.Implemented(output) {
			t.Errorf("output %d not covered", output)
		}
	}
	forEachAnd(a, func(lit aig.Literal) {
		if !m.Implemented(lit) {
			return
		}
		best, err := m.engine.BestCut(lit)
		if err != nil {
			t.Fatalf("BestCut: %s", err)
		}
		for _, leaf := range best.Leaves() {
			leafLit := aig.LiteralFromIndex(leaf)
			if a.IsAnd(leafLit) && !m.Implemented(leafLit) {
				t.Errorf("LUT %d leaf %d not implemented", lit, leafLit)
			}
		}
	})
}

// checkAreaLaw verifies that the reported area is the implemented
// LUT count plus the number of outputs driven by inputs or
// constants.
func checkAreaLaw(t *testing.T, m *TechMapper, directOutputs int) {
	t.Helper()
	if m.Area() != uint32(m.NumLuts()+directOutputs) {
		t.Errorf("Area = %d, expected %d LUTs plus %d direct outputs",
			m.Area(), m.NumLuts(), directOutputs)
	}
}
