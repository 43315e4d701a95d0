//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"github.com/markkurossi/tmap/aig"
)

// TechMapper selects the final LUT cover from a cut engine's cut
// sets. It walks back from the primary outputs, marking the best cut
// of every reached and-node as an implemented LUT, and accumulates
// the mapping area (LUT count) and depth (levels).
type TechMapper struct {
	aig    *aig.Aig
	engine *CutEngine

	// implementation records the chosen cover by non-inverted
	// and-literals.
	implementation map[aig.Literal]bool

	area  uint32
	depth uint32
	power uint32
}

// NewTechMapper creates a technology mapper on top of the cut
// engine. The mapper computes missing cut sets on demand through the
// engine.
func NewTechMapper(engine *CutEngine) *TechMapper {
	m := &TechMapper{
		aig:            engine.Aig(),
		engine:         engine,
		implementation: make(map[aig.Literal]bool),
	}
	first := m.aig.FirstAndLiteral().Index()
	for i := uint32(0); i < m.aig.NumAnds(); i++ {
		m.implementation[aig.LiteralFromIndex(first+i)] = false
	}
	return m
}

// Run computes the final cover. Outputs are processed in file
// order. An output that is a primary input or a constant costs one
// LUT-equivalent and one level.
func (m *TechMapper) Run() error {
	for _, output := range m.aig.Outputs() {
		if m.aig.IsAnd(output) {
			if err := m.coverOutput(output); err != nil {
				return err
			}
		} else if m.aig.IsInput(output) || output < 2 {
			m.area++
			if m.depth < 1 {
				m.depth = 1
			}
		}
	}
	return nil
}

// coverOutput marks the LUTs implementing the output and-node and
// all and-nodes transitively reachable through best-cut leaves.
func (m *TechMapper) coverOutput(output aig.Literal) error {
	even := output.Even()
	if m.implementation[even] {
		return nil
	}
	if _, err := m.engine.FindCuts(output); err != nil {
		return err
	}
	m.implementation[even] = true
	m.area++

	best, err := m.engine.BestCut(even)
	if err != nil {
		return err
	}
	if m.depth < best.Depth() {
		m.depth = best.Depth()
	}

	frontier := make(map[aig.Literal]bool)
	for _, leaf := range best.Leaves() {
		lit := aig.LiteralFromIndex(leaf)
		if m.aig.IsAnd(lit) {
			frontier[lit] = true
		}
	}

	// Each and-node is marked at most once and the frontier only
	// holds unmarked nodes, so the walk terminates.
	for len(frontier) > 0 {
		next := make(map[aig.Literal]bool)
		for lit := range frontier {
			if m.implementation[lit] {
				continue
			}
			m.implementation[lit] = true
			m.area++

			cut, err := m.engine.BestCut(lit)
			if err != nil {
				return err
			}
			for _, leaf := range cut.Leaves() {
				leafLit := aig.LiteralFromIndex(leaf)
				if m.aig.IsAnd(leafLit) {
					next[leafLit] = true
				}
			}
		}
		frontier = next
	}
	return nil
}

// Area returns the mapping area cost: the LUT count plus the number
// of outputs driven directly by inputs or constants.
func (m *TechMapper) Area() uint32 {
	return m.area
}

// Depth returns the mapping depth in levels.
func (m *TechMapper) Depth() uint32 {
	return m.depth
}

// Power returns the mapping power cost. Power is not modeled; the
// value is always zero.
func (m *TechMapper) Power() uint32 {
	return m.power
}

// Implemented tests if the and-node is part of the chosen cover.
func (m *TechMapper) Implemented(l aig.Literal) bool {
	return m.implementation[l.Even()]
}

// NumLuts returns the number of and-nodes in the chosen cover.
func (m *TechMapper) NumLuts() int {
	var count int
	for _, implemented := range m.implementation {
		if implemented {
			count++
		}
	}
	return count
}
