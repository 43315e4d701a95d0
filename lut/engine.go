//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"fmt"

	"github.com/markkurossi/tmap/aig"
)

// CutEngine enumerates the K-feasible priority cuts of an
// And-Inverter Graph. For every and-node, in reverse topological
// order, the engine combines the child cut sets with the Φ and ◇
// operations, scores each cut for area and delay, and prunes the
// result to the C best cuts.
type CutEngine struct {
	aig  *aig.Aig
	goal Goal
	k    int
	c    int

	// cutsets is indexed by (and-index − first and-index). An empty
	// set means the node has not been computed yet.
	cutsets []CutSet

	// implemented records and-nodes, by their non-inverted
	// literals, that are already covered by a chosen LUT. The area
	// estimator treats such nodes as free to re-use.
	implemented map[aig.Literal]bool
}

// NewCutEngine creates a cut engine for the graph. The parameter k
// is the number of LUT inputs and c the number of priority cuts kept
// per node; zero keeps all cuts.
func NewCutEngine(a *aig.Aig, goal Goal, k, c int) (*CutEngine, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: value of parameter k (number of lut inputs) must be greater than 1", ErrBadParameter)
	}
	e := &CutEngine{
		aig:         a,
		goal:        goal,
		k:           k,
		c:           c,
		cutsets:     make([]CutSet, a.NumAnds()),
		implemented: make(map[aig.Literal]bool),
	}
	first := a.FirstAndLiteral().Index()
	for i := uint32(0); i < a.NumAnds(); i++ {
		e.implemented[aig.LiteralFromIndex(first+i)] = false
	}
	return e, nil
}

// Aig returns the graph the engine operates on.
func (e *CutEngine) Aig() *aig.Aig {
	return e.aig
}

// Goal returns the mapping goal.
func (e *CutEngine) Goal() Goal {
	return e.goal
}

// K returns the number of LUT inputs.
func (e *CutEngine) K() int {
	return e.k
}

// C returns the number of priority cuts kept per node.
func (e *CutEngine) C() int {
	return e.c
}

// cutsetIndex maps an and-literal to its cutsets index. Polarity is
// ignored.
func (e *CutEngine) cutsetIndex(l aig.Literal) (int, error) {
	idx := int(l.Index()) - int(e.aig.NumInputs()) -
		int(e.aig.NumLatches()) - 1
	if idx < 0 || idx >= len(e.cutsets) {
		return 0, fmt.Errorf("%w: cut set index for literal %d",
			ErrOutOfRange, l)
	}
	return idx, nil
}

// literalAt maps a cutsets index back to the and-literal.
func (e *CutEngine) literalAt(idx int) aig.Literal {
	return aig.LiteralFromIndex(uint32(idx) + e.aig.NumInputs() +
		e.aig.NumLatches() + 1)
}

// CutSetOf returns the cut set of the and-node. The set is empty if
// FindCuts has not processed the node yet.
func (e *CutEngine) CutSetOf(l aig.Literal) (*CutSet, error) {
	if !e.aig.IsAnd(l) {
		return nil, fmt.Errorf("%w: literal %d", ErrNotAnAnd, l)
	}
	idx, err := e.cutsetIndex(l)
	if err != nil {
		return nil, err
	}
	return &e.cutsets[idx], nil
}

// HasBestCut tests if the and-node has a computed cut set.
func (e *CutEngine) HasBestCut(l aig.Literal) (bool, error) {
	set, err := e.CutSetOf(l)
	if err != nil {
		return false, err
	}
	return !set.Empty(), nil
}

// BestCut returns the best cut of the and-node: the first element of
// its sorted cut set.
func (e *CutEngine) BestCut(l aig.Literal) (*Cut, error) {
	set, err := e.CutSetOf(l)
	if err != nil {
		return nil, err
	}
	if set.Empty() {
		return nil, fmt.Errorf("%w: the best cut for and-literal %d has not been defined yet", ErrNotComputed, l)
	}
	return set.At(0)
}

// Implemented tests if the and-node is covered by a chosen LUT.
func (e *CutEngine) Implemented(l aig.Literal) bool {
	return e.implemented[l.Even()]
}

// autoCut generates the trivial cut containing only the node itself.
// Inputs and latches are cut leaves with zero area and unit delay;
// for an and-node the costs derive from its best cut.
func (e *CutEngine) autoCut(l aig.Literal) (Cut, error) {
	if e.aig.IsInput(l) || e.aig.IsLatch(l) {
		return NewCutCosts([]uint32{l.Index()}, 0, 1, 0), nil
	}
	if e.aig.IsAnd(l) {
		best, err := e.BestCut(l)
		if err != nil {
			return Cut{}, err
		}
		return NewCutCosts([]uint32{l.Index()},
			best.Area(), best.Depth()+1, 0), nil
	}
	return Cut{}, fmt.Errorf("%w: node %d is neither input, latch nor and",
		ErrNotAnAnd, l)
}

// unionArea is the area cost of a union cut: the number of leaves
// that are and-nodes not yet covered by a chosen LUT. Inputs and
// latches contribute nothing.
func (e *CutEngine) unionArea(u Cut) uint32 {
	var count uint32
	for _, leaf := range u.Leaves() {
		lit := aig.LiteralFromIndex(leaf)
		if e.aig.IsAnd(lit) && !e.implemented[lit] {
			count++
		}
	}
	return count
}

// diamond combines two child cut sets: the union of every cut pair,
// keeping results with at most K leaves. Equivalent unions
// discovered along different pairs collapse to one; the first
// insertion's costs survive and the following sort reorders.
func (e *CutEngine) diamond(setA, setB *CutSet) (CutSet, error) {
	var d CutSet

	for _, cutA := range setA.Cuts() {
		for _, cutB := range setB.Cuts() {
			u, err := cutA.Union(cutB)
			if err != nil {
				return CutSet{}, err
			}
			if u.Size() > e.k {
				continue
			}
			if !cutA.AllCostsSet() || !cutB.AllCostsSet() {
				return CutSet{}, fmt.Errorf("%w: the cost of the union of two cuts can only be evaluated if the two cuts have their costs for area, delay and power defined", ErrCostNotSet)
			}
			cut, inserted := d.Emplace(u)
			if inserted {
				cut.setCosts(e.unionArea(u), unionDepth(cutA, cutB), 0)
			}
		}
	}
	return d, nil
}

// phi computes the raw cut set of the and-node from its child cut
// sets, each augmented with the child's auto cut. Inputs and latches
// start from an empty set; and-children must have their cut sets
// computed.
func (e *CutEngine) phi(l aig.Literal) (CutSet, error) {
	if !e.aig.IsAnd(l) {
		return CutSet{}, fmt.Errorf("%w: literal %d", ErrNotAnAnd, l)
	}
	set, err := e.CutSetOf(l)
	if err != nil {
		return CutSet{}, err
	}
	if !set.Empty() {
		return *set, nil
	}

	and, err := e.aig.AndFromLiteral(l)
	if err != nil {
		return CutSet{}, fmt.Errorf("%w: %s", ErrNotAnAnd, err)
	}

	setA, err := e.childCutSet(and.Rhs0)
	if err != nil {
		return CutSet{}, err
	}
	setB, err := e.childCutSet(and.Rhs1)
	if err != nil {
		return CutSet{}, err
	}
	return e.diamond(&setA, &setB)
}

func (e *CutEngine) childCutSet(child aig.Literal) (CutSet, error) {
	var set CutSet

	if e.aig.IsAnd(child) {
		computed, err := e.CutSetOf(child)
		if err != nil {
			return CutSet{}, err
		}
		if computed.Empty() {
			return CutSet{}, fmt.Errorf("%w: child and-node %d has no cut set defined", ErrNotComputed, child)
		}
		set = computed.Clone()
	}
	auto, err := e.autoCut(child)
	if err != nil {
		return CutSet{}, err
	}
	set.Emplace(auto)
	return set, nil
}

// markImplemented records the node as covered when its chosen best
// cut has zero area cost: every and-leaf is already covered or
// absorbed. A child whose best cut leaves are a subset of the chosen
// cut's leaves is absorbed upward and its own mark is revoked.
func (e *CutEngine) markImplemented(n aig.Literal, children ...aig.Literal) error {
	best, err := e.BestCut(n)
	if err != nil {
		return err
	}
	if best.Area() != 0 {
		return nil
	}
	e.implemented[n.Even()] = true

	for _, child := range children {
		if !e.aig.IsAnd(child) {
			continue
		}
		childBest, err := e.BestCut(child)
		if err != nil {
			return err
		}
		if best.Contains(*childBest) {
			e.implemented[child.Even()] = false
		}
	}
	return nil
}

func sortCutSet(s CutSet, goal Goal) CutSet {
	best := s.Clone()
	best.Sort(goal.Better())
	return best
}

func sortAndChooseBestCuts(s CutSet, c int, goal Goal) CutSet {
	best := sortCutSet(s, goal)
	best.Truncate(c)
	return best
}

// FindCuts computes the cut set of the and-node, computing
// dependencies on demand, and returns it sorted best-first. The
// traversal is iterative with an explicit work stack; call depth
// stays constant regardless of graph depth. FindCuts is idempotent:
// a second call returns the same set.
func (e *CutEngine) FindCuts(root aig.Literal) (*CutSet, error) {
	if !e.aig.IsAnd(root) {
		return nil, fmt.Errorf("%w: literal %d", ErrNotAnAnd, root)
	}
	rootIdx, err := e.cutsetIndex(root)
	if err != nil {
		return nil, err
	}
	if !e.cutsets[rootIdx].Empty() {
		return &e.cutsets[rootIdx], nil
	}

	stack := []aig.Literal{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]

		and, err := e.aig.AndFromLiteral(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotAnAnd, err)
		}

		// Children first: an and-child without a cut set puts off
		// the current node.
		if pending, err := e.pending(and.Rhs0); err != nil {
			return nil, err
		} else if pending {
			stack = append(stack, and.Rhs0)
			continue
		}
		if pending, err := e.pending(and.Rhs1); err != nil {
			return nil, err
		} else if pending {
			stack = append(stack, and.Rhs1)
			continue
		}

		raw, err := e.phi(n)
		if err != nil {
			return nil, err
		}

		var sorted CutSet
		if e.c > 0 {
			sorted = sortAndChooseBestCuts(raw, e.c, e.goal)
		} else {
			sorted = sortCutSet(raw, e.goal)
		}
		idx, err := e.cutsetIndex(n)
		if err != nil {
			return nil, err
		}
		e.cutsets[idx] = sorted

		if err := e.markImplemented(n, and.Rhs0, and.Rhs1); err != nil {
			return nil, err
		}

		stack = stack[:len(stack)-1]
	}

	if e.cutsets[rootIdx].Empty() {
		return nil, fmt.Errorf("%w: cut set for and-literal %d remains undefined after processing", ErrInternal, root)
	}
	return &e.cutsets[rootIdx], nil
}

// pending tests if the literal is an and-node whose cut set has not
// been computed yet.
func (e *CutEngine) pending(l aig.Literal) (bool, error) {
	if !e.aig.IsAnd(l) {
		return false, nil
	}
	set, err := e.CutSetOf(l)
	if err != nil {
		return false, err
	}
	return set.Empty(), nil
}

// Run computes cut sets for every primary output that is an
// and-node, in output file order. Constants, inputs, and latches
// bypass cut enumeration.
func (e *CutEngine) Run() error {
	for _, output := range e.aig.Outputs() {
		if e.aig.IsAnd(output) {
			if _, err := e.FindCuts(output); err != nil {
				return err
			}
		}
	}
	return nil
}
