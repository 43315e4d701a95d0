//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"fmt"
	"sort"
)

// CutSet is an ordered container of pairwise-distinct cuts for one
// and-node. Insertion goes through Emplace which keeps the
// distinctness invariant; traversal order after Sort is best-first.
type CutSet struct {
	cuts []Cut
}

// Emplace tries to add a new cut to the set. If an equal cut is
// already in the set, Emplace returns it and false. Otherwise the
// new cut is appended and Emplace returns it and true.
func (s *CutSet) Emplace(c Cut) (*Cut, bool) {
	for i := range s.cuts {
		if s.cuts[i].Equal(c) {
			return &s.cuts[i], false
		}
	}
	s.cuts = append(s.cuts, c)
	return &s.cuts[len(s.cuts)-1], true
}

// Len returns the number of cuts in the set.
func (s *CutSet) Len() int {
	return len(s.cuts)
}

// Empty tests if the set has no cuts.
func (s *CutSet) Empty() bool {
	return len(s.cuts) == 0
}

// At returns the idx'th cut of the set.
func (s *CutSet) At(idx int) (*Cut, error) {
	if idx < 0 || idx >= len(s.cuts) {
		return nil, fmt.Errorf("%w: cut set index %d", ErrOutOfRange, idx)
	}
	return &s.cuts[idx], nil
}

// Cuts returns the cuts in their current order. The caller must not
// modify the result.
func (s *CutSet) Cuts() []Cut {
	return s.cuts
}

// Sort orders the cuts with the better comparator, best first. The
// sort is stable so that exact-tie blocks keep their insertion
// order.
func (s *CutSet) Sort(better func(a, b Cut) bool) {
	sort.SliceStable(s.cuts, func(i, j int) bool {
		return better(s.cuts[i], s.cuts[j])
	})
}

// Truncate keeps the first n cuts of the set.
func (s *CutSet) Truncate(n int) {
	if n < len(s.cuts) {
		s.cuts = s.cuts[:n]
	}
}

// Clone returns a copy of the set. The cuts are value types and are
// copied; their leaf slices are shared and immutable.
func (s *CutSet) Clone() CutSet {
	cuts := make([]Cut, len(s.cuts))
	copy(cuts, s.cuts)
	return CutSet{
		cuts: cuts,
	}
}
