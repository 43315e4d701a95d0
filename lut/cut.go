//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/markkurossi/tmap/aig"
)

// CostUnset marks a cost value that has not been computed.
const CostUnset uint32 = math.MaxUint32

// Cut is a set of leaf variable indices plus area, delay, and power
// scores. The leaves of a cut at an and-node are the inputs of a
// candidate LUT implementing the node. Cut equality compares leaves
// only.
type Cut struct {
	leaves []uint32
	area   uint32
	depth  uint32
	power  uint32
}

// NewCut creates a cut of the leaf variable indices with all costs
// unset.
func NewCut(leaves ...uint32) Cut {
	return NewCutCosts(leaves, CostUnset, CostUnset, CostUnset)
}

// NewCutCosts creates a cut of the leaf variable indices with the
// given cost values.
func NewCutCosts(leaves []uint32, area, depth, power uint32) Cut {
	sorted := make([]uint32, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	// Drop duplicates.
	var n int
	for i, leaf := range sorted {
		if i > 0 && leaf == sorted[n-1] {
			continue
		}
		sorted[n] = leaf
		n++
	}
	return Cut{
		leaves: sorted[:n],
		area:   area,
		depth:  depth,
		power:  power,
	}
}

// Leaves returns the leaf variable indices in ascending order. The
// caller must not modify the result.
func (c Cut) Leaves() []uint32 {
	return c.leaves
}

// Size returns the number of leaves.
func (c Cut) Size() int {
	return len(c.leaves)
}

// Empty tests if the cut has no leaves.
func (c Cut) Empty() bool {
	return len(c.leaves) == 0
}

// Area returns the area cost.
func (c Cut) Area() uint32 {
	return c.area
}

// Depth returns the delay cost.
func (c Cut) Depth() uint32 {
	return c.depth
}

// Power returns the power cost.
func (c Cut) Power() uint32 {
	return c.power
}

// SetArea sets the area cost. The sentinel CostUnset is not a valid
// cost value.
func (c *Cut) SetArea(v uint32) error {
	if v == CostUnset {
		return fmt.Errorf("%w: area cost must be in the range [0, %d)",
			ErrBadParameter, CostUnset)
	}
	c.area = v
	return nil
}

// SetDepth sets the delay cost. The sentinel CostUnset is not a
// valid cost value.
func (c *Cut) SetDepth(v uint32) error {
	if v == CostUnset {
		return fmt.Errorf("%w: delay cost must be in the range [0, %d)",
			ErrBadParameter, CostUnset)
	}
	c.depth = v
	return nil
}

// SetPower sets the power cost. The sentinel CostUnset is not a
// valid cost value.
func (c *Cut) SetPower(v uint32) error {
	if v == CostUnset {
		return fmt.Errorf("%w: power cost must be in the range [0, %d)",
			ErrBadParameter, CostUnset)
	}
	c.power = v
	return nil
}

func (c *Cut) setCosts(area, depth, power uint32) {
	c.area = area
	c.depth = depth
	c.power = power
}

// AreaSet tests if the area cost has been computed.
func (c Cut) AreaSet() bool {
	return c.area != CostUnset
}

// DepthSet tests if the delay cost has been computed.
func (c Cut) DepthSet() bool {
	return c.depth != CostUnset
}

// PowerSet tests if the power cost has been computed.
func (c Cut) PowerSet() bool {
	return c.power != CostUnset
}

// AllCostsSet tests if area, delay, and power costs have all been
// computed.
func (c Cut) AllCostsSet() bool {
	return c.AreaSet() && c.DepthSet() && c.PowerSet()
}

// Equal tests if the cuts have the same leaves. Costs are derived
// scores and do not participate in equality.
func (c Cut) Equal(o Cut) bool {
	if len(c.leaves) != len(o.leaves) {
		return false
	}
	for i, leaf := range c.leaves {
		if leaf != o.leaves[i] {
			return false
		}
	}
	return true
}

// Contains tests if every leaf of o is also a leaf of c.
func (c Cut) Contains(o Cut) bool {
	var i int
	for _, leaf := range o.leaves {
		for i < len(c.leaves) && c.leaves[i] < leaf {
			i++
		}
		if i >= len(c.leaves) || c.leaves[i] != leaf {
			return false
		}
	}
	return true
}

// Union returns a new cut whose leaves are the union of the operand
// leaves and whose costs are unset. The union of empty cuts is not
// defined.
func (c Cut) Union(o Cut) (Cut, error) {
	if c.Empty() || o.Empty() {
		return Cut{}, fmt.Errorf("%w: the union of two cuts cannot be evaluated if any of the two cuts have an empty leaf set", ErrBadParameter)
	}
	leaves := make([]uint32, 0, len(c.leaves)+len(o.leaves))

	var i, j int
	for i < len(c.leaves) && j < len(o.leaves) {
		switch {
		case c.leaves[i] < o.leaves[j]:
			leaves = append(leaves, c.leaves[i])
			i++
		case c.leaves[i] > o.leaves[j]:
			leaves = append(leaves, o.leaves[j])
			j++
		default:
			leaves = append(leaves, c.leaves[i])
			i++
			j++
		}
	}
	leaves = append(leaves, c.leaves[i:]...)
	leaves = append(leaves, o.leaves[j:]...)

	return Cut{
		leaves: leaves,
		area:   CostUnset,
		depth:  CostUnset,
		power:  CostUnset,
	}, nil
}

func (c Cut) String() string {
	var sb strings.Builder

	sb.WriteString("( ")
	for _, leaf := range c.leaves {
		fmt.Fprintf(&sb, "%d ", aig.LiteralFromIndex(leaf))
	}
	sb.WriteString(")")

	fmt.Fprintf(&sb, " : area = %s : delay = %s : power = %s",
		costString(c.area), costString(c.depth), costString(c.power))

	return sb.String()
}

func costString(v uint32) string {
	if v == CostUnset {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}
