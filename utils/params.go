//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"
)

// Params specify technology mapping parameters.
type Params struct {
	Verbose bool

	// K specifies the number of LUT inputs.
	K int

	// C specifies how many priority cuts are kept per node. The
	// value zero disables pruning so that all K-feasible cuts are
	// kept.
	C int

	DotOut io.WriteCloser
}

// NewParams returns new mapping params object, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		K: 6,
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.DotOut != nil {
		p.DotOut.Close()
		p.DotOut = nil
	}
}
