//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package lut

import (
	"errors"
)

// Mapping error conditions.
var (
	ErrBadParameter = errors.New("bad parameter")
	ErrNotAnAnd     = errors.New("not an and-literal")
	ErrNotComputed  = errors.New("cut set not computed")
	ErrCostNotSet   = errors.New("cut cost not set")
	ErrOutOfRange   = errors.New("index out of range")
	ErrInternal     = errors.New("internal error")
)
