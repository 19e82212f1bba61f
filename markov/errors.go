// SPDX-License-Identifier: MIT

package markov

import (
	"errors"

	"github.com/chiron3/QuantEcon.py/builder"
)

// ErrInvalidArgument indicates an invalid size or transition matrix. It is
// the same value as builder.ErrInvalidArgument and sample.ErrInvalidArgument.
var ErrInvalidArgument = builder.ErrInvalidArgument

// ErrNotImplemented indicates a request for a sparse chain. It is reported
// only after all argument checks have passed.
var ErrNotImplemented = errors.New("markov: sparse chains not implemented")

const (
	methodNewMarkovChain    = "NewMarkovChain"
	methodRandomMarkovChain = "RandomMarkovChain"
)
