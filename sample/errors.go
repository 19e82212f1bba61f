// SPDX-License-Identifier: MIT

package sample

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument reports a range size, sample size or trial count
// outside the accepted domain (n > 0, 0 <= k <= n, m >= 0).
var ErrInvalidArgument = errors.New("sample: invalid argument")

const (
	methodChoice       = "Choice"
	methodChoiceTrials = "ChoiceTrials"
)

// validate enforces n > 0 and 0 <= k <= n.
// Negative n is reported the same way as n == 0.
func validate(method string, n, k int) error {
	if n <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: n=%d must be > 0", method, n)
	}
	if k < 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: k=%d must be >= 0", method, k)
	}
	if k > n {
		return errors.Wrapf(ErrInvalidArgument, "%s: k=%d exceeds n=%d", method, k, n)
	}

	return nil
}
