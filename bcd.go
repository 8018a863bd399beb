package bcd

import (
	"errors"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/integer"
	"github.com/calebcase/bcd/pair"
)

// Error is the error class for this package.
var Error = errs.Class("bcd")

// OverflowError reports an integer too large for the requested width.
type OverflowError = integer.OverflowError

// FormatError reports a byte with a nibble outside of [0,9].
type FormatError = pair.FormatError

// IsOverflow returns true if err is or wraps an OverflowError.
func IsOverflow(err error) bool {
	var oe *OverflowError

	return errors.As(err, &oe)
}

// IsInvalidFormat returns true if err is or wraps a FormatError.
func IsInvalidFormat(err error) bool {
	var fe *FormatError

	return errors.As(err, &fe)
}

// Max returns the largest value representable in n bytes.
func Max(n int) *big.Int {
	return integer.Max(n)
}

// fit returns a copy of data resized to n bytes. Leading bytes are dropped
// when data is longer, zero bytes are prepended when it is shorter. A
// negative n yields an empty slice.
func fit(data []byte, n int) []byte {
	if n < 0 {
		n = 0
	}

	out := make([]byte, n)

	if len(data) >= n {
		copy(out, data[len(data)-n:])
	} else {
		copy(out[n-len(data):], data)
	}

	return out
}

// value decodes bytes validated on construction.
func value(data []byte) *big.Int {
	v, err := integer.DecodeBig(data)
	if err != nil {
		return new(big.Int)
	}

	return v
}

// uint64Value decodes bytes validated on construction into a uint64. ok is
// false when the leading bytes did not fit.
func uint64Value(data []byte) (v uint64, ok bool) {
	v, truncated, err := integer.Decode[uint64](data)
	if err != nil {
		return 0, false
	}

	return v, !truncated
}
