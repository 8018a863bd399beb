package integer

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// OverflowError reports a value outside of the range representable by the
// requested byte count.
type OverflowError struct {
	Value *big.Int
	Max   *big.Int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value (%s) exceeds maximum of %s", e.Value, e.Max)
}

func overflow(v *big.Int, n int) error {
	return Error.Wrap(&OverflowError{
		Value: new(big.Int).Set(v),
		Max:   Max(n),
	})
}

func overflowUint64(v uint64, n int) error {
	return overflow(new(big.Int).SetUint64(v), n)
}
