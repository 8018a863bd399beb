package bcd

import (
	"bytes"
	"math/big"

	"github.com/calebcase/bcd/integer"
	"github.com/calebcase/bcd/pair"
)

// Dynamic is a packed BCD value whose byte count is chosen per value. The
// zero value is the empty sequence, which decodes as zero.
type Dynamic struct {
	data []byte
}

// NewDynamic encodes v in the fewest bytes able to hold it. Zero is one
// byte.
func NewDynamic[T integer.Unsigned](v T) Dynamic {
	u := uint64(v)

	// The minimal width always fits.
	data, _ := integer.Encode(u, integer.MinBytes(u))

	return Dynamic{data: data}
}

// NewDynamicBig encodes v in the fewest bytes able to hold it. It fails with
// an OverflowError if v is negative.
func NewDynamicBig(v *big.Int) (d Dynamic, err error) {
	defer Error.WrapP(&err)

	data, err := integer.EncodeBig(v, integer.MinBytesBig(v))
	if err != nil {
		return Dynamic{}, err
	}

	return Dynamic{data: data}, nil
}

// NewDynamicN encodes v in exactly n bytes. It fails with an OverflowError if
// v does not fit. Zero in zero bytes is the empty sequence.
func NewDynamicN[T integer.Unsigned](v T, n int) (d Dynamic, err error) {
	defer Error.WrapP(&err)

	data, err := integer.Encode(v, n)
	if err != nil {
		return Dynamic{}, err
	}

	return Dynamic{data: data}, nil
}

// NewDynamicBigN encodes v in exactly n bytes. It fails with an OverflowError
// if v is negative or does not fit.
func NewDynamicBigN(v *big.Int, n int) (d Dynamic, err error) {
	defer Error.WrapP(&err)

	data, err := integer.EncodeBig(v, n)
	if err != nil {
		return Dynamic{}, err
	}

	return Dynamic{data: data}, nil
}

// DynamicFromBytes validates and copies data. The length is kept as is.
func DynamicFromBytes(data []byte) (d Dynamic, err error) {
	defer Error.WrapP(&err)

	err = pair.Validate(data)
	if err != nil {
		return Dynamic{}, err
	}

	return Dynamic{data: append([]byte{}, data...)}, nil
}

// Resize returns d with n bytes. Leading bytes are dropped when shrinking and
// zero bytes prepended when growing. A negative n is treated as zero.
func (d Dynamic) Resize(n int) Dynamic {
	return Dynamic{data: fit(d.data, n)}
}

// Len returns the number of bytes.
func (d Dynamic) Len() int {
	return len(d.data)
}

// Bytes returns a copy of the packed digits.
func (d Dynamic) Bytes() []byte {
	return append([]byte{}, d.data...)
}

// Big returns the value.
func (d Dynamic) Big() *big.Int {
	return value(d.data)
}

// Uint64 returns the value. ok is false if d is longer than 9 bytes; v then
// holds the trailing 18 digits.
func (d Dynamic) Uint64() (v uint64, ok bool) {
	return uint64Value(d.data)
}

// Equal returns true if d and o hold the same bytes. Containers of different
// length are not equal even when their values are.
func (d Dynamic) Equal(o Dynamic) bool {
	return bytes.Equal(d.data, o.data)
}

// String returns the value in decimal.
func (d Dynamic) String() string {
	return d.Big().String()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Dynamic) MarshalBinary() (data []byte, err error) {
	return d.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. d is unchanged on
// failure.
func (d *Dynamic) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	err = pair.Validate(data)
	if err != nil {
		return err
	}

	d.data = append([]byte{}, data...)

	return nil
}
