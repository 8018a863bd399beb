// Package integer converts unsigned integers to and from big-endian packed BCD
// byte sequences.
//
// An n byte sequence holds 2n decimal digits, so the largest value it can
// represent is 10^(2n) - 1. Encoding a larger value fails with an
// OverflowError. Decoding validates every byte and fails with a
// pair.FormatError on the first byte containing a nibble above 9.
package integer

import (
	"math/big"

	"github.com/calebcase/bcd/pair"
)

// Unsigned is the set of native unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// maxUint64Bytes is the largest byte count whose maximum value fits in a
// uint64 (10^18 - 1).
const maxUint64Bytes = 9

var (
	one     = big.NewInt(1)
	ten     = big.NewInt(10)
	hundred = big.NewInt(100)
)

// Max returns the largest value representable in n bytes: 10^(2n) - 1.
func Max(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}

	m := new(big.Int).Exp(ten, big.NewInt(int64(2*n)), nil)

	return m.Sub(m, one)
}

// MaxUint64 is Max for byte counts whose maximum fits in a uint64. It
// returns false when it does not.
func MaxUint64(n int) (m uint64, ok bool) {
	if n < 0 || n > maxUint64Bytes {
		return 0, false
	}

	m = 1
	for i := 0; i < n; i++ {
		m *= 100
	}

	return m - 1, true
}

// Size returns the width of T in bytes. This is the byte count a fixed
// container mirroring T uses (e.g. 2 for uint16).
func Size[T Unsigned]() (n int) {
	for m := uint64(^T(0)); m != 0; m >>= 8 {
		n++
	}

	return n
}

// Capacity returns the largest byte count whose every value fits in T.
//
//	| Type   | Size | Capacity | Max                     |
//	|--------|------|----------|-------------------------|
//	| uint8  | 1    | 1        | 99                      |
//	| uint16 | 2    | 2        | 9_999                   |
//	| uint32 | 4    | 4        | 99_999_999              |
//	| uint64 | 8    | 9        | 999_999_999_999_999_999 |
func Capacity[T Unsigned]() (n int) {
	limit := uint64(^T(0))

	for {
		m, ok := MaxUint64(n + 1)
		if !ok || m > limit {
			return n
		}

		n++
	}
}

// MinBytes returns the smallest byte count able to hold v. Zero needs one
// byte.
func MinBytes(v uint64) int {
	digits := 1
	for v >= 10 {
		v /= 10
		digits++
	}

	return (digits + 1) / 2
}

// MinBytesBig is MinBytes for arbitrary magnitudes. Non-positive values
// report one byte.
func MinBytesBig(v *big.Int) int {
	if v == nil || v.Sign() <= 0 {
		return 1
	}

	if v.IsUint64() {
		return MinBytes(v.Uint64())
	}

	return (len(v.Text(10)) + 1) / 2
}

// Encode returns v as an n byte big-endian packed BCD sequence.
func Encode[T Unsigned](v T, n int) (data []byte, err error) {
	if n < 0 {
		return nil, Error.New("invalid byte count: %d", n)
	}

	u := uint64(v)

	// When the bound does not fit in a uint64 every uint64 fits in n bytes.
	if m, ok := MaxUint64(n); ok && u > m {
		return nil, overflowUint64(u, n)
	}

	data = make([]byte, n)

	for i := n - 1; u != 0; i-- {
		data[i] = pair.FromValue(byte(u % 100))
		u /= 100
	}

	return data, nil
}

// EncodeBig returns v as an n byte big-endian packed BCD sequence. Negative
// values are outside of the representable range and overflow.
func EncodeBig(v *big.Int, n int) (data []byte, err error) {
	if v == nil {
		return nil, Error.New("nil value")
	}

	if n < 0 {
		return nil, Error.New("invalid byte count: %d", n)
	}

	if v.Sign() < 0 || v.Cmp(Max(n)) > 0 {
		return nil, overflow(v, n)
	}

	if v.IsUint64() {
		return Encode(v.Uint64(), n)
	}

	data = make([]byte, n)

	q, r := new(big.Int).Set(v), new(big.Int)
	for i := n - 1; q.Sign() != 0; i-- {
		q.QuoRem(q, hundred, r)
		data[i] = pair.FromValue(byte(r.Uint64()))
	}

	return data, nil
}

// digits returns the two digit value of an already validated byte.
func digits(b byte) uint64 {
	tens, ones := pair.Unpack(b)

	return uint64(tens)*10 + uint64(ones)
}

// Decode returns the value of data as a T.
//
// Every byte is validated. If data is longer than Capacity[T] bytes only the
// trailing (least significant) Capacity[T] bytes are decoded and truncated is
// true.
func Decode[T Unsigned](data []byte) (v T, truncated bool, err error) {
	defer Error.WrapP(&err)

	err = pair.Validate(data)
	if err != nil {
		return 0, false, err
	}

	if c := Capacity[T](); len(data) > c {
		data = data[len(data)-c:]
		truncated = true
	}

	var acc uint64
	for _, b := range data {
		acc = acc*100 + digits(b)
	}

	return T(acc), truncated, nil
}

// DecodeBig returns the value of data. It never truncates.
func DecodeBig(data []byte) (v *big.Int, err error) {
	defer Error.WrapP(&err)

	err = pair.Validate(data)
	if err != nil {
		return nil, err
	}

	v = new(big.Int)
	if len(data) <= maxUint64Bytes {
		var acc uint64
		for _, b := range data {
			acc = acc*100 + digits(b)
		}

		return v.SetUint64(acc), nil
	}

	d := new(big.Int)
	for _, b := range data {
		v.Mul(v, hundred)
		v.Add(v, d.SetUint64(digits(b)))
	}

	return v, nil
}
