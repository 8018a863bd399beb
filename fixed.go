package bcd

import (
	"bytes"
	"math/big"

	"github.com/calebcase/bcd/integer"
	"github.com/calebcase/bcd/pair"
)

// Size names the byte count of a Fixed container. Implementations must be
// value types (usually empty structs) whose zero value reports the count.
type Size interface {
	Bytes() int
}

// Predefined sizes.
type (
	B1  struct{}
	B2  struct{}
	B4  struct{}
	B8  struct{}
	B16 struct{}
)

func (B1) Bytes() int  { return 1 }
func (B2) Bytes() int  { return 2 }
func (B4) Bytes() int  { return 4 }
func (B8) Bytes() int  { return 8 }
func (B16) Bytes() int { return 16 }

// Containers matching the native integer widths.
type (
	Fixed8   = Fixed[B1]
	Fixed16  = Fixed[B2]
	Fixed32  = Fixed[B4]
	Fixed64  = Fixed[B8]
	Fixed128 = Fixed[B16]
)

func sizeOf[S Size]() int {
	var s S

	n := s.Bytes()
	if n < 0 {
		panic(Error.New("invalid size %T: %d bytes", s, n))
	}

	return n
}

// Fixed is a packed BCD value of exactly S.Bytes() bytes. The zero value is
// zero.
type Fixed[S Size] struct {
	// data is either nil or exactly S.Bytes() valid bytes.
	data []byte
}

// NewFixed encodes v. It fails with an OverflowError if v does not fit.
func NewFixed[S Size, T integer.Unsigned](v T) (f Fixed[S], err error) {
	defer Error.WrapP(&err)

	data, err := integer.Encode(v, sizeOf[S]())
	if err != nil {
		return Fixed[S]{}, err
	}

	return Fixed[S]{data: data}, nil
}

// NewFixedBig encodes v. It fails with an OverflowError if v is negative or
// does not fit.
func NewFixedBig[S Size](v *big.Int) (f Fixed[S], err error) {
	defer Error.WrapP(&err)

	data, err := integer.EncodeBig(v, sizeOf[S]())
	if err != nil {
		return Fixed[S]{}, err
	}

	return Fixed[S]{data: data}, nil
}

// FixedFromBytes validates data and resizes it to S.Bytes() bytes. Longer
// input loses its leading bytes, shorter input is zero padded at the front.
func FixedFromBytes[S Size](data []byte) (f Fixed[S], err error) {
	defer Error.WrapP(&err)

	err = pair.Validate(data)
	if err != nil {
		return Fixed[S]{}, err
	}

	return Fixed[S]{data: fit(data, sizeOf[S]())}, nil
}

// Resize converts f to the width D. Leading bytes are dropped when shrinking
// and zero bytes prepended when growing.
func Resize[D, S Size](f Fixed[S]) Fixed[D] {
	return Fixed[D]{data: fit(f.data, sizeOf[D]())}
}

// ToFixed converts d to the width S using the same rule as Resize.
func ToFixed[S Size](d Dynamic) Fixed[S] {
	return Fixed[S]{data: fit(d.data, sizeOf[S]())}
}

// Len returns S.Bytes().
func (f Fixed[S]) Len() int {
	return sizeOf[S]()
}

// Bytes returns a copy of the packed digits.
func (f Fixed[S]) Bytes() []byte {
	return fit(f.data, sizeOf[S]())
}

// Big returns the value.
func (f Fixed[S]) Big() *big.Int {
	return value(f.Bytes())
}

// Uint64 returns the value. ok is false if the container is wider than a
// uint64 can always hold (more than 9 bytes); v then holds the trailing 18
// digits.
func (f Fixed[S]) Uint64() (v uint64, ok bool) {
	return uint64Value(f.Bytes())
}

// Dynamic returns f as a Dynamic container of the same length.
func (f Fixed[S]) Dynamic() Dynamic {
	return Dynamic{data: f.Bytes()}
}

// Equal returns true if f and o hold the same digits.
func (f Fixed[S]) Equal(o Fixed[S]) bool {
	return bytes.Equal(f.Bytes(), o.Bytes())
}

// String returns the value in decimal.
func (f Fixed[S]) String() string {
	return f.Big().String()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f Fixed[S]) MarshalBinary() (data []byte, err error) {
	return f.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be exactly
// S.Bytes() valid bytes; f is unchanged on failure.
func (f *Fixed[S]) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	n := sizeOf[S]()
	if len(data) != n {
		return Error.New("invalid length: got %d bytes, want %d", len(data), n)
	}

	err = pair.Validate(data)
	if err != nil {
		return err
	}

	f.data = fit(data, n)

	return nil
}
