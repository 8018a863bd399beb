package pair

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("pair")

// Nibble masks.
var (
	tensMask byte = 0b1111_0000
	onesMask byte = 0b0000_1111
)

// MaxDigit is the largest value a nibble may hold.
const MaxDigit = 9

// FormatError reports a byte that is not valid packed BCD.
type FormatError struct {
	Description string

	// Offset is the position of the invalid byte in the input sequence.
	Offset int
	Byte   byte
}

func (e *FormatError) Error() string {
	return e.Description
}

// nibbles names the out of range nibbles of b.
func nibbles(b byte) string {
	tens, ones := Unpack(b)

	switch {
	case tens > MaxDigit && ones > MaxDigit:
		return "high and low nibbles"
	case tens > MaxDigit:
		return "high nibble"
	default:
		return "low nibble"
	}
}

// newFormatError reports the invalid byte b found at offset in a sequence.
func newFormatError(offset int, b byte) error {
	return Error.Wrap(&FormatError{
		Description: fmt.Sprintf(
			"invalid bcd byte 0x%02x at offset %d: %s out of range [0,9]",
			b,
			offset,
			nibbles(b),
		),
		Offset: offset,
		Byte:   b,
	})
}

// newByteError reports a single invalid byte with no sequence position.
func newByteError(b byte) error {
	return Error.Wrap(&FormatError{
		Description: fmt.Sprintf(
			"invalid bcd byte 0x%02x: %s out of range [0,9]",
			b,
			nibbles(b),
		),
		Byte: b,
	})
}

// Pack returns the byte holding tens in the high nibble and ones in the low
// nibble. Both digits must already be in [0,9]; they are not checked.
func Pack(tens, ones byte) byte {
	return tens<<4 | ones
}

// FromValue packs a value in [0,99].
func FromValue(v byte) byte {
	return Pack(v/10, v%10)
}

// Unpack splits b into its high and low nibbles.
func Unpack(b byte) (tens, ones byte) {
	return b & tensMask >> 4, b & onesMask
}

// Valid returns true if both nibbles of b are decimal digits.
func Valid(b byte) bool {
	tens, ones := Unpack(b)

	return tens <= MaxDigit && ones <= MaxDigit
}

// Value returns the two digit value held in b. An invalid b fails with a
// FormatError whose Offset is zero.
func Value(b byte) (v byte, err error) {
	if !Valid(b) {
		return 0, newByteError(b)
	}

	tens, ones := Unpack(b)

	return tens*10 + ones, nil
}

// Validate checks every byte of data and fails on the first invalid one.
func Validate(data []byte) (err error) {
	for i, b := range data {
		if !Valid(b) {
			return newFormatError(i, b)
		}
	}

	return nil
}
