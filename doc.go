// Package bcd provides packed binary-coded decimal containers.
//
// Packed BCD stores two decimal digits per byte, most significant byte first.
// There is no sign, no decimal point and no length prefix; the length is
// either part of the container type (Fixed) or carried by the container
// itself (Dynamic).
//
// # Fixed
//
// A Fixed container holds exactly S.Bytes() bytes. The width is part of the
// type, so Fixed[B2] and Fixed[B4] cannot be mixed up. The predefined widths
// mirror the native integer widths:
//
//	| Container | Size | Bytes | Max                                |
//	|-----------|------|-------|------------------------------------|
//	| Fixed8    | B1   | 1     | 99                                 |
//	| Fixed16   | B2   | 2     | 9_999                              |
//	| Fixed32   | B4   | 4     | 99_999_999                         |
//	| Fixed64   | B8   | 8     | 9_999_999_999_999_999              |
//	| Fixed128  | B16  | 16    | 10^32 - 1                          |
//	|-----------|------|-------|------------------------------------|
//
// Other widths are declared with a value type implementing Size:
//
//	type B6 struct{}
//
//	func (B6) Bytes() int { return 6 }
//
//	f, err := bcd.NewFixed[B6](uint64(123_456_789_012))
//
// # Dynamic
//
// A Dynamic container holds any number of bytes. Built from an integer it
// uses the fewest bytes able to hold the value (at least one):
//
//	0     -> 00
//	45    -> 45
//	12345 -> 01 23 45
//
// # Resizing
//
// Converting between widths keeps the least significant bytes. Shrinking
// drops leading bytes, growing prepends zero bytes:
//
//	12 34 -> 1 byte  -> 34
//	34    -> 2 bytes -> 00 34
//
// Shrinking is lossy when a dropped byte is not zero. It is never an error.
//
// # Errors
//
// Encoding a value above 10^(2n) - 1 into n bytes fails with an
// OverflowError. Building a container from bytes with a nibble above 9 fails
// with a FormatError. Constructors are all-or-nothing: on failure the zero
// container is returned.
package bcd
