package integer

// Pack returns v with its packed BCD digits stored in the same width, e.g.
// uint16(1234) becomes 0x1234. Values above Max(Size[T]()) overflow.
func Pack[T Unsigned](v T) (packed T, err error) {
	data, err := Encode(v, Size[T]())
	if err != nil {
		return 0, err
	}

	for _, b := range data {
		packed = T(uint64(packed)<<8 | uint64(b))
	}

	return packed, nil
}

// Unpack is the inverse of Pack. Every nibble of v must be a decimal digit.
func Unpack[T Unsigned](v T) (unpacked T, err error) {
	n := Size[T]()

	u := uint64(v)

	data := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		data[i] = byte(u)
		u >>= 8
	}

	unpacked, _, err = Decode[T](data)

	return unpacked, err
}
