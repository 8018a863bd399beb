package integer

import (
	"io"
	"math/big"
)

// Schema for a packed BCD field.
type Schema struct {
	// Bytes is the width of every field. Zero writes each value in its
	// minimal width, which cannot be read back without external framing.
	Bytes int
}

// Decoder reads consecutive fixed width fields.
type Decoder struct {
	schema Schema
	r      io.Reader
	buf    []byte
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, r io.Reader) *Decoder {
	return &Decoder{
		schema: schema,
		r:      r,
	}
}

// Decode reads the next field into v. A clean end of input is reported as
// io.EOF; a partial field as io.ErrUnexpectedEOF.
func (d *Decoder) Decode(v *big.Int) (err error) {
	defer Error.WrapP(&err)

	if d.schema.Bytes <= 0 {
		return Error.New("invalid schema: fields of width %d cannot be decoded", d.schema.Bytes)
	}

	if d.buf == nil {
		d.buf = make([]byte, d.schema.Bytes)
	}

	_, err = io.ReadFull(d.r, d.buf)
	if err != nil {
		return err
	}

	x, err := DecodeBig(d.buf)
	if err != nil {
		return err
	}

	v.Set(x)

	return nil
}

// Encoder writes consecutive fields.
type Encoder struct {
	schema Schema
	w      io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes v as the next field.
func (e *Encoder) Encode(v *big.Int) (err error) {
	defer Error.WrapP(&err)

	n := e.schema.Bytes
	if n == 0 {
		n = MinBytesBig(v)
	}

	data, err := EncodeBig(v, n)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)

	return err
}

// EncodeUint64 writes v as the next field.
func (e *Encoder) EncodeUint64(v uint64) (err error) {
	return e.Encode(new(big.Int).SetUint64(v))
}
