// Package wire reads and writes the fixed width big endian fields shared by envelopes and payloads.
//
// Reader and Writer keep the first error they hit, so a sequence of reads can be checked once at
// the end.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

// Reader reads big endian fields from a byte slice.
type Reader struct {
	dec   *bin.Decoder
	err   error
	field string
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{dec: bin.NewBinDecoder(b)}
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	return r.err
}

// Field returns the name of the field whose read failed.
func (r *Reader) Field() string {
	return r.field
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.dec.Remaining()
}

// Fail records err against field unless an earlier error is already kept. Parsers use it for
// checks on values they have read.
func (r *Reader) Fail(field string, err error) {
	if r.err == nil {
		r.field = field
		r.err = fmt.Errorf("reading %s: %w", field, err)
	}
}

// Uint8 reads one byte.
func (r *Reader) Uint8(field string) uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint8()
	if err != nil {
		r.Fail(field, err)
	}

	return v
}

// Uint16 reads a big endian u16.
func (r *Reader) Uint16(field string) uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint16(binary.BigEndian)
	if err != nil {
		r.Fail(field, err)
	}

	return v
}

// Uint32 reads a big endian u32.
func (r *Reader) Uint32(field string) uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint32(binary.BigEndian)
	if err != nil {
		r.Fail(field, err)
	}

	return v
}

// Uint64 reads a big endian u64.
func (r *Reader) Uint64(field string) uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint64(binary.BigEndian)
	if err != nil {
		r.Fail(field, err)
	}

	return v
}

// Uint256 reads a big endian u256.
func (r *Reader) Uint256(field string) *uint256.Int {
	b := r.Bytes(field, 32)
	if r.err != nil {
		return new(uint256.Int)
	}

	return new(uint256.Int).SetBytes32(b)
}

// Bytes reads n bytes. The result is a copy, nil when n is zero.
func (r *Reader) Bytes(field string, n int) []byte {
	if r.err != nil || n == 0 {
		return nil
	}
	if n > r.dec.Remaining() {
		r.Fail(field, fmt.Errorf("need %d bytes, %d remaining", n, r.dec.Remaining()))
		return nil
	}
	v, err := r.dec.ReadBytes(n)
	if err != nil {
		r.Fail(field, err)
		return nil
	}

	return bytes.Clone(v)
}

// Bytes32 reads a fixed 32 byte field.
func (r *Reader) Bytes32(field string) [32]byte {
	var out [32]byte
	copy(out[:], r.Bytes(field, 32))

	return out
}

// Bytes20 reads a fixed 20 byte field.
func (r *Reader) Bytes20(field string) [20]byte {
	var out [20]byte
	copy(out[:], r.Bytes(field, 20))

	return out
}

// Rest reads every remaining byte. It never fails on its own.
func (r *Reader) Rest(field string) []byte {
	if r.err != nil {
		return nil
	}

	return r.Bytes(field, r.dec.Remaining())
}

// Finish returns the first read error, or an error if unread bytes remain.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}
	if n := r.dec.Remaining(); n != 0 {
		r.field = "end"
		r.err = fmt.Errorf("%d unexpected trailing bytes", n)
	}

	return r.err
}

// Writer writes big endian fields to an in-memory buffer.
type Writer struct {
	buf bytes.Buffer
	enc *bin.Encoder
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.enc = bin.NewBinEncoder(&w.buf)

	return w
}

func (w *Writer) keep(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Uint8 writes one byte.
func (w *Writer) Uint8(v uint8) *Writer {
	w.keep(w.enc.WriteUint8(v))
	return w
}

// Uint16 writes a big endian u16.
func (w *Writer) Uint16(v uint16) *Writer {
	w.keep(w.enc.WriteUint16(v, binary.BigEndian))
	return w
}

// Uint32 writes a big endian u32.
func (w *Writer) Uint32(v uint32) *Writer {
	w.keep(w.enc.WriteUint32(v, binary.BigEndian))
	return w
}

// Uint64 writes a big endian u64.
func (w *Writer) Uint64(v uint64) *Writer {
	w.keep(w.enc.WriteUint64(v, binary.BigEndian))
	return w
}

// Uint256 writes a big endian u256. A nil value is written as zero.
func (w *Writer) Uint256(v *uint256.Int) *Writer {
	if v == nil {
		v = new(uint256.Int)
	}
	b := v.Bytes32()

	return w.Raw(b[:])
}

// Raw writes b without a length prefix.
func (w *Writer) Raw(b []byte) *Writer {
	w.keep(w.enc.WriteBytes(b, false))
	return w
}

// Bytes returns the written bytes, or the first write error.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	return w.buf.Bytes(), nil
}
