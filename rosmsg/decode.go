package rosmsg

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decode reads one message of schema s. The message must occupy buf
// exactly; leftover bytes fail with TrailingBytes.
func Decode(s *Schema, buf []byte) (*Message, error) {
	m, n, err := DecodePrefix(s, buf)
	if err != nil {
		return nil, err
	}
	if n != len(buf) {
		return nil, errorf(ErrorCodeTrailingBytes, "%s: %d trailing bytes", s.name, len(buf)-n)
	}
	return m, nil
}

// DecodePrefix reads one message of schema s from the start of buf and
// returns it with the number of bytes consumed.
//
// Length prefixes are validated against the remaining input before anything
// is allocated: a count that needs more bytes than remain fails with
// LengthOverflow, a fixed-width read past the end with BufferTruncated.
func DecodePrefix(s *Schema, buf []byte) (*Message, int, error) {
	d := decoder{buf: buf, root: s.name}
	m, err := d.message(s)
	if err != nil {
		return nil, 0, err
	}
	return m, d.off, nil
}

type decoder struct {
	buf  []byte
	off  int
	root string
	path []string
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

func (d *decoder) fail(code ErrorCode, format string, args ...any) error {
	var b strings.Builder
	b.WriteString(d.root)
	for i, p := range d.path {
		if i == 0 {
			b.WriteString(": ")
		} else if !strings.HasPrefix(p, "[") {
			b.WriteString(".")
		}
		b.WriteString(p)
	}
	return errorf(code, "%s: %s (offset %d)", b.String(), fmt.Sprintf(format, args...), d.off)
}

func (d *decoder) message(s *Schema) (*Message, error) {
	m := &Message{schema: s, values: make([]any, len(s.fields))}
	for i, f := range s.fields {
		d.path = append(d.path, f.Name)
		v, err := d.value(f.Type)
		if err != nil {
			return nil, err
		}
		d.path = d.path[:len(d.path)-1]
		m.values[i] = v
	}
	return m, nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if n > d.remaining() {
		return nil, d.fail(ErrorCodeBufferTruncated, "need %d bytes, have %d", n, d.remaining())
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *decoder) readString() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(d.remaining()) {
		return "", d.fail(ErrorCodeLengthOverflow, "string length %d exceeds %d remaining bytes", n, d.remaining())
	}
	s := string(d.buf[d.off : d.off+int(n)])
	d.off += int(n)
	return s, nil
}

func (d *decoder) scalar(t Type) (any, error) {
	switch t.Kind {
	case KindString:
		return d.readString()
	case KindMessage:
		return d.message(t.Msg)
	}
	b, err := d.take(t.Kind.Width())
	if err != nil {
		return nil, err
	}
	return readScalar(t.Kind, b), nil
}

func readScalar(k Kind, b []byte) any {
	switch k {
	case KindBool:
		return b[0] != 0
	case KindInt8:
		return int8(b[0])
	case KindUint8:
		return b[0]
	case KindInt16:
		return int16(binary.LittleEndian.Uint16(b))
	case KindUint16:
		return binary.LittleEndian.Uint16(b)
	case KindInt32:
		return int32(binary.LittleEndian.Uint32(b))
	case KindUint32:
		return binary.LittleEndian.Uint32(b)
	case KindInt64:
		return int64(binary.LittleEndian.Uint64(b))
	case KindUint64:
		return binary.LittleEndian.Uint64(b)
	case KindFloat32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case KindFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	case KindTime:
		return Time{Sec: binary.LittleEndian.Uint32(b), Nsec: binary.LittleEndian.Uint32(b[4:])}
	case KindDuration:
		return Duration{Sec: int32(binary.LittleEndian.Uint32(b)), Nsec: int32(binary.LittleEndian.Uint32(b[4:]))}
	}
	return nil
}

func (d *decoder) value(t Type) (any, error) {
	if !t.IsArray() {
		return d.scalar(t)
	}
	elem := t.Elem()
	// every element costs at least one byte so a count is always bounded by the input
	least := max(minSize(elem), 1)

	n := t.Len
	if t.Array == VarArray {
		c, err := d.u32()
		if err != nil {
			return nil, err
		}
		if uint64(c)*uint64(least) > uint64(d.remaining()) {
			return nil, d.fail(ErrorCodeLengthOverflow, "sequence of %d elements exceeds %d remaining bytes", c, d.remaining())
		}
		n = int(c)
	} else if n*minSize(elem) > d.remaining() {
		return nil, d.fail(ErrorCodeBufferTruncated, "fixed array of %d elements needs at least %d bytes, have %d",
			n, n*minSize(elem), d.remaining())
	}

	switch elem.Kind {
	case KindString:
		out := make([]string, n)
		for i := range out {
			s, err := d.readString()
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	case KindMessage:
		out := make([]*Message, n)
		for i := range out {
			d.path = append(d.path, "["+strconv.Itoa(i)+"]")
			m, err := d.message(elem.Msg)
			if err != nil {
				return nil, err
			}
			d.path = d.path[:len(d.path)-1]
			out[i] = m
		}
		return out, nil
	case KindUint8:
		out := make([]uint8, n)
		d.off += copy(out, d.buf[d.off:])
		return out, nil
	}

	// primitive widths were bounds-checked above
	w := elem.Kind.Width()
	switch elem.Kind {
	case KindBool:
		return readSlice[bool](d, elem.Kind, n, w), nil
	case KindInt8:
		return readSlice[int8](d, elem.Kind, n, w), nil
	case KindInt16:
		return readSlice[int16](d, elem.Kind, n, w), nil
	case KindUint16:
		return readSlice[uint16](d, elem.Kind, n, w), nil
	case KindInt32:
		return readSlice[int32](d, elem.Kind, n, w), nil
	case KindUint32:
		return readSlice[uint32](d, elem.Kind, n, w), nil
	case KindInt64:
		return readSlice[int64](d, elem.Kind, n, w), nil
	case KindUint64:
		return readSlice[uint64](d, elem.Kind, n, w), nil
	case KindFloat32:
		return readSlice[float32](d, elem.Kind, n, w), nil
	case KindFloat64:
		return readSlice[float64](d, elem.Kind, n, w), nil
	case KindTime:
		return readSlice[Time](d, elem.Kind, n, w), nil
	case KindDuration:
		return readSlice[Duration](d, elem.Kind, n, w), nil
	}
	return nil, d.fail(ErrorCodeInvalidDefinition, "unsupported element kind %s", elem.Kind)
}

func readSlice[T any](d *decoder, k Kind, n, width int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = readScalar(k, d.buf[d.off:d.off+width]).(T)
		d.off += width
	}
	return out
}
