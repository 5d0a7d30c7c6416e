package rosmsg

import (
	"encoding/binary"
	"math"
)

// ByteSize returns the exact number of bytes Encode writes for m.
func ByteSize(m *Message) int {
	if size, ok := m.schema.FixedSize(); ok {
		return size
	}
	n := 0
	for i, f := range m.schema.fields {
		n += valueSize(f.Type, m.values[i])
	}
	return n
}

func valueSize(t Type, v any) int {
	if !t.IsArray() {
		switch t.Kind {
		case KindString:
			return 4 + len(v.(string))
		case KindMessage:
			return ByteSize(v.(*Message))
		}
		return t.Kind.Width()
	}
	n := 0
	if t.Array == VarArray {
		n = 4
	}
	switch t.Kind {
	case KindString:
		for _, s := range v.([]string) {
			n += 4 + len(s)
		}
	case KindMessage:
		ms := v.([]*Message)
		if size, ok := t.Msg.FixedSize(); ok {
			return n + size*len(ms)
		}
		for _, e := range ms {
			n += ByteSize(e)
		}
	default:
		n += t.Kind.Width() * arrayLen(v)
	}
	return n
}

func arrayLen(v any) int {
	switch s := v.(type) {
	case []bool:
		return len(s)
	case []int8:
		return len(s)
	case []uint8:
		return len(s)
	case []int16:
		return len(s)
	case []uint16:
		return len(s)
	case []int32:
		return len(s)
	case []uint32:
		return len(s)
	case []int64:
		return len(s)
	case []uint64:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case []Time:
		return len(s)
	case []Duration:
		return len(s)
	case []string:
		return len(s)
	case []*Message:
		return len(s)
	}
	return 0
}

// Encode writes m into buf and returns the number of bytes written.
// It fails with BufferTooSmall, before writing anything, when buf is shorter
// than ByteSize(m).
func Encode(m *Message, buf []byte) (int, error) {
	size := ByteSize(m)
	if len(buf) < size {
		return 0, errorf(ErrorCodeBufferTooSmall, "%s: need %d bytes, have %d", m.schema.name, size, len(buf))
	}
	e := encoder{buf: buf[:size]}
	e.message(m)
	return e.off, nil
}

// Marshal encodes m into a newly allocated buffer of exactly ByteSize(m) bytes.
func Marshal(m *Message) ([]byte, error) {
	buf := make([]byte, ByteSize(m))
	n, err := Encode(m, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// encoder writes into a buffer presized by ByteSize; bounds are not rechecked.
type encoder struct {
	buf []byte
	off int
}

func (e *encoder) message(m *Message) {
	for i, f := range m.schema.fields {
		e.value(f.Type, m.values[i])
	}
}

func (e *encoder) value(t Type, v any) {
	if !t.IsArray() {
		e.scalar(v)
		return
	}
	if t.Array == VarArray {
		e.u32(uint32(arrayLen(v)))
	}
	switch s := v.(type) {
	case []bool:
		for _, x := range s {
			e.putBool(x)
		}
	case []int8:
		for _, x := range s {
			e.u8(uint8(x))
		}
	case []uint8:
		e.off += copy(e.buf[e.off:], s)
	case []int16:
		for _, x := range s {
			e.u16(uint16(x))
		}
	case []uint16:
		for _, x := range s {
			e.u16(x)
		}
	case []int32:
		for _, x := range s {
			e.u32(uint32(x))
		}
	case []uint32:
		for _, x := range s {
			e.u32(x)
		}
	case []int64:
		for _, x := range s {
			e.u64(uint64(x))
		}
	case []uint64:
		for _, x := range s {
			e.u64(x)
		}
	case []float32:
		for _, x := range s {
			e.u32(math.Float32bits(x))
		}
	case []float64:
		for _, x := range s {
			e.u64(math.Float64bits(x))
		}
	case []string:
		for _, x := range s {
			e.putString(x)
		}
	case []Time:
		for _, x := range s {
			e.u32(x.Sec)
			e.u32(x.Nsec)
		}
	case []Duration:
		for _, x := range s {
			e.u32(uint32(x.Sec))
			e.u32(uint32(x.Nsec))
		}
	case []*Message:
		for _, x := range s {
			e.message(x)
		}
	}
}

func (e *encoder) scalar(v any) {
	switch x := v.(type) {
	case bool:
		e.putBool(x)
	case int8:
		e.u8(uint8(x))
	case uint8:
		e.u8(x)
	case int16:
		e.u16(uint16(x))
	case uint16:
		e.u16(x)
	case int32:
		e.u32(uint32(x))
	case uint32:
		e.u32(x)
	case int64:
		e.u64(uint64(x))
	case uint64:
		e.u64(x)
	case float32:
		e.u32(math.Float32bits(x))
	case float64:
		e.u64(math.Float64bits(x))
	case string:
		e.putString(x)
	case Time:
		e.u32(x.Sec)
		e.u32(x.Nsec)
	case Duration:
		e.u32(uint32(x.Sec))
		e.u32(uint32(x.Nsec))
	case *Message:
		e.message(x)
	}
}

func (e *encoder) putBool(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) u8(v uint8) {
	e.buf[e.off] = v
	e.off++
}

func (e *encoder) u16(v uint16) {
	binary.LittleEndian.PutUint16(e.buf[e.off:], v)
	e.off += 2
}

func (e *encoder) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.buf[e.off:], v)
	e.off += 4
}

func (e *encoder) u64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[e.off:], v)
	e.off += 8
}

func (e *encoder) putString(s string) {
	e.u32(uint32(len(s)))
	e.off += copy(e.buf[e.off:], s)
}
