package rosmsg

import (
	"math"
	"reflect"
)

// scalarGoTypes is the Go representation of each kind; arrays use a slice of it.
var scalarGoTypes = [...]reflect.Type{
	KindBool:     reflect.TypeOf(false),
	KindInt8:     reflect.TypeOf(int8(0)),
	KindUint8:    reflect.TypeOf(uint8(0)),
	KindInt16:    reflect.TypeOf(int16(0)),
	KindUint16:   reflect.TypeOf(uint16(0)),
	KindInt32:    reflect.TypeOf(int32(0)),
	KindUint32:   reflect.TypeOf(uint32(0)),
	KindInt64:    reflect.TypeOf(int64(0)),
	KindUint64:   reflect.TypeOf(uint64(0)),
	KindFloat32:  reflect.TypeOf(float32(0)),
	KindFloat64:  reflect.TypeOf(float64(0)),
	KindString:   reflect.TypeOf(""),
	KindTime:     reflect.TypeOf(Time{}),
	KindDuration: reflect.TypeOf(Duration{}),
	KindMessage:  reflect.TypeOf((*Message)(nil)),
}

// GoType returns the Go type a Message stores for a field of type t.
func GoType(t Type) reflect.Type {
	g := scalarGoTypes[t.Kind]
	if t.IsArray() {
		return reflect.SliceOf(g)
	}
	return g
}

// Message is an instance of a Schema: one value per field, in declaration
// order. Nested messages are owned by their parent; Set and Clone copy them.
//
// A Message is not safe for concurrent mutation. Encoding while another
// goroutine calls Set gives unspecified output.
type Message struct {
	schema *Schema
	values []any
}

// New returns an instance of s with every field at its default: zero
// numbers, empty strings, false, empty sequences, fixed arrays of defaults
// and nested messages with defaults.
func New(s *Schema) *Message {
	m := &Message{schema: s, values: make([]any, len(s.fields))}
	for i, f := range s.fields {
		m.values[i] = zeroValue(f.Type)
	}
	return m
}

func zeroValue(t Type) any {
	switch t.Array {
	case FixedArray:
		return makeArray(t, t.Len)
	case VarArray:
		return makeArray(t, 0)
	}
	if t.Kind == KindMessage {
		return New(t.Msg)
	}
	return reflect.Zero(scalarGoTypes[t.Kind]).Interface()
}

func makeArray(t Type, n int) any {
	if t.Kind == KindMessage {
		ms := make([]*Message, n)
		for i := range ms {
			ms[i] = New(t.Msg)
		}
		return ms
	}
	return reflect.MakeSlice(GoType(t), n, n).Interface()
}

// Schema returns the schema the message conforms to.
func (m *Message) Schema() *Schema { return m.schema }

// Get returns the value of a field. Slices and nested messages are returned
// without copying, so element writes are visible to the message.
func (m *Message) Get(name string) (any, bool) {
	i, ok := m.schema.index[name]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Set assigns a field. The value must have the exact Go type listed for the
// field's kind; fixed arrays must have the declared length and nested
// messages the same schema. Slices and messages are copied.
func (m *Message) Set(name string, v any) error {
	i, ok := m.schema.index[name]
	if !ok {
		return errorf(ErrorCodeTypeMismatch, "%s has no field %q", m.schema.name, name)
	}
	cv, err := coerce(m.schema.fields[i].Type, v)
	if err != nil {
		return errorf(ErrorCodeTypeMismatch, "%s.%s: %s", m.schema.name, name, err.Message())
	}
	m.values[i] = cv
	return nil
}

// Nested returns the nested message stored in a scalar message field, or nil.
func (m *Message) Nested(name string) *Message {
	v, ok := m.Get(name)
	if !ok {
		return nil
	}
	nested, _ := v.(*Message)
	return nested
}

// Value returns a field converted to T.
func Value[T any](m *Message, name string) (T, error) {
	var zero T
	v, ok := m.Get(name)
	if !ok {
		return zero, errorf(ErrorCodeTypeMismatch, "%s has no field %q", m.schema.name, name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, errorf(ErrorCodeTypeMismatch, "%s.%s holds %T, not %T", m.schema.name, name, v, zero)
	}
	return t, nil
}

func coerce(t Type, v any) (any, *CodecError) {
	want := GoType(t)
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != want {
		return nil, codecErr(ErrorCodeTypeMismatch, "want %s, got %T", want, v)
	}
	if !t.IsArray() {
		if t.Kind == KindMessage {
			nested := v.(*Message)
			if nested == nil || !nested.schema.Matches(t.Msg) {
				return nil, codecErr(ErrorCodeTypeMismatch, "want %s message", t.Msg.name)
			}
			return nested.Clone(), nil
		}
		return v, nil
	}
	if t.Array == FixedArray && rv.Len() != t.Len {
		return nil, codecErr(ErrorCodeTypeMismatch, "fixed array wants %d elements, got %d", t.Len, rv.Len())
	}
	out := reflect.MakeSlice(want, rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	if t.Kind == KindMessage {
		ms := out.Interface().([]*Message)
		for i, e := range ms {
			if e == nil || !e.schema.Matches(t.Msg) {
				return nil, codecErr(ErrorCodeTypeMismatch, "element %d: want %s message", i, t.Msg.name)
			}
			ms[i] = e.Clone()
		}
	}
	return out.Interface(), nil
}

// Clone returns a deep copy.
func (m *Message) Clone() *Message {
	c := &Message{schema: m.schema, values: make([]any, len(m.values))}
	for i, f := range m.schema.fields {
		c.values[i] = cloneValue(f.Type, m.values[i])
	}
	return c
}

func cloneValue(t Type, v any) any {
	if !t.IsArray() {
		if t.Kind == KindMessage {
			return v.(*Message).Clone()
		}
		return v
	}
	if t.Kind == KindMessage {
		src := v.([]*Message)
		dst := make([]*Message, len(src))
		for i, e := range src {
			dst[i] = e.Clone()
		}
		return dst
	}
	rv := reflect.ValueOf(v)
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}

// Equal reports whether o has the same schema and the same field values.
// Floating-point fields compare by bit pattern, so NaN equals an identical NaN.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.schema.Matches(o.schema) {
		return false
	}
	for i, f := range m.schema.fields {
		if !valueEqual(f.Type, m.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

func valueEqual(t Type, a, b any) bool {
	switch t.Kind {
	case KindMessage:
		if !t.IsArray() {
			return a.(*Message).Equal(b.(*Message))
		}
		as, bs := a.([]*Message), b.([]*Message)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !as[i].Equal(bs[i]) {
				return false
			}
		}
		return true
	case KindFloat32:
		if !t.IsArray() {
			return math.Float32bits(a.(float32)) == math.Float32bits(b.(float32))
		}
		as, bs := a.([]float32), b.([]float32)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if math.Float32bits(as[i]) != math.Float32bits(bs[i]) {
				return false
			}
		}
		return true
	case KindFloat64:
		if !t.IsArray() {
			return math.Float64bits(a.(float64)) == math.Float64bits(b.(float64))
		}
		as, bs := a.([]float64), b.([]float64)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if math.Float64bits(as[i]) != math.Float64bits(bs[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// String renders the message with Describe.
func (m *Message) String() string {
	return Describe(m)
}
