package rosmsg

import (
	"reflect"
	"strconv"
	"sync"
)

// Struct binding maps Go structs onto messages by `rosmsg:"name"` field tags.
// Untagged and unexported struct fields are ignored. A schema field with no
// tagged struct counterpart keeps its default when converting from a struct
// and is skipped when converting to one.
//
// Message fields bind to a struct or a pointer to a struct; arrays bind to
// slices or Go arrays of the element binding. Scalars bind to any Go type of
// the same reflect.Kind as the field's Go type, so named types such as
// `type State string` are accepted.

const tagName = "rosmsg"

var fieldCache sync.Map // reflect.Type -> map[string]int

func taggedFields(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		fields[tag] = i
	}
	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.(map[string]int)
}

// FromStruct builds a message of schema s from the tagged struct v, which may
// be a struct or a pointer to one.
func FromStruct(s *Schema, v any) (*Message, error) {
	var m *Message
	err := safeCall(func() error {
		rv, err := structValue(s, v)
		if err != nil {
			return err
		}
		m, err = fromStruct(s, rv, s.name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ToStruct copies the message into the tagged struct v, which must be a
// non-nil pointer.
func (m *Message) ToStruct(v any) error {
	return safeCall(func() error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return errorf(ErrorCodeTypeMismatch, "%s: ToStruct needs a non-nil pointer, got %T", m.schema.name, v)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return errorf(ErrorCodeTypeMismatch, "%s: ToStruct needs a pointer to a struct, got %T", m.schema.name, v)
		}
		return toStruct(m, rv, m.schema.name)
	})
}

// MarshalStruct encodes the tagged struct v as a message of schema s.
func MarshalStruct(s *Schema, v any) ([]byte, error) {
	m, err := FromStruct(s, v)
	if err != nil {
		return nil, err
	}
	return Marshal(m)
}

// UnmarshalStruct decodes buf as a message of schema s into the tagged
// struct pointed to by v.
func UnmarshalStruct(s *Schema, buf []byte, v any) error {
	m, err := Decode(s, buf)
	if err != nil {
		return err
	}
	return m.ToStruct(v)
}

func structValue(s *Schema, v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv, errorf(ErrorCodeTypeMismatch, "%s: nil %T", s.name, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return rv, errorf(ErrorCodeTypeMismatch, "%s: want a struct, got %T", s.name, v)
	}
	return rv, nil
}

func fromStruct(s *Schema, rv reflect.Value, path string) (*Message, error) {
	m := New(s)
	fields := taggedFields(rv.Type())
	for i, f := range s.fields {
		idx, ok := fields[f.Name]
		if !ok {
			continue
		}
		v, err := bindIn(f.Type, rv.Field(idx), path+"."+f.Name)
		if err != nil {
			return nil, err
		}
		m.values[i] = v
	}
	return m, nil
}

func bindIn(t Type, rv reflect.Value, path string) (any, error) {
	if !t.IsArray() {
		return bindInScalar(t, rv, path)
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errorf(ErrorCodeTypeMismatch, "%s: %s wants a slice or array, got %s", path, t, rv.Type())
	}
	n := rv.Len()
	if t.Array == FixedArray && n != t.Len {
		return nil, errorf(ErrorCodeTypeMismatch, "%s: %s wants %d elements, got %d", path, t, t.Len, n)
	}
	elem := t.Elem()
	if elem.Kind == KindMessage {
		out := make([]*Message, n)
		for i := range out {
			v, err := bindInScalar(elem, rv.Index(i), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = v.(*Message)
		}
		return out, nil
	}
	want := GoType(t)
	if rv.Type() == want {
		out := reflect.MakeSlice(want, n, n)
		reflect.Copy(out, rv)
		return out.Interface(), nil
	}
	out := reflect.MakeSlice(want, n, n)
	for i := 0; i < n; i++ {
		v, err := bindInScalar(elem, rv.Index(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return out.Interface(), nil
}

func bindInScalar(t Type, rv reflect.Value, path string) (any, error) {
	if t.Kind == KindMessage {
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return New(t.Msg), nil
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil, errorf(ErrorCodeTypeMismatch, "%s: %s wants a struct, got %s", path, t.Name, rv.Type())
		}
		return fromStruct(t.Msg, rv, path)
	}
	want := scalarGoTypes[t.Kind]
	if !bindable(want, rv.Type()) {
		return nil, errorf(ErrorCodeTypeMismatch, "%s: %s wants %s, got %s", path, t.Name, want, rv.Type())
	}
	return rv.Convert(want).Interface(), nil
}

// bindable reports whether a Go value of type got can stand for want.
// Time and Duration must match exactly; other scalars only by kind.
func bindable(want, got reflect.Type) bool {
	if want.Kind() == reflect.Struct {
		return got == want
	}
	return got.Kind() == want.Kind()
}

func toStruct(m *Message, rv reflect.Value, path string) error {
	fields := taggedFields(rv.Type())
	for i, f := range m.schema.fields {
		idx, ok := fields[f.Name]
		if !ok {
			continue
		}
		if err := bindOut(f.Type, m.values[i], rv.Field(idx), path+"."+f.Name); err != nil {
			return err
		}
	}
	return nil
}

func bindOut(t Type, v any, dst reflect.Value, path string) error {
	if !t.IsArray() {
		return bindOutScalar(t, v, dst, path)
	}
	src := reflect.ValueOf(v)
	n := src.Len()
	switch dst.Kind() {
	case reflect.Slice:
		if n == 0 {
			// empty sequences come back nil
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		dst.Set(reflect.MakeSlice(dst.Type(), n, n))
	case reflect.Array:
		if dst.Len() != n {
			return errorf(ErrorCodeTypeMismatch, "%s: %s has %d elements, Go array holds %d", path, t, n, dst.Len())
		}
	default:
		return errorf(ErrorCodeTypeMismatch, "%s: %s wants a slice or array, got %s", path, t, dst.Type())
	}
	elem := t.Elem()
	for i := 0; i < n; i++ {
		if err := bindOutScalar(elem, src.Index(i).Interface(), dst.Index(i), path+"["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
	return nil
}

func bindOutScalar(t Type, v any, dst reflect.Value, path string) error {
	if t.Kind == KindMessage {
		if dst.Kind() == reflect.Pointer {
			if dst.IsNil() {
				dst.Set(reflect.New(dst.Type().Elem()))
			}
			dst = dst.Elem()
		}
		if dst.Kind() != reflect.Struct {
			return errorf(ErrorCodeTypeMismatch, "%s: %s wants a struct, got %s", path, t.Name, dst.Type())
		}
		return toStruct(v.(*Message), dst, path)
	}
	want := scalarGoTypes[t.Kind]
	if !bindable(want, dst.Type()) {
		return errorf(ErrorCodeTypeMismatch, "%s: %s wants %s, got %s", path, t.Name, want, dst.Type())
	}
	dst.Set(reflect.ValueOf(v).Convert(dst.Type()))
	return nil
}
