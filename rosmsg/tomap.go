package rosmsg

import "reflect"

// ToMap converts m into plain Go values keyed by field name, for handing to
// generic encoders. Signed integers widen to int64, unsigned ones to uint64
// and floats to float64. Time and duration become {"secs", "nsecs"} maps,
// arrays become []any and nested messages become maps. uint8 arrays stay
// []byte so binary encoders keep them compact.
func ToMap(m *Message) map[string]any {
	out := make(map[string]any, len(m.values))
	for i, f := range m.schema.fields {
		out[f.Name] = mapValue(f.Type, m.values[i])
	}
	return out
}

func mapValue(t Type, v any) any {
	if !t.IsArray() {
		return mapScalar(v)
	}
	if b, ok := v.([]uint8); ok {
		return append([]byte(nil), b...)
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = mapScalar(rv.Index(i).Interface())
	}
	return out
}

func mapScalar(v any) any {
	switch x := v.(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case float32:
		return float64(x)
	case Time:
		return map[string]any{"secs": uint64(x.Sec), "nsecs": uint64(x.Nsec)}
	case Duration:
		return map[string]any{"secs": int64(x.Sec), "nsecs": int64(x.Nsec)}
	case *Message:
		return ToMap(x)
	}
	return v
}
