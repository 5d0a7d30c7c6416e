package rosmsg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const describeIndent = "  "

// Describe renders m for diagnostics, one "name: value" line per field.
// Nested messages print their name alone and their fields one level deeper;
// arrays print "name[]" followed by one "name[i]: value" line per element.
// The output is not a wire format.
func Describe(m *Message) string {
	var b strings.Builder
	describe(&b, m, "")
	return b.String()
}

func describe(b *strings.Builder, m *Message, indent string) {
	for i, f := range m.schema.fields {
		v := m.values[i]
		if !f.Type.IsArray() {
			if f.Type.Kind == KindMessage {
				b.WriteString(indent + f.Name + ": \n")
				describe(b, v.(*Message), indent+describeIndent)
				continue
			}
			b.WriteString(indent + f.Name + ": " + formatScalar(v) + "\n")
			continue
		}
		b.WriteString(indent + f.Name + "[]\n")
		elemIndent := indent + describeIndent
		if f.Type.Kind == KindMessage {
			for j, e := range v.([]*Message) {
				b.WriteString(fmt.Sprintf("%s%s[%d]: \n", elemIndent, f.Name, j))
				describe(b, e, elemIndent+describeIndent)
			}
			continue
		}
		rv := reflect.ValueOf(v)
		for j := 0; j < rv.Len(); j++ {
			b.WriteString(fmt.Sprintf("%s%s[%d]: %s\n", elemIndent, f.Name, j, formatScalar(rv.Index(j).Interface())))
		}
	}
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
