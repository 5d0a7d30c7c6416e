package rosmsg

import (
	"strconv"
	"strings"
	"unicode"
)

// Definition is a parsed .msg text whose message-typed fields are not yet
// resolved to schemas.
type Definition struct {
	Name      string
	Text      string
	Fields    []FieldSpec
	Constants []Constant
}

// FieldSpec is a field as written: the base type name plus array shape.
type FieldSpec struct {
	Name  string
	Type  string
	Array ArrayKind
	Len   int
}

// ParseDefinition parses the text of a .msg file for the type name.
//
// Each non-blank line after comment removal is either "type name" or
// "type NAME=value". String constants take the rest of the original line,
// comment characters included, as their value.
func ParseDefinition(name, text string) (*Definition, error) {
	if !typeNameRe.MatchString(name) {
		return nil, errorf(ErrorCodeInvalidDefinition, "%s: type name must be package/Name", name)
	}
	def := &Definition{Name: name, Text: text}
	for i, orig := range strings.Split(text, "\n") {
		clean := stripComment(orig)
		if clean == "" {
			continue
		}
		var err *CodecError
		if strings.Contains(clean, "=") {
			err = def.parseConstant(orig, clean)
		} else {
			err = def.parseField(clean)
		}
		if err != nil {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s:%d: %s", name, i+1, err.Message())
		}
	}
	return def, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func (def *Definition) parseField(clean string) *CodecError {
	parts := strings.Fields(clean)
	if len(parts) != 2 {
		return codecErr(ErrorCodeInvalidDefinition, "expected \"type name\", got %q", clean)
	}
	base, array, n, err := parseTypeSpec(parts[0])
	if err != nil {
		return err
	}
	if !identRe.MatchString(parts[1]) {
		return codecErr(ErrorCodeInvalidDefinition, "invalid field name %q", parts[1])
	}
	def.Fields = append(def.Fields, FieldSpec{Name: parts[1], Type: base, Array: array, Len: n})
	return nil
}

func (def *Definition) parseConstant(orig, clean string) *CodecError {
	typ, rest := clean, ""
	if i := strings.IndexFunc(clean, unicode.IsSpace); i >= 0 {
		typ, rest = clean[:i], clean[i:]
	}
	kind, ok := builtinKinds[typ]
	if !ok || kind == KindTime || kind == KindDuration {
		return codecErr(ErrorCodeInvalidDefinition, "constant type %q is not a primitive", typ)
	}

	var name, text string
	if kind == KindString {
		line := strings.TrimSpace(orig)
		eq := strings.IndexByte(line, '=')
		name = strings.TrimSpace(line[len(typ):eq])
		text = strings.TrimSpace(line[eq+1:])
	} else {
		name, text, _ = strings.Cut(rest, "=")
		name, text = strings.TrimSpace(name), strings.TrimSpace(text)
	}
	if !identRe.MatchString(name) {
		return codecErr(ErrorCodeInvalidDefinition, "invalid constant name %q", name)
	}
	value, err := parseConstantValue(kind, text)
	if err != nil {
		return codecErr(ErrorCodeInvalidDefinition, "constant %s: %v", name, err)
	}
	def.Constants = append(def.Constants, Constant{
		Name:  name,
		Type:  Type{Kind: kind, Name: typ},
		Value: value,
		Text:  text,
	})
	return nil
}

// parseTypeSpec splits "float64[3]" into its base type and array shape.
func parseTypeSpec(spec string) (string, ArrayKind, int, *CodecError) {
	open := strings.IndexByte(spec, '[')
	if open < 0 {
		return spec, NotArray, 0, nil
	}
	if !strings.HasSuffix(spec, "]") || open == 0 {
		return "", NotArray, 0, codecErr(ErrorCodeInvalidDefinition, "malformed array type %q", spec)
	}
	base, inner := spec[:open], spec[open+1:len(spec)-1]
	if inner == "" {
		return base, VarArray, 0, nil
	}
	if strings.HasPrefix(inner, "<=") {
		return "", NotArray, 0, codecErr(ErrorCodeInvalidDefinition, "bounded sequence %q is not supported", spec)
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return "", NotArray, 0, codecErr(ErrorCodeInvalidDefinition, "invalid array length in %q", spec)
	}
	return base, FixedArray, n, nil
}

func parseConstantValue(k Kind, text string) (any, error) {
	switch k {
	case KindBool:
		switch text {
		case "True", "true", "1":
			return true, nil
		case "False", "false", "0":
			return false, nil
		}
		return nil, strconv.ErrSyntax
	case KindString:
		return text, nil
	case KindFloat32:
		v, err := strconv.ParseFloat(text, 32)
		return float32(v), err
	case KindFloat64:
		return strconv.ParseFloat(text, 64)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		v, err := strconv.ParseInt(text, 10, k.Width()*8)
		if err != nil {
			return nil, err
		}
		return narrow(k, v), nil
	default:
		v, err := strconv.ParseUint(text, 10, k.Width()*8)
		if err != nil {
			return nil, err
		}
		return narrow(k, v), nil
	}
}

func narrow[T int64 | uint64](k Kind, v T) any {
	switch k {
	case KindInt8:
		return int8(v)
	case KindInt16:
		return int16(v)
	case KindInt32:
		return int32(v)
	case KindInt64:
		return int64(v)
	case KindUint8:
		return uint8(v)
	case KindUint16:
		return uint16(v)
	case KindUint32:
		return uint32(v)
	}
	return uint64(v)
}
