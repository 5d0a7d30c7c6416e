package rosmsg

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// HeaderType is the well-known leading record of stamped messages.
const HeaderType = "std_msgs/Header"

const definitionSeparator = "================================================================================"

var (
	identRe    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	typeNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*/[a-zA-Z][a-zA-Z0-9_]*$`)
)

// Schema is the immutable description of one message type. Derived facts
// (size class, header detection, fingerprint) are computed once at construction.
// A Schema is safe for concurrent use.
type Schema struct {
	name      string
	text      string
	fields    []Field
	constants []Constant
	index     map[string]int

	deps       []*Schema
	fixed      bool
	size       int
	minSize    int
	header     bool
	canonical  string
	md5        [16]byte
	definition string
}

// NewSchema builds a schema from a field table. The definition text is
// synthesized from the constants and fields.
func NewSchema(name string, fields []Field, constants ...Constant) (*Schema, error) {
	fields = append([]Field(nil), fields...)
	constants = append([]Constant(nil), constants...)
	// errors resurface in newSchema; this only fills in spellings
	for i := range fields {
		_ = normalizeType(&fields[i].Type)
	}
	for i := range constants {
		_ = normalizeType(&constants[i].Type)
	}
	var b strings.Builder
	for _, c := range constants {
		b.WriteString(c.Type.String() + " " + c.Name + "=" + c.Text + "\n")
	}
	for _, f := range fields {
		b.WriteString(f.Type.String() + " " + f.Name + "\n")
	}
	return newSchema(name, b.String(), fields, constants)
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(name string, fields []Field, constants ...Constant) *Schema {
	s, err := NewSchema(name, fields, constants...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSchema(name, text string, fields []Field, constants []Constant) (*Schema, error) {
	if !typeNameRe.MatchString(name) {
		return nil, errorf(ErrorCodeInvalidDefinition, "%s: type name must be package/Name", name)
	}
	s := &Schema{
		name:      name,
		text:      text,
		fields:    append([]Field(nil), fields...),
		constants: append([]Constant(nil), constants...),
		index:     make(map[string]int, len(fields)),
	}
	for i := range s.fields {
		f := &s.fields[i]
		if !identRe.MatchString(f.Name) {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s: invalid field name %q", name, f.Name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s: duplicate field %q", name, f.Name)
		}
		if err := normalizeType(&f.Type); err != nil {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s.%s: %s", name, f.Name, err.Message())
		}
		s.index[f.Name] = i
	}
	for i := range s.constants {
		c := &s.constants[i]
		if !identRe.MatchString(c.Name) {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s: invalid constant name %q", name, c.Name)
		}
		if err := normalizeType(&c.Type); err != nil || c.Type.IsArray() || c.Type.Kind == KindMessage ||
			c.Type.Kind == KindTime || c.Type.Kind == KindDuration {
			return nil, errorf(ErrorCodeInvalidDefinition, "%s: constant %s has invalid type %s", name, c.Name, c.Type)
		}
	}

	s.fixed = true
	for _, f := range s.fields {
		s.fixed = s.fixed && isFixed(f.Type)
		s.minSize += minSize(f.Type)
	}
	if s.fixed {
		s.size = s.minSize
	}
	if len(s.fields) > 0 {
		t := s.fields[0].Type
		s.header = t.Kind == KindMessage && !t.IsArray() && t.Msg.name == HeaderType
	}
	s.deps = collectDeps(s)
	s.canonical = canonicalText(s)
	s.md5 = fingerprint(s.canonical)
	s.definition = fullDefinition(s)
	return s, nil
}

// normalizeType fills the spelling of a primitive type and checks consistency.
func normalizeType(t *Type) *CodecError {
	switch {
	case t.Kind == KindMessage:
		if t.Msg == nil {
			return codecErr(ErrorCodeInvalidDefinition, "message type %q has no schema", t.Name)
		}
		t.Name = t.Msg.name
	case t.Kind > KindInvalid && t.Kind < KindMessage:
		if t.Name == "" {
			t.Name = t.Kind.String()
		} else if k, ok := builtinKinds[t.Name]; !ok || k != t.Kind {
			return codecErr(ErrorCodeInvalidDefinition, "type name %q does not match kind %s", t.Name, t.Kind)
		}
	default:
		return codecErr(ErrorCodeInvalidDefinition, "invalid kind %s", t.Kind)
	}
	switch t.Array {
	case NotArray, VarArray:
		t.Len = 0
	case FixedArray:
		if t.Len < 0 {
			return codecErr(ErrorCodeInvalidDefinition, "negative array length %d", t.Len)
		}
	default:
		return codecErr(ErrorCodeInvalidDefinition, "invalid array kind %d", t.Array)
	}
	return nil
}

func isFixed(t Type) bool {
	if t.Array == VarArray || t.Kind == KindString {
		return false
	}
	if t.Kind == KindMessage {
		return t.Msg.fixed
	}
	return true
}

// minSize is the smallest encoding of a value of t: every string and
// sequence empty. Decode uses it to bound length prefixes.
func minSize(t Type) int {
	var elem int
	switch t.Kind {
	case KindString:
		elem = 4
	case KindMessage:
		elem = t.Msg.minSize
	default:
		elem = t.Kind.Width()
	}
	switch t.Array {
	case VarArray:
		return 4
	case FixedArray:
		return elem * t.Len
	}
	return elem
}

// collectDeps lists every nested schema once, depth-first in order of first use.
func collectDeps(s *Schema) []*Schema {
	var deps []*Schema
	seen := map[string]bool{s.name: true}
	var walk func(*Schema)
	walk = func(cur *Schema) {
		for _, f := range cur.fields {
			if f.Type.Kind != KindMessage || seen[f.Type.Msg.name] {
				continue
			}
			seen[f.Type.Msg.name] = true
			deps = append(deps, f.Type.Msg)
			walk(f.Type.Msg)
		}
	}
	walk(s)
	return deps
}

func fullDefinition(s *Schema) string {
	var b strings.Builder
	writeText(&b, s.text)
	for _, d := range s.deps {
		b.WriteString("\n" + definitionSeparator + "\n")
		b.WriteString("MSG: " + d.name + "\n")
		writeText(&b, d.text)
	}
	return b.String()
}

func writeText(b *strings.Builder, text string) {
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}
}

// Name returns the fully-qualified type name, e.g. "geometry_msgs/Pose2D".
func (s *Schema) Name() string { return s.name }

// Package returns the package part of the type name.
func (s *Schema) Package() string {
	pkg, _, _ := strings.Cut(s.name, "/")
	return pkg
}

// ShortName returns the type name without its package.
func (s *Schema) ShortName() string {
	_, short, _ := strings.Cut(s.name, "/")
	return short
}

// Text returns the definition text of this type alone.
func (s *Schema) Text() string { return s.text }

// Definition returns the full definition: this type's text followed by the
// text of every dependency, as exchanged in connection headers.
func (s *Schema) Definition() string { return s.definition }

// CanonicalText returns the normalized text the fingerprint is computed over.
func (s *Schema) CanonicalText() string { return s.canonical }

// Fields returns a copy of the field table in declaration order.
func (s *Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// NumField returns the number of fields.
func (s *Schema) NumField() int { return len(s.fields) }

// Field returns the field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Constants returns a copy of the declared constants.
func (s *Schema) Constants() []Constant { return append([]Constant(nil), s.constants...) }

// Constant returns the constant with the given name.
func (s *Schema) Constant(name string) (Constant, bool) {
	for _, c := range s.constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Dependencies returns every nested schema, depth-first in order of first use.
func (s *Schema) Dependencies() []*Schema { return append([]*Schema(nil), s.deps...) }

// IsFixedSize reports whether every instance encodes to the same length.
func (s *Schema) IsFixedSize() bool { return s.fixed }

// FixedSize returns the encoded length of fixed-size schemas.
func (s *Schema) FixedSize() (int, bool) { return s.size, s.fixed }

// HasHeader reports whether the first field is a std_msgs/Header.
func (s *Schema) HasHeader() bool { return s.header }

// Fingerprint returns the 128-bit MD5 digest of the canonical text.
func (s *Schema) Fingerprint() [16]byte { return s.md5 }

// MD5Sum returns the fingerprint as lowercase hex.
func (s *Schema) MD5Sum() string { return hex.EncodeToString(s.md5[:]) }

// Matches reports whether o describes the same wire type: same name and fingerprint.
func (s *Schema) Matches(o *Schema) bool {
	if s == o {
		return true
	}
	return s != nil && o != nil && s.name == o.name && s.md5 == o.md5
}

func (s *Schema) String() string { return s.name }
