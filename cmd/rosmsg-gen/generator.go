package main

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/zphilip/handDetect/rosmsg"
)

const rosmsgImport = "github.com/zphilip/handDetect/rosmsg"

// Options controls the import paths written into generated code.
type Options struct {
	// Prefix is the import path under which each ROS package gets a Go package
	Prefix string
	// Registry is the import path of the package providing MustLookup
	Registry string
}

type CodeBuilder struct {
	buf        bytes.Buffer
	indent     int
	currentPkg string // current Go package being generated
}

func (b *CodeBuilder) P(format string, args ...interface{}) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("\t")
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteString("\n")
}

func (b *CodeBuilder) In()  { b.indent++ }
func (b *CodeBuilder) Out() { b.indent-- }

func (b *CodeBuilder) Bytes() ([]byte, error) {
	return format.Source(b.buf.Bytes())
}

// GenerateGoMessage renders the Go source of the typed struct for s.
func GenerateGoMessage(s *rosmsg.Schema, opts Options) ([]byte, error) {
	currentPkg := sanitizePackageName(s.Package())
	g := &CodeBuilder{currentPkg: currentPkg}

	g.P("// Code generated by rosmsg-gen. DO NOT EDIT.")
	g.P("")
	g.P("package %s", currentPkg)
	g.P("")
	g.P("import (")
	g.In()
	for _, imp := range messageImports(s, opts) {
		g.P("%q", imp)
	}
	g.Out()
	g.P(")")
	g.P("")

	generateConstants(g, s)
	generateStruct(g, s)
	generateMethods(g, s, path.Base(opts.Registry))

	return g.Bytes()
}

// messageImports lists the registry, rosmsg and every other generated
// package a struct refers to, sorted.
func messageImports(s *rosmsg.Schema, opts Options) []string {
	set := map[string]bool{rosmsgImport: true, opts.Registry: true}
	current := sanitizePackageName(s.Package())
	for _, f := range s.Fields() {
		if f.Type.Kind != rosmsg.KindMessage {
			continue
		}
		pkg := sanitizePackageName(f.Type.Msg.Package())
		if pkg != current {
			set[path.Join(opts.Prefix, pkg)] = true
		}
	}
	imports := make([]string, 0, len(set))
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

func generateConstants(g *CodeBuilder, s *rosmsg.Schema) {
	name := s.ShortName()
	g.P("const (")
	g.In()
	g.P("%s_Type = %q", name, s.Name())
	g.P("%s_MD5Sum = %q", name, s.MD5Sum())
	g.Out()
	g.P(")")
	g.P("")

	constants := s.Constants()
	if len(constants) > 0 {
		g.P("// Message-specific constants")
		g.P("const (")
		g.In()
		for _, c := range constants {
			g.P("%s_%s %s = %s", name, c.Name, goScalarType(c.Type, ""), constantLiteral(c))
		}
		g.Out()
		g.P(")")
		g.P("")
	}
}

func constantLiteral(c rosmsg.Constant) string {
	switch v := c.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		return fmt.Sprintf("%t", v)
	}
	return c.Text
}

func generateStruct(g *CodeBuilder, s *rosmsg.Schema) {
	g.P("// %s is the %s message.", s.ShortName(), s.Name())
	g.P("type %s struct {", s.ShortName())
	g.In()
	for _, f := range s.Fields() {
		g.P("%s %s `rosmsg:%q`", goFieldName(f.Name), goType(f.Type, g.currentPkg), f.Name)
	}
	g.Out()
	g.P("}")
	g.P("")
}

func generateMethods(g *CodeBuilder, s *rosmsg.Schema, registry string) {
	name := s.ShortName()

	g.P("var _ rosmsg.Typed = (*%s)(nil)", name)
	g.P("")

	g.P("// Schema returns the %s schema.", s.Name())
	g.P("func (m *%s) Schema() *rosmsg.Schema {", name)
	g.In()
	g.P("return %s.MustLookup(%s_Type)", registry, name)
	g.Out()
	g.P("}")
	g.P("")

	g.P("// MarshalROS encodes the message in ROS wire format.")
	g.P("func (m *%s) MarshalROS() ([]byte, error) {", name)
	g.In()
	g.P("return rosmsg.MarshalStruct(m.Schema(), m)")
	g.Out()
	g.P("}")
	g.P("")

	g.P("// UnmarshalROS decodes ROS wire data into the message.")
	g.P("func (m *%s) UnmarshalROS(data []byte) error {", name)
	g.In()
	g.P("return rosmsg.UnmarshalStruct(m.Schema(), data, m)")
	g.Out()
	g.P("}")
}

func goType(t rosmsg.Type, currentPkg string) string {
	base := goScalarType(t, currentPkg)
	switch t.Array {
	case rosmsg.FixedArray:
		return fmt.Sprintf("[%d]%s", t.Len, base)
	case rosmsg.VarArray:
		return "[]" + base
	}
	return base
}

func goScalarType(t rosmsg.Type, currentPkg string) string {
	switch t.Kind {
	case rosmsg.KindTime:
		return "rosmsg.Time"
	case rosmsg.KindDuration:
		return "rosmsg.Duration"
	case rosmsg.KindMessage:
		pkg := sanitizePackageName(t.Msg.Package())
		if pkg == currentPkg {
			return t.Msg.ShortName()
		}
		return pkg + "." + t.Msg.ShortName()
	}
	// byte and char map to their kinds, not their spelling
	return t.Kind.String()
}

// initialisms are rendered fully upper-case in Go field names.
var initialisms = map[string]bool{
	"id": true, "ip": true, "rgb": true, "url": true, "uuid": true, "xml": true, "json": true,
}

// reserved clash with the methods generated on every struct.
var reserved = map[string]bool{"Schema": true, "MarshalROS": true, "UnmarshalROS": true}

// goFieldName turns a snake_case field name into an exported Go identifier:
// frame_id -> FrameID, is_bigendian -> IsBigendian.
func goFieldName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if initialisms[strings.ToLower(part)] {
			b.WriteString(strings.ToUpper(part))
			continue
		}
		b.WriteString(capitalize(part))
	}
	out := b.String()
	if reserved[out] {
		out += "_"
	}
	return out
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func sanitizePackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
