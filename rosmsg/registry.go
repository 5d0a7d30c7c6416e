package rosmsg

import (
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry holds message definitions by type name and resolves them into
// schemas on demand. Resolved schemas are cached; a Registry is safe for
// concurrent use.
type Registry struct {
	mu      sync.Mutex
	defs    map[string]*Definition
	schemas map[string]*Schema
	log     *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for load and resolve events.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		defs:    make(map[string]*Definition),
		schemas: make(map[string]*Schema),
		log:     log(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add parses and registers the definition text of a type. Registering the
// same text twice is a no-op; registering different text under a known name
// fails.
func (r *Registry) Add(name, text string) error {
	def, err := ParseDefinition(name, text)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.defs[name]; ok {
		if prev.Text == text {
			return nil
		}
		return errorf(ErrorCodeInvalidDefinition, "%s: already registered with a different definition", name)
	}
	r.defs[name] = def
	r.log.Debug("registered message definition", zap.String("type", name), zap.Int("fields", len(def.Fields)))
	return nil
}

// AddFS registers every <package>/msg/<Name>.msg file found under root.
func (r *Registry) AddFS(fsys fs.FS, root string) error {
	count := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".msg" {
			return nil
		}
		dir := path.Dir(p)
		if path.Base(dir) != "msg" {
			return nil
		}
		name := path.Base(path.Dir(dir)) + "/" + strings.TrimSuffix(path.Base(p), ".msg")
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := r.Add(name, string(data)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	r.log.Debug("loaded message definitions", zap.String("root", root), zap.Int("count", count))
	return nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the schema of a registered type, resolving nested types.
// Bare "Header" resolves to std_msgs/Header; other bare names resolve in the
// package of the referring type.
func (r *Registry) Lookup(name string) (*Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(name, nil)
}

// MustLookup is like Lookup but panics on error.
func (r *Registry) MustLookup(name string) *Schema {
	s, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

func (r *Registry) resolve(name string, stack []string) (*Schema, error) {
	if s, ok := r.schemas[name]; ok {
		return s, nil
	}
	if slices.Contains(stack, name) {
		return nil, errorf(ErrorCodeInvalidDefinition, "recursive message type: %s -> %s", strings.Join(stack, " -> "), name)
	}
	def, ok := r.defs[name]
	if !ok {
		if len(stack) > 0 {
			return nil, errorf(ErrorCodeUnknownType, "%s: referenced by %s", name, stack[len(stack)-1])
		}
		return nil, errorf(ErrorCodeUnknownType, "%s is not registered", name)
	}
	stack = append(stack, name)

	pkg, _, _ := strings.Cut(name, "/")
	fields := make([]Field, len(def.Fields))
	for i, spec := range def.Fields {
		t := Type{Array: spec.Array, Len: spec.Len}
		if kind, ok := builtinKinds[spec.Type]; ok {
			t.Kind, t.Name = kind, spec.Type
		} else {
			nested, err := r.resolve(qualify(pkg, spec.Type), stack)
			if err != nil {
				return nil, err
			}
			t.Kind, t.Name, t.Msg = KindMessage, nested.name, nested
		}
		fields[i] = Field{Name: spec.Name, Type: t}
	}

	s, err := newSchema(name, def.Text, fields, def.Constants)
	if err != nil {
		return nil, err
	}
	r.schemas[name] = s
	r.log.Debug("resolved message type",
		zap.String("type", name),
		zap.String("md5sum", s.MD5Sum()),
		zap.Bool("fixed_size", s.fixed))
	return s, nil
}

func qualify(pkg, typ string) string {
	if typ == "Header" {
		return HeaderType
	}
	if strings.Contains(typ, "/") {
		return typ
	}
	return pkg + "/" + typ
}
