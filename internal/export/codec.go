// Package export renders decoded ROS messages in common interchange formats
// for inspection. None of the outputs is wire compatible with ROS.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zphilip/handDetect/rosmsg"
)

// Codec renders a message in one interchange format.
// Implementations should be deterministic: equal messages give equal bytes.
type Codec interface {
	ContentType() string
	Marshal(m *rosmsg.Message) ([]byte, error)
}

// Registry maps short format names and content types to codecs.
type Registry struct {
	byType  map[string]Codec
	aliases map[string]string
}

// NewRegistry constructs a registry preloaded with the built-in codecs:
// text, json, cbor, msgpack and proto.
func NewRegistry() (*Registry, error) {
	r := &Registry{byType: make(map[string]Codec), aliases: make(map[string]string)}
	r.Register("text", Text())
	r.Register("json", JSON())
	r.Register("msgpack", MsgPack())
	r.Register("proto", Proto())
	c, err := CBOR()
	if err != nil {
		return nil, err
	}
	r.Register("cbor", c)
	return r, nil
}

// Register adds a codec under its content type and a short alias.
func (r *Registry) Register(alias string, c Codec) {
	r.byType[c.ContentType()] = c
	if alias != "" {
		r.aliases[strings.ToLower(alias)] = c.ContentType()
	}
}

// Get returns a codec by alias or content type, or nil.
func (r *Registry) Get(name string) Codec {
	name = strings.ToLower(strings.TrimSpace(name))
	if ct, ok := r.aliases[name]; ok {
		return r.byType[ct]
	}
	return r.byType[name]
}

// Lookup is like Get but fails for unknown names.
func (r *Registry) Lookup(name string) (Codec, error) {
	if c := r.Get(name); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("unknown export format %q (have %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns the registered aliases in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.aliases))
	for alias := range r.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
