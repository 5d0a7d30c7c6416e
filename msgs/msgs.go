// Package msgs bundles the message definitions used by the hand tracker:
// std_msgs/Header, the geometry_msgs and sensor_msgs types it depends on,
// and the body_msgs hand and skeleton types.
//
// Typed Go structs for every bundled type live in the per-package
// subdirectories and are produced by cmd/rosmsg-gen.
package msgs

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/zphilip/handDetect/rosmsg"
)

//go:generate go run ../cmd/rosmsg-gen -bundled=false -input definitions -output . -prefix github.com/zphilip/handDetect/msgs

const root = "definitions"

//go:embed definitions
var definitions embed.FS

var (
	once     sync.Once
	registry *rosmsg.Registry
	loadErr  error
)

// FS returns the bundled definitions laid out as <package>/msg/<Name>.msg.
func FS() fs.FS {
	sub, err := fs.Sub(definitions, root)
	if err != nil {
		panic(err)
	}
	return sub
}

// Registry returns the process-wide registry of bundled definitions. It is
// loaded on first use.
func Registry() (*rosmsg.Registry, error) {
	once.Do(func() {
		r := rosmsg.NewRegistry()
		if err := r.AddFS(definitions, root); err != nil {
			loadErr = err
			return
		}
		registry = r
	})
	return registry, loadErr
}

// Lookup resolves a bundled type by its full name.
func Lookup(name string) (*rosmsg.Schema, error) {
	r, err := Registry()
	if err != nil {
		return nil, err
	}
	return r.Lookup(name)
}

// MustLookup is like Lookup but panics on error. Generated code uses it to
// bind structs to their schema.
func MustLookup(name string) *rosmsg.Schema {
	s, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}
