package lookup

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"unsafe"

	"github.com/zoobzio/ferry/accessor"
)

// Class binds a host class to the Go type that stands in for it.
type Class struct {
	// Name is the host's name for the class.
	Name string

	// Aliases are further names the class answers to, e.g. obfuscated ones.
	Aliases []string

	// Type is the Go type values of this class have.
	Type reflect.Type

	// Statics points to a struct holding the class's static members.
	// Nil for classes without static members.
	Statics any
}

// class is a defined Class with its statics scanned.
type class struct {
	Class
	statics reflect.Value
	members []member
}

// Registry is a Lookup over defined host classes.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	version string
	byName  map[string]*class
	byType  map[reflect.Type]*class
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*class),
		byType: make(map[reflect.Type]*class),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry host bindings define into.
func Default() *Registry {
	return defaultRegistry
}

// Define adds c to the default registry.
func Define(c Class) error {
	return defaultRegistry.Define(c)
}

// SetHostVersion records the version of the host the bindings describe.
func (r *Registry) SetHostVersion(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version = v
}

// HostVersion returns the recorded host version, or "" when unknown.
func (r *Registry) HostVersion() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Define adds a class. Names and types must be unique within the registry.
func (r *Registry) Define(c Class) error {
	if c.Name == "" || c.Type == nil {
		return fmt.Errorf("%w: %q", ErrInvalidClass, c.Name)
	}

	cl := &class{Class: c}
	if c.Statics != nil {
		v := reflect.ValueOf(c.Statics)
		if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: %s has %T", ErrInvalidStatics, c.Name, c.Statics)
		}
		cl.statics = v.Elem()
		cl.members = members(v.Elem().Type())
	}

	names := append([]string{c.Name}, c.Aliases...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range names {
		if _, ok := r.byName[n]; ok {
			return fmt.Errorf("%w: name %q", ErrDuplicateClass, n)
		}
	}
	if prev, ok := r.byType[c.Type]; ok {
		return fmt.Errorf("%w: type %s already defined as %q", ErrDuplicateClass, c.Type, prev.Name)
	}
	for _, n := range names {
		r.byName[n] = cl
	}
	r.byType[c.Type] = cl
	return nil
}

// Names returns every defined class name and alias, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Reset removes every class and forgets the host version.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version = ""
	r.byName = make(map[string]*class)
	r.byType = make(map[reflect.Type]*class)
}

// ResolveType implements Lookup.
func (r *Registry) ResolveType(d accessor.TypeDescriptor) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range d.Names {
		if cl, ok := r.byName[n]; ok {
			return cl.Type, true
		}
	}
	return nil, false
}

// ResolveField implements Lookup.
func (r *Registry) ResolveField(owner reflect.Type, d accessor.FieldDescriptor) (Field, bool) {
	cl, ok := r.class(owner)
	if !ok {
		return Field{}, false
	}
	for _, n := range d.Names {
		for _, m := range cl.members {
			if m.fn || m.name != n {
				continue
			}
			fv := cl.statics.FieldByIndex(m.index)
			return Field{
				Name: m.name,
				Type: fv.Type(),
				read: func() (any, error) {
					return valueOf(accessible(fv)), nil
				},
			}, true
		}
	}
	return Field{}, false
}

// StaticFunctions implements Lookup. Func members left nil are absent from
// this host and are skipped.
func (r *Registry) StaticFunctions(owner reflect.Type) ([]Function, error) {
	cl, ok := r.class(owner)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, owner)
	}
	var fns []Function
	for _, m := range cl.members {
		if !m.fn {
			continue
		}
		fv := accessible(cl.statics.FieldByIndex(m.index))
		if fv.IsNil() {
			continue
		}
		f, err := Bind(m.name, fv)
		if err != nil {
			return nil, err
		}
		fns = append(fns, f)
	}
	return fns, nil
}

func (r *Registry) class(t reflect.Type) (*class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cl, ok := r.byType[t]
	return cl, ok
}

// accessible returns v with the read-only flag of unexported fields lifted.
// v must be addressable.
func accessible(v reflect.Value) reflect.Value {
	if v.CanInterface() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// member is a static member derived from statics metadata.
type member struct {
	name  string
	index []int
	fn    bool
}

func members(rt reflect.Type) []member {
	meta := scanStatics(rt)
	out := make([]member, 0, len(meta.Fields))
	for _, f := range meta.Fields {
		name := f.Name
		if tag, ok := f.Tags[hostTag]; ok && tag != "" {
			name = tag
		}
		out = append(out, member{
			name:  name,
			index: f.Index,
			fn:    f.ReflectType.Kind() == reflect.Func,
		})
	}
	return out
}

// Count is the number of defined classes, aliases excluded.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byType)
}

var _ Lookup = (*Registry)(nil)
