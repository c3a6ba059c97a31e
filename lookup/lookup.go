// Package lookup resolves host types and their static members by descriptor.
//
// Go has no runtime class loader, so hosts are described by bindings: each
// supported host version registers its classes in a Registry, usually from an
// init function, the way database/sql drivers register themselves.
//
//	type chatSerializer struct {
//	    gson     *gson.Gson                       `host:"GSON"`
//	    fromJSON func(string) *chat.Component      `host:"a"`
//	    toJSON   func(*chat.Component) string      `host:"b"`
//	}
//
//	func init() {
//	    lookup.Default().SetHostVersion("1.19.4")
//	    lookup.Define(lookup.Class{
//	        Name:    "net.minecraft.network.chat.Component$Serializer",
//	        Type:    reflect.TypeFor[chatSerializer](),
//	        Statics: &statics,
//	    })
//	}
//
// The fields of a class's Statics struct are its static members. Func-typed
// fields are static functions; every other field is a static field. Member
// names come from the host tag, falling back to the Go field name. Unexported
// members are reachable: hosts rarely export what the probe needs.
package lookup

import (
	"reflect"

	"github.com/zoobzio/ferry/accessor"
)

// Lookup discovers host capabilities that may or may not exist in the
// running host.
type Lookup interface {
	// ResolveType returns the first type named by d that the host defines.
	ResolveType(d accessor.TypeDescriptor) (reflect.Type, bool)

	// ResolveField returns the first static field of owner named by d.
	ResolveField(owner reflect.Type, d accessor.FieldDescriptor) (Field, bool)

	// StaticFunctions returns owner's static functions in declaration order.
	StaticFunctions(owner reflect.Type) ([]Function, error)
}

// Field is a resolved static field.
type Field struct {
	// Name is the host name of the field.
	Name string

	// Type is the field's declared type.
	Type reflect.Type

	read func() (any, error)
}

// Get reads the field's current value. Nil pointers, interfaces, maps,
// slices and funcs read as a nil any.
func (f Field) Get() (any, error) {
	if f.read == nil {
		return nil, ErrUnreadable
	}
	return f.read()
}
