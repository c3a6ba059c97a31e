package ferry

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/ferry/lookup"
)

// converter moves JSON text across the host boundary.
type converter interface {
	// toText converts a native handle to JSON text.
	toText(h NativeHandle) (string, error)

	// fromText converts JSON text to a native handle.
	fromText(text string) (NativeHandle, error)
}

// gsonConverter delegates to the host serializer's JSON adapter.
type gsonConverter struct {
	adapter JSONAdapter
	target  reflect.Type
}

func (c *gsonConverter) toText(h NativeHandle) (string, error) {
	return c.adapter.ToJSON(h)
}

func (c *gsonConverter) fromText(text string) (NativeHandle, error) {
	return c.adapter.FromJSON(text, c.target)
}

// directConverter calls the host serializer's static text functions.
// encode maps a handle to text, decode maps text to a handle.
type directConverter struct {
	encode lookup.Function
	decode lookup.Function
}

func (c *directConverter) toText(h NativeHandle) (string, error) {
	out, err := c.encode.Invoke(h)
	if err != nil {
		return "", err
	}
	text, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s returned %T", ErrTextResult, c.encode.Name, out)
	}
	return text, nil
}

func (c *directConverter) fromText(text string) (NativeHandle, error) {
	return c.decode.Invoke(text)
}

// selectFunctions picks the direct-call pair from a serializer's static
// functions.
//
// decode takes exactly one string and returns something assignable to the
// component type; the lexicographically smallest name wins, matching the
// host's convention of short names for its primary entry points. encode
// takes exactly one argument assignable to the component type and returns a
// string; the first in declaration order wins.
func selectFunctions(fns []lookup.Function, componentType reflect.Type) (decode, encode lookup.Function, ok bool) {
	var haveDecode, haveEncode bool
	for _, f := range fns {
		if len(f.Params) != 1 || f.Return == nil {
			continue
		}
		if f.Params[0] == stringType && f.Return.AssignableTo(componentType) {
			if !haveDecode || f.Name < decode.Name {
				decode, haveDecode = f, true
			}
		}
		if !haveEncode && f.Return == stringType && f.Params[0].AssignableTo(componentType) {
			encode, haveEncode = f, true
		}
	}
	return decode, encode, haveDecode && haveEncode
}
