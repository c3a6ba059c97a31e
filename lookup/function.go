package lookup

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Function is a resolved, invocable static function.
type Function struct {
	// Name is the host name of the function.
	Name string

	// Params are the parameter types in order.
	Params []reflect.Type

	// Return is the first result type, or nil for functions without results.
	// A trailing error result is not part of Return.
	Return reflect.Type

	fn        reflect.Value
	errResult bool
}

// Bind wraps fn as a Function named name. fn must be a non-nil func value.
// A func whose last result is an error reports it through Invoke.
func Bind(name string, fn reflect.Value) (Function, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return Function{}, fmt.Errorf("%w: %s", ErrNotFunction, name)
	}
	ft := fn.Type()
	f := Function{
		Name:   name,
		Params: make([]reflect.Type, ft.NumIn()),
		fn:     fn,
	}
	for i := range f.Params {
		f.Params[i] = ft.In(i)
	}
	switch {
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
		f.Return = ft.Out(0)
		f.errResult = true
	case ft.NumOut() == 1 && ft.Out(0) == errorType:
		f.errResult = true
	case ft.NumOut() >= 1:
		f.Return = ft.Out(0)
	}
	return f, nil
}

// Invoke calls the function. Argument count and types are checked first and
// fail with ErrArgument. A panic inside the function, or a non-nil error
// result, fails with ErrInvocation. A nil first result is returned as a nil any.
func (f Function) Invoke(args ...any) (result any, err error) {
	if !f.fn.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrNotFunction, f.Name)
	}
	if f.fn.Type().IsVariadic() || len(args) != len(f.Params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgument, f.Name, len(f.Params), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, ok := argValue(arg, f.Params[i])
		if !ok {
			return nil, fmt.Errorf("%w: %s argument %d: %T is not assignable to %s", ErrArgument, f.Name, i, arg, f.Params[i])
		}
		in[i] = v
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %s panicked: %v", ErrInvocation, f.Name, r)
		}
	}()

	out := f.fn.Call(in)
	if f.errResult {
		if e := out[len(out)-1]; !e.IsNil() {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvocation, f.Name, e.Interface().(error))
		}
	}
	if f.Return == nil {
		return nil, nil
	}
	return valueOf(out[0]), nil
}

// argValue converts arg to a reflect.Value assignable to param.
func argValue(arg any, param reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		if nillable(param.Kind()) {
			return reflect.Zero(param), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(param) {
		return reflect.Value{}, false
	}
	return v, true
}

// valueOf unwraps v, collapsing typed nils into a nil any.
func valueOf(v reflect.Value) any {
	if nillable(v.Kind()) && v.IsNil() {
		return nil
	}
	return v.Interface()
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
