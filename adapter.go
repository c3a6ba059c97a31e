package ferry

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/ferry/lookup"
)

// JSONAdapter is a host JSON library instance able to convert host objects
// to and from JSON text. Adapters implementing it are called directly.
//
// Adapters that do not implement it are bound by method name instead:
// ToJson(any) string and FromJson(string, reflect.Type) <object>, each
// optionally returning a trailing error. This matches the shape of the host
// JSON libraries found in the wild.
type JSONAdapter interface {
	// ToJSON encodes a host object as JSON text.
	ToJSON(v any) (string, error)

	// FromJSON decodes JSON text into a host object of type target.
	FromJSON(text string, target reflect.Type) (any, error)
}

var (
	stringType      = reflect.TypeFor[string]()
	reflectTypeType = reflect.TypeFor[reflect.Type]()
)

// adapterOf adopts v as a JSONAdapter.
func adapterOf(v any) (JSONAdapter, error) {
	if a, ok := v.(JSONAdapter); ok {
		return a, nil
	}

	rv := reflect.ValueOf(v)
	to, err := lookup.Bind("ToJson", rv.MethodByName("ToJson"))
	if err != nil {
		return nil, err
	}
	from, err := lookup.Bind("FromJson", rv.MethodByName("FromJson"))
	if err != nil {
		return nil, err
	}

	if len(to.Params) != 1 || to.Params[0].Kind() != reflect.Interface || to.Params[0].NumMethod() != 0 ||
		to.Return != stringType {
		return nil, fmt.Errorf("ToJson has signature %s", rv.MethodByName("ToJson").Type())
	}
	if len(from.Params) != 2 || from.Params[0] != stringType || from.Params[1] != reflectTypeType ||
		from.Return == nil {
		return nil, fmt.Errorf("FromJson has signature %s", rv.MethodByName("FromJson").Type())
	}
	return &boundAdapter{toJSON: to, fromJSON: from}, nil
}

// boundAdapter calls an adapter's JSON methods through reflection.
type boundAdapter struct {
	toJSON   lookup.Function
	fromJSON lookup.Function
}

func (a *boundAdapter) ToJSON(v any) (string, error) {
	out, err := a.toJSON.Invoke(v)
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (a *boundAdapter) FromJSON(text string, target reflect.Type) (any, error) {
	return a.fromJSON.Invoke(text, target)
}
