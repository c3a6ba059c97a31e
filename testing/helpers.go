// Package testing provides fake hosts for exercising ferry.
//
// Each host is a lookup.Registry shaped like a real release line: class
// names, member names and host version match what the default descriptor
// table expects, so the hosts work with both Probe and the facade.
package testing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/ferry/codec"
	"github.com/zoobzio/ferry/codec/json"
	"github.com/zoobzio/ferry/lookup"
)

// Host versions of the fake hosts.
const (
	LegacyVersion = "1.12.2"
	GSONVersion   = "1.19.4"
	DirectVersion = "1.20.4"
)

// Host class names.
const (
	ComponentClass       = "net.minecraft.network.chat.Component"
	SerializerClass      = "net.minecraft.network.chat.Component$Serializer"
	LegacyComponentClass = "net.minecraft.server.IChatBaseComponent"
	LegacySerializer     = "net.minecraft.server.IChatBaseComponent$ChatSerializer"
)

var jsonCodec codec.Codec = json.New()

// Chat is the fake host's internal component. It keeps the decoded JSON tree.
type Chat struct {
	tree any
}

// ChatType is the reflect.Type of the fake host's component.
var ChatType = reflect.TypeFor[*Chat]()

// NewChat returns a chat holding plain text.
func NewChat(text string) *Chat {
	return &Chat{tree: map[string]any{"text": text}}
}

// ParseChat decodes JSON text into a chat.
func ParseChat(text string) (*Chat, error) {
	var tree any
	if err := jsonCodec.Unmarshal([]byte(text), &tree); err != nil {
		return nil, err
	}
	switch tree.(type) {
	case map[string]any, string, []any:
		return &Chat{tree: tree}, nil
	}
	return nil, fmt.Errorf("not a chat component: %s", text)
}

// JSON encodes the chat as JSON text.
func (c *Chat) JSON() (string, error) {
	data, err := jsonCodec.Marshal(c.tree)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Plain returns the chat's text content, ignoring styles.
func (c *Chat) Plain() string {
	var b strings.Builder
	plain(&b, c.tree)
	return b.String()
}

func plain(b *strings.Builder, node any) {
	switch n := node.(type) {
	case string:
		b.WriteString(n)
	case []any:
		for _, child := range n {
			plain(b, child)
		}
	case map[string]any:
		if text, ok := n["text"].(string); ok {
			b.WriteString(text)
		}
		if extra, ok := n["extra"].([]any); ok {
			plain(b, extra)
		}
	}
}

// Gson is a JSON adapter implementing ferry's adapter interface.
type Gson struct{}

// ToJSON encodes a *Chat.
func (Gson) ToJSON(v any) (string, error) {
	c, ok := v.(*Chat)
	if !ok || c == nil {
		return "", fmt.Errorf("cannot encode %T", v)
	}
	return c.JSON()
}

// FromJSON decodes into a *Chat.
func (Gson) FromJSON(text string, target reflect.Type) (any, error) {
	if target != ChatType {
		return nil, fmt.Errorf("cannot decode into %s", target)
	}
	return ParseChat(text)
}

// LegacyGson is a JSON adapter reachable only through its ToJson and
// FromJson methods. Like the host libraries it imitates, it panics on bad
// input.
type LegacyGson struct{}

// ToJson encodes a *Chat.
func (LegacyGson) ToJson(v any) string {
	text, err := Gson{}.ToJSON(v)
	if err != nil {
		panic(err)
	}
	return text
}

// FromJson decodes into a *Chat.
func (LegacyGson) FromJson(text string, target reflect.Type) any {
	c, err := Gson{}.FromJSON(text, target)
	if err != nil {
		panic(err)
	}
	return c
}

type chatSerializer struct{}

// GSONStatics are the static members of a serializer with a shared adapter.
type GSONStatics struct {
	gson *Gson `host:"GSON"`
}

// LegacyStatics are the static members of a pre-remap serializer.
type LegacyStatics struct {
	gson *LegacyGson `host:"a"`
}

// DirectStatics are the static members of a serializer without an adapter.
// Only a converts text to a chat; c is a deprecated entry point that never
// produces one.
type DirectStatics struct {
	fromJSONDeprecated func(string) *Chat          `host:"c"`
	fromJSON           func(string) (*Chat, error) `host:"a"`
	toJSON             func(*Chat) string          `host:"b"`
	fromTree           func(any) *Chat             `host:"d"`
}

// ErrNoChat is returned by the direct host for JSON that is not a chat.
var ErrNoChat = errors.New("no chat component")

// NewDirectStatics returns working direct-call statics.
func NewDirectStatics() *DirectStatics {
	return &DirectStatics{
		fromJSONDeprecated: func(string) *Chat { return nil },
		fromJSON: func(text string) (*Chat, error) {
			c, err := ParseChat(text)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrNoChat, err)
			}
			return c, nil
		},
		toJSON: func(c *Chat) string {
			text, err := c.JSON()
			if err != nil {
				panic(err)
			}
			return text
		},
		fromTree: func(tree any) *Chat { return &Chat{tree: tree} },
	}
}

// Host builds a registry at version holding the chat component class and a
// serializer class with the given statics. A nil statics defines no
// serializer.
func Host(tb testing.TB, version string, component, serializer string, statics any) *lookup.Registry {
	tb.Helper()
	r := lookup.NewRegistry()
	r.SetHostVersion(version)
	if err := r.Define(lookup.Class{Name: component, Type: ChatType}); err != nil {
		tb.Fatalf("define %s: %v", component, err)
	}
	if statics != nil {
		if err := r.Define(lookup.Class{
			Name:    serializer,
			Type:    reflect.TypeFor[chatSerializer](),
			Statics: statics,
		}); err != nil {
			tb.Fatalf("define %s: %v", serializer, err)
		}
	}
	return r
}

// GSONHost returns a remapped host whose serializer carries a Gson adapter.
func GSONHost(tb testing.TB) *lookup.Registry {
	tb.Helper()
	return Host(tb, GSONVersion, ComponentClass, SerializerClass, &GSONStatics{gson: &Gson{}})
}

// LegacyHost returns a pre-1.16 host whose adapter is a LegacyGson.
func LegacyHost(tb testing.TB) *lookup.Registry {
	tb.Helper()
	return Host(tb, LegacyVersion, LegacyComponentClass, LegacySerializer, &LegacyStatics{gson: &LegacyGson{}})
}

// DirectHost returns a modern host whose serializer has only static
// text functions.
func DirectHost(tb testing.TB) *lookup.Registry {
	tb.Helper()
	return Host(tb, DirectVersion, ComponentClass, SerializerClass, NewDirectStatics())
}

// EmptyHost returns a modern host that defines no classes at all.
func EmptyHost(tb testing.TB) *lookup.Registry {
	tb.Helper()
	r := lookup.NewRegistry()
	r.SetHostVersion(DirectVersion)
	return r
}
