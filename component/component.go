// Package component provides the stable, version-independent rich-text model
// and its canonical JSON serializer.
//
// A Component is a value. Builders return modified copies and never mutate
// the receiver, so components can be shared freely between goroutines.
//
//	greeting := component.Text("Hello, ").
//	    WithColor(component.Gold).
//	    Append(component.Text("world").WithDecoration(component.Bold, true))
//
//	text, _ := component.JSON().Serialize(greeting)
//	// {"text":"Hello, ","color":"gold","extra":[{"text":"world","bold":true}]}
package component

import "strings"

// Component is a rich-text value.
//
// Exactly one content kind is expected: Translate, then Keybind, then Text,
// in that order of precedence. A component with neither Translate nor Keybind
// is a text component, even when Text is empty.
type Component struct {
	Text      string      `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty" bson:"text,omitempty"`
	Translate string      `json:"translate,omitempty" yaml:"translate,omitempty" msgpack:"translate,omitempty" bson:"translate,omitempty"`
	With      []Component `json:"with,omitempty" yaml:"with,omitempty" msgpack:"with,omitempty" bson:"with,omitempty"`
	Keybind   string      `json:"keybind,omitempty" yaml:"keybind,omitempty" msgpack:"keybind,omitempty" bson:"keybind,omitempty"`

	// Color is a named color ("red") or a hex color ("#ff5555").
	Color string `json:"color,omitempty" yaml:"color,omitempty" msgpack:"color,omitempty" bson:"color,omitempty"`

	// Decorations are tri-state: nil leaves the parent's state in effect.
	Bold          *bool `json:"bold,omitempty" yaml:"bold,omitempty" msgpack:"bold,omitempty" bson:"bold,omitempty"`
	Italic        *bool `json:"italic,omitempty" yaml:"italic,omitempty" msgpack:"italic,omitempty" bson:"italic,omitempty"`
	Underlined    *bool `json:"underlined,omitempty" yaml:"underlined,omitempty" msgpack:"underlined,omitempty" bson:"underlined,omitempty"`
	Strikethrough *bool `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty" msgpack:"strikethrough,omitempty" bson:"strikethrough,omitempty"`
	Obfuscated    *bool `json:"obfuscated,omitempty" yaml:"obfuscated,omitempty" msgpack:"obfuscated,omitempty" bson:"obfuscated,omitempty"`

	Font      string      `json:"font,omitempty" yaml:"font,omitempty" msgpack:"font,omitempty" bson:"font,omitempty"`
	Insertion string      `json:"insertion,omitempty" yaml:"insertion,omitempty" msgpack:"insertion,omitempty" bson:"insertion,omitempty"`
	Click     *ClickEvent `json:"clickEvent,omitempty" yaml:"clickEvent,omitempty" msgpack:"clickEvent,omitempty" bson:"clickEvent,omitempty"`
	Hover     *HoverEvent `json:"hoverEvent,omitempty" yaml:"hoverEvent,omitempty" msgpack:"hoverEvent,omitempty" bson:"hoverEvent,omitempty"`

	Extra []Component `json:"extra,omitempty" yaml:"extra,omitempty" msgpack:"extra,omitempty" bson:"extra,omitempty"`
}

// ClickEvent runs an action when the component is clicked.
type ClickEvent struct {
	Action string `json:"action" yaml:"action" msgpack:"action" bson:"action"`
	Value  string `json:"value" yaml:"value" msgpack:"value" bson:"value"`
}

// Click actions understood by hosts.
const (
	OpenURL         = "open_url"
	RunCommand      = "run_command"
	SuggestCommand  = "suggest_command"
	ChangePage      = "change_page"
	CopyToClipboard = "copy_to_clipboard"
)

// HoverEvent shows a tooltip when the component is hovered.
// Only the show_text action is modeled.
type HoverEvent struct {
	Action   string     `json:"action" yaml:"action" msgpack:"action" bson:"action"`
	Contents *Component `json:"contents,omitempty" yaml:"contents,omitempty" msgpack:"contents,omitempty" bson:"contents,omitempty"`
}

// ShowText is the hover action that displays a component.
const ShowText = "show_text"

// Decoration names a text decoration.
type Decoration string

const (
	Bold          Decoration = "bold"
	Italic        Decoration = "italic"
	Underlined    Decoration = "underlined"
	Strikethrough Decoration = "strikethrough"
	Obfuscated    Decoration = "obfuscated"
)

// Text returns a text component.
func Text(s string) Component {
	return Component{Text: s}
}

// Translatable returns a translation component with arguments.
func Translatable(key string, args ...Component) Component {
	return Component{Translate: key, With: cloneAll(args)}
}

// Keybind returns a keybind component.
func Keybind(key string) Component {
	return Component{Keybind: key}
}

// Append returns a copy of c with children appended to its extras.
func (c Component) Append(children ...Component) Component {
	out := c.Clone()
	out.Extra = append(out.Extra, cloneAll(children)...)
	return out
}

// WithColor returns a copy of c with the given color.
func (c Component) WithColor(color string) Component {
	out := c.Clone()
	out.Color = color
	return out
}

// WithDecoration returns a copy of c with decoration d explicitly set.
func (c Component) WithDecoration(d Decoration, on bool) Component {
	out := c.Clone()
	if p := out.decoration(d); p != nil {
		*p = &on
	}
	return out
}

// Decorated reports the state of decoration d and whether it is set.
func (c Component) Decorated(d Decoration) (on, set bool) {
	p := c.decoration(d)
	if p == nil || *p == nil {
		return false, false
	}
	return **p, true
}

// WithClick returns a copy of c with a click event.
func (c Component) WithClick(action, value string) Component {
	out := c.Clone()
	out.Click = &ClickEvent{Action: action, Value: value}
	return out
}

// WithHover returns a copy of c that shows text on hover.
func (c Component) WithHover(text Component) Component {
	out := c.Clone()
	contents := text.Clone()
	out.Hover = &HoverEvent{Action: ShowText, Contents: &contents}
	return out
}

// PlainText flattens the text content of c and its extras.
// Translation and keybind components contribute their key.
func (c Component) PlainText() string {
	var b strings.Builder
	c.writePlain(&b)
	return b.String()
}

func (c Component) writePlain(b *strings.Builder) {
	switch {
	case c.Translate != "":
		b.WriteString(c.Translate)
	case c.Keybind != "":
		b.WriteString(c.Keybind)
	default:
		b.WriteString(c.Text)
	}
	for _, child := range c.Extra {
		child.writePlain(b)
	}
}

// decoration returns the field backing d, or nil for an unknown decoration.
func (c *Component) decoration(d Decoration) **bool {
	switch d {
	case Bold:
		return &c.Bold
	case Italic:
		return &c.Italic
	case Underlined:
		return &c.Underlined
	case Strikethrough:
		return &c.Strikethrough
	case Obfuscated:
		return &c.Obfuscated
	}
	return nil
}
