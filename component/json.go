package component

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/zoobzio/ferry/codec"
	"github.com/zoobzio/ferry/codec/json"
)

// Serializer converts components to and from JSON text.
//
// Serialize rejects components that set more than one of Text, Translate
// and Keybind, and text that is not valid UTF-8, since neither survives a
// round trip.
type Serializer interface {
	// Serialize encodes c as JSON text.
	Serialize(c Component) (string, error)

	// Deserialize decodes JSON text into a component.
	Deserialize(text string) (Component, error)
}

// Option configures the JSON serializer.
type Option func(*jsonSerializer)

// DownsampleColors flattens hex colors to the nearest named color on
// Serialize, for hosts that predate hex colors.
func DownsampleColors() Option {
	return func(s *jsonSerializer) {
		s.downsample = true
	}
}

// JSON returns the canonical component JSON serializer.
func JSON(opts ...Option) Serializer {
	s := &jsonSerializer{codec: json.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type jsonSerializer struct {
	codec      codec.Codec
	downsample bool
}

func (s *jsonSerializer) Serialize(c Component) (string, error) {
	if s.downsample {
		c = c.Downsampled()
	}
	data, err := s.codec.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *jsonSerializer) Deserialize(text string) (Component, error) {
	var c Component
	if err := s.codec.Unmarshal([]byte(text), &c); err != nil {
		return Component{}, err
	}
	return c, nil
}

// wireComponent is the JSON shape of a component. Text is a pointer so that
// an empty text component still carries its "text" key.
type wireComponent struct {
	Text          *string     `json:"text,omitempty"`
	Translate     string      `json:"translate,omitempty"`
	With          []Component `json:"with,omitempty"`
	Keybind       string      `json:"keybind,omitempty"`
	Color         string      `json:"color,omitempty"`
	Bold          *bool       `json:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty"`
	Underlined    *bool       `json:"underlined,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty"`
	Obfuscated    *bool       `json:"obfuscated,omitempty"`
	Font          string      `json:"font,omitempty"`
	Insertion     string      `json:"insertion,omitempty"`
	Click         *ClickEvent `json:"clickEvent,omitempty"`
	Hover         *HoverEvent `json:"hoverEvent,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// MarshalJSON implements json.Marshaler. A component must carry a single
// content kind and valid UTF-8 text; anything else fails with
// ErrMixedContent or ErrInvalidText rather than losing data.
func (c Component) MarshalJSON() ([]byte, error) {
	if err := c.checkContent(); err != nil {
		return nil, err
	}
	w := wireComponent{
		Translate:     c.Translate,
		With:          c.With,
		Keybind:       c.Keybind,
		Color:         c.Color,
		Bold:          c.Bold,
		Italic:        c.Italic,
		Underlined:    c.Underlined,
		Strikethrough: c.Strikethrough,
		Obfuscated:    c.Obfuscated,
		Font:          c.Font,
		Insertion:     c.Insertion,
		Click:         c.Click,
		Hover:         c.Hover,
		Extra:         c.Extra,
	}
	if c.Translate == "" && c.Keybind == "" {
		text := c.Text
		w.Text = &text
	}
	return json.New().Marshal(w)
}

func (c Component) checkContent() error {
	kinds := 0
	for _, s := range []string{c.Text, c.Translate, c.Keybind} {
		if s != "" {
			kinds++
		}
	}
	if kinds > 1 {
		return fmt.Errorf("%w: text %q, translate %q, keybind %q", ErrMixedContent, c.Text, c.Translate, c.Keybind)
	}
	if !utf8.ValidString(c.Text) {
		return fmt.Errorf("%w: %q", ErrInvalidText, c.Text)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Besides objects it accepts the
// shorthand forms hosts emit: a bare string is a text component, a bare
// number or boolean is a text component of its literal, and an array is its
// first element with the remaining elements appended as extras.
func (c *Component) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidJSON
	}
	cd := json.New()

	switch data[0] {
	case '"':
		var s string
		if err := cd.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Component{Text: s}
		return nil

	case '[':
		var parts []Component
		if err := cd.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return ErrEmptyArray
		}
		first := parts[0]
		first.Extra = append(first.Extra, parts[1:]...)
		*c = first
		return nil

	case '{':
		var w wireComponent
		if err := cd.Unmarshal(data, &w); err != nil {
			return err
		}
		if w.Text == nil && w.Translate == "" && w.Keybind == "" {
			return fmt.Errorf("%w: %s", ErrNoContent, data)
		}
		*c = w.component()
		return nil

	case 'n':
		return fmt.Errorf("%w: null", ErrInvalidJSON)
	}

	// Numbers and booleans.
	var v any
	if err := cd.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Component{Text: string(data)}
	return nil
}

func (w wireComponent) component() Component {
	c := Component{
		Translate:     w.Translate,
		With:          w.With,
		Keybind:       w.Keybind,
		Color:         w.Color,
		Bold:          w.Bold,
		Italic:        w.Italic,
		Underlined:    w.Underlined,
		Strikethrough: w.Strikethrough,
		Obfuscated:    w.Obfuscated,
		Font:          w.Font,
		Insertion:     w.Insertion,
		Click:         w.Click,
		Hover:         w.Hover,
		Extra:         w.Extra,
	}
	if w.Text != nil {
		c.Text = *w.Text
	}
	return c
}
