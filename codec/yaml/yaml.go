// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/zoobzio/ferry/codec"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements codec.Codec for YAML.
type yamlCodec struct {
	strict bool
}

// Option configures a YAML codec.
type Option func(*yamlCodec)

// Strict rejects mapping keys that have no corresponding struct field.
// Descriptor tables are decoded strictly so a misspelled key fails loudly.
func Strict() Option {
	return func(c *yamlCodec) {
		c.strict = true
	}
}

// New returns a YAML codec.
func New(opts ...Option) codec.Codec {
	c := &yamlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v. Only the first document is read.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return yaml.Unmarshal(data, v)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
