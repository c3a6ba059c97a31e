package accessor

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/zoobzio/ferry/codec"
	"github.com/zoobzio/ferry/codec/yaml"
)

//go:embed descriptors.yaml
var defaultTable []byte

// MergedHost is the Host name of descriptors merged across every entry.
const MergedHost = "merged"

// Table maps host version ranges to descriptors.
type Table struct {
	Hosts []Entry `json:"hosts" yaml:"hosts" msgpack:"hosts" bson:"hosts"`
}

// Entry is one host release line.
type Entry struct {
	Name         string   `json:"name" yaml:"name" msgpack:"name" bson:"name"`
	Versions     string   `json:"versions" yaml:"versions" msgpack:"versions" bson:"versions"`
	Component    []string `json:"component" yaml:"component" msgpack:"component" bson:"component"`
	Serializer   []string `json:"serializer" yaml:"serializer" msgpack:"serializer" bson:"serializer"`
	Adapter      []string `json:"adapter,omitempty" yaml:"adapter,omitempty" msgpack:"adapter,omitempty" bson:"adapter,omitempty"`
	LegacyColors bool     `json:"legacy_colors,omitempty" yaml:"legacy_colors,omitempty" msgpack:"legacy_colors,omitempty" bson:"legacy_colors,omitempty"`

	constraint *semver.Constraints
}

// Parse decodes a descriptor table with c and validates every entry.
func Parse(c codec.Codec, data []byte) (*Table, error) {
	var t Table
	if err := c.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if err := t.compile(); err != nil {
		return nil, err
	}
	return &t, nil
}

// compile validates entries and parses their version constraints.
func (t *Table) compile() error {
	if len(t.Hosts) == 0 {
		return fmt.Errorf("%w: no hosts", ErrInvalidTable)
	}
	seen := make(map[string]bool, len(t.Hosts))
	for i := range t.Hosts {
		e := &t.Hosts[i]
		if e.Name == "" {
			return fmt.Errorf("%w: host %d has no name", ErrInvalidTable, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate host %q", ErrInvalidTable, e.Name)
		}
		seen[e.Name] = true
		if len(e.Component) == 0 || len(e.Serializer) == 0 {
			return fmt.Errorf("%w: host %q must name component and serializer types", ErrInvalidTable, e.Name)
		}
		c, err := semver.NewConstraint(e.Versions)
		if err != nil {
			return fmt.Errorf("%w: host %q versions %q: %w", ErrInvalidTable, e.Name, e.Versions, err)
		}
		e.constraint = c
	}
	return nil
}

// For selects the descriptors of the first entry whose range contains version.
// An empty version yields Merged descriptors.
func (t *Table) For(version string) (Descriptors, error) {
	if version == "" {
		return t.Merged(), nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return Descriptors{}, fmt.Errorf("%w: %q: %w", ErrUnknownHostVersion, version, err)
	}
	for _, e := range t.Hosts {
		if e.constraint != nil && e.constraint.Check(v) {
			return e.descriptors(), nil
		}
	}
	return Descriptors{}, fmt.Errorf("%w: %q", ErrUnknownHostVersion, version)
}

// Merged returns descriptors that try every entry's names, in table order,
// without duplicates. Used when the host version is not known.
func (t *Table) Merged() Descriptors {
	d := Descriptors{Host: MergedHost}
	for _, e := range t.Hosts {
		d.Component.Names = appendUnique(d.Component.Names, e.Component...)
		d.Serializer.Names = appendUnique(d.Serializer.Names, e.Serializer...)
		d.Adapter.Names = appendUnique(d.Adapter.Names, e.Adapter...)
	}
	return d
}

func (e Entry) descriptors() Descriptors {
	return Descriptors{
		Host:         e.Name,
		Component:    TypeDescriptor{Names: append([]string(nil), e.Component...)},
		Serializer:   TypeDescriptor{Names: append([]string(nil), e.Serializer...)},
		Adapter:      FieldDescriptor{Names: append([]string(nil), e.Adapter...)},
		LegacyColors: e.LegacyColors,
	}
}

func appendUnique(dst []string, names ...string) []string {
	for _, n := range names {
		dup := false
		for _, have := range dst {
			if have == n {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, n)
		}
	}
	return dst
}

var loadDefault = sync.OnceValue(func() *Table {
	t, err := Parse(yaml.New(yaml.Strict()), defaultTable)
	if err != nil {
		panic(fmt.Sprintf("accessor: embedded descriptor table: %v", err))
	}
	return t
})

// Default returns the embedded descriptor table.
func Default() *Table {
	return loadDefault()
}

// For selects descriptors for version from the embedded table.
func For(version string) (Descriptors, error) {
	return Default().For(version)
}
