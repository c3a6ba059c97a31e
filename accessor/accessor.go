// Package accessor names the host types and members the probe looks for.
//
// Internal host names change between releases, so descriptors are selected
// per host version from a Table. The default table is embedded and covers
// every supported release line.
package accessor

import (
	"strings"
)

// TypeDescriptor names a host type. Names are tried in order.
type TypeDescriptor struct {
	Names []string
}

// String joins the candidate names for diagnostics.
func (d TypeDescriptor) String() string {
	return strings.Join(d.Names, "|")
}

// FieldDescriptor names a static field. Names are tried in order.
// A descriptor with no names never resolves.
type FieldDescriptor struct {
	Names []string
}

// String joins the candidate names for diagnostics.
func (d FieldDescriptor) String() string {
	return strings.Join(d.Names, "|")
}

// Descriptors is the version-selected metadata a probe consumes.
type Descriptors struct {
	// Host is the name of the table entry the descriptors came from.
	Host string

	// Component names the host's internal text component type.
	Component TypeDescriptor

	// Serializer names the host type that converts components to and from JSON.
	Serializer TypeDescriptor

	// Adapter names the serializer's static JSON adapter field.
	Adapter FieldDescriptor

	// LegacyColors marks hosts that predate hex colors.
	LegacyColors bool
}
