// Package codec defines the wire codec contract shared by ferry's format providers.
//
// The following providers are available as subpackages:
//
//   - json - JSON encoding (application/json), the canonical component format
//   - yaml - YAML encoding (application/yaml), used for descriptor tables
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package codec

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
