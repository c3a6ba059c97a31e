// Package bson provides a BSON codec implementation.
//
// BSON can only encode documents: structs, maps and bson.D values.
// Marshaling a bare scalar or a slice returns an error.
package bson

import (
	"github.com/zoobzio/ferry/codec"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements codec.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() codec.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
