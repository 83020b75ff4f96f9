// Package wire joins schemas to concrete byte formats. Each helper is
// one thin layer over schema.Decode/schema.Encode: the document is
// fully materialized into the untyped tree, decoded (or encoded, then
// serialized) in a single pass. Streaming is out of scope.
package wire

import (
	"context"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/bicodec/schema"
)

// UnmarshalJSON parses JSON bytes and decodes the resulting tree
// against the schema. Numbers materialize as float64.
func UnmarshalJSON[T any](ctx context.Context, s schema.Schema[T], data []byte) (T, error) {
	var raw any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, err
	}
	return schema.Decode(ctx, s, raw)
}

// MarshalJSON encodes the value through the schema and serializes the
// wire tree to JSON bytes.
func MarshalJSON[T any](s schema.Schema[T], v T) ([]byte, error) {
	return gojson.Marshal(schema.Encode(s, v))
}

// MarshalJSONIndent is MarshalJSON with two-space indentation, for
// files meant to be read and edited by people.
func MarshalJSONIndent[T any](s schema.Schema[T], v T) ([]byte, error) {
	return gojson.MarshalIndent(schema.Encode(s, v), "", "  ")
}
