package schema

import (
	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/encode"
)

// AnySchema adapts a strongly typed Schema[T] for use as an object
// field, pairing the type-erased decoder and encoder adapters.
type AnySchema struct {
	dec decode.AnyDecoder
	enc encode.AnyEncoder
}

// Of erases a Schema[T] as a required field: decoding fails when the
// key is absent, encoding always emits the key.
func Of[T any](s Schema[T]) AnySchema {
	return AnySchema{dec: decode.AnyOf(s.Decoder), enc: encode.AnyOf(s.Encoder)}
}

// Optional marks a field that may be absent. An absent key is dropped
// from the decoded map and an absent entry omits the key on encode.
func Optional[T any](s Schema[T]) AnySchema {
	return AnySchema{dec: decode.Optional(s.Decoder), enc: encode.Optional(s.Encoder)}
}

// OptionalNullable marks a field that may be absent; absence decodes
// to an explicit nil entry and a nil entry omits the key on encode.
func OptionalNullable[T any](s Schema[T]) AnySchema {
	return AnySchema{dec: decode.OptionalNullable(s.Decoder), enc: encode.OptionalNullable(s.Encoder)}
}

// OptionalMaybe marks a field whose decoded entry is a
// bicodec.Maybe[any], making presence explicit to the caller.
func OptionalMaybe[T any](s Schema[T]) AnySchema {
	return AnySchema{dec: decode.OptionalMaybe(s.Decoder), enc: encode.OptionalMaybe(s.Encoder)}
}

// OptionalDefault substitutes def when the key is absent, so the
// decoded entry is always present; the encoder treats the field as
// required and always emits it (default-on-decode, required-on-encode).
func OptionalDefault[T any](def T, s Schema[T]) AnySchema {
	return AnySchema{dec: decode.OptionalDefault(def, s.Decoder), enc: encode.AnyOf(s.Encoder)}
}

// ObjectBuilder accumulates field schemas in declaration order.
type ObjectBuilder struct {
	dec *decode.ObjectBuilder
	enc *encode.ObjectBuilder
}

// Object creates a new object schema builder. Decoding is open: keys
// without a declared field are ignored and never re-emitted.
func Object() *ObjectBuilder {
	return &ObjectBuilder{dec: decode.Object(), enc: encode.Object()}
}

// Field registers a field under the given key.
func (b *ObjectBuilder) Field(name string, f AnySchema) *ObjectBuilder {
	b.dec.Field(name, f.dec)
	b.enc.Field(name, f.enc)
	return b
}

// Build returns the paired object schema over map[string]any. Use
// Dimap to project the map onto a domain struct.
func (b *ObjectBuilder) Build() Schema[map[string]any] {
	return New(b.dec.Build(), b.enc.Build())
}
