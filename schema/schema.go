// Package schema pairs a decode.Decoder[T] with an encode.Encoder[T]
// so a schema author writes one declaration per type and call sites
// construct a single artifact for both directions.
package schema

import (
	"context"

	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/encode"
)

// Schema is an immutable decoder/encoder pair for T.
type Schema[T any] struct {
	Decoder decode.Decoder[T]
	Encoder encode.Encoder[T]
}

// New pairs a decoder and an encoder.
func New[T any](d decode.Decoder[T], e encode.Encoder[T]) Schema[T] {
	return Schema[T]{Decoder: d, Encoder: e}
}

// Decode validates and converts a raw value. On failure the returned
// error is a *bicodec.Failure whose Error renders as
// "<message>. When parsing: <dot.joined.path>".
func (s Schema[T]) Decode(ctx context.Context, v any) (T, error) {
	return s.Decoder.Decode(ctx, v)
}

// Encode converts a typed value into its wire representation, ready to
// hand to a serializer. Ill-typed input panics with *bicodec.EncodeError.
func (s Schema[T]) Encode(v T) any { return s.Encoder.Encode(v) }

// Decode is the package-level entry point mirroring Schema.Decode.
func Decode[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Decode(ctx, v)
}

// Encode is the package-level entry point mirroring Schema.Encode.
func Encode[T any](s Schema[T], v T) any { return s.Encode(v) }

// Dimap builds Schema[B] from Schema[A] by post-processing decoded
// values with parse and pre-processing values with serialize before
// encoding. The two functions must be mutual inverses on the relevant
// domain to preserve round-trip correctness.
func Dimap[A, B any](s Schema[A], parse func(A) B, serialize func(B) A) Schema[B] {
	return New(
		decode.Map(s.Decoder, parse),
		encode.Contramap(s.Encoder, serialize),
	)
}

// Chain is Dimap where parsing may additionally fail dynamically, e.g.
// validating a date string after it decoded as a plain string.
func Chain[A, B any](s Schema[A], parse func(A) decode.Decoder[B], serialize func(B) A) Schema[B] {
	return New(
		decode.Chain(s.Decoder, parse),
		encode.Contramap(s.Encoder, serialize),
	)
}
