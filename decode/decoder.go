// Package decode provides Decoder[T], a pure function from an untyped
// JSON-like value to a typed T, together with the combinators to build
// decoders for objects, arrays, unions and recursive structures.
//
// A decoder never panics on malformed input: every failure is reported
// as a *bicodec.Failure carrying the message and the field path at
// which decoding stopped. Decoders are immutable once constructed and
// safe for concurrent use.
package decode

import (
	"context"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/i18n"
)

// Decoder validates and converts an untyped value into T.
type Decoder[T any] struct {
	fn func(ctx context.Context, v any) (T, error)
}

// New wraps a raw decoding function as a Decoder.
func New[T any](fn func(ctx context.Context, v any) (T, error)) Decoder[T] {
	return Decoder[T]{fn: fn}
}

// Decode runs the decoder against a raw value. On failure the returned
// error is a *bicodec.Failure.
func (d Decoder[T]) Decode(ctx context.Context, v any) (T, error) {
	return d.fn(ctx, v)
}

// Map transforms the success value of d. Failures pass through
// untouched.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return New(func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Chain sequences a dependent decoder after d, short-circuiting on
// failure: the decoder returned by f runs against the same raw value a
// successful d decoded.
func Chain[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return New(func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Decode(ctx, v)
	})
}

// Succeed always yields v, ignoring the input. Useful as the terminal
// step of a Chain.
func Succeed[T any](v T) Decoder[T] {
	return New(func(context.Context, any) (T, error) { return v, nil })
}

// Fail always fails with the given message, ignoring the input.
func Fail[T any](message string) Decoder[T] {
	return New(func(context.Context, any) (T, error) {
		var zero T
		return zero, bicodec.NewFailure(bicodec.CodeInvalidFormat, message)
	})
}

// failExpected reports a type mismatch in the standard wording, e.g.
// "expected string but found number".
func failExpected(expected string, v any) *bicodec.Failure {
	return bicodec.NewFailure(bicodec.CodeInvalidType, i18n.T(bicodec.CodeInvalidType, map[string]string{
		"expected": expected,
		"found":    bicodec.KindOf(v),
	}))
}
