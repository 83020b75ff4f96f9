// Package encode provides Encoder[T], a pure function from a typed T
// to its untyped JSON-like representation, together with the
// combinators mirroring package decode.
//
// Encoders are total under the type system's guarantees: well-typed
// input always encodes. A value that violates a schema's invariants (a
// non-finite number, a string outside its enum, a union value matching
// no variant) is a programmer bug at the call site, and the encoder
// panics with *bicodec.EncodeError. This panic deliberately crosses the
// library boundary; there is no recovery path.
package encode

import (
	"fmt"

	bicodec "github.com/reoring/bicodec"
)

// Encoder converts a typed T into an untyped JSON-shaped value.
type Encoder[T any] struct {
	fn func(v T) any
}

// New wraps a raw encoding function as an Encoder.
func New[T any](fn func(v T) any) Encoder[T] {
	return Encoder[T]{fn: fn}
}

// Encode converts v into its wire representation, ready to hand to a
// serializer.
func (e Encoder[T]) Encode(v T) any { return e.fn(v) }

// Contramap transforms the input before encoding, adapting a domain
// type (a branded ID, a time value) to the representation e expects.
func Contramap[A, B any](e Encoder[A], f func(B) A) Encoder[B] {
	return New(func(v B) any { return e.Encode(f(v)) })
}

// invariant panics with an EncodeError. Used by every built-in guard.
func invariant(format string, args ...any) {
	panic(&bicodec.EncodeError{Message: fmt.Sprintf(format, args...)})
}
