package schema

import (
	"context"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/encode"
	"github.com/reoring/bicodec/i18n"
)

// String pairs the string decoder and encoder.
func String() Schema[string] {
	return New(decode.String(), encode.String())
}

// Number pairs the float64 decoder with the finite-number encoder.
func Number() Schema[float64] {
	return New(decode.Number(), encode.Number())
}

// Bool pairs the boolean decoder and encoder.
func Bool() Schema[bool] {
	return New(decode.Bool(), encode.Bool())
}

// JSON accepts and reproduces any JSON shape.
func JSON() Schema[any] {
	return New(decode.JSON(), encode.JSONTree())
}

// StringLiteral decodes exactly the given string; its encoder guards
// membership the same way an enum of one does.
func StringLiteral(want string) Schema[string] {
	return New(decode.StringLiteral(want), encode.StringEnum(want))
}

// StringEnum restricts a string to the allowed literals on both
// directions: decode failures are reported, encode violations panic.
func StringEnum(values ...string) Schema[string] {
	return New(decode.StringEnum(values...), encode.StringEnum(values...))
}

// StringNumber decodes a numeric string into a float64 and encodes the
// float back to its shortest decimal text.
func StringNumber() Schema[float64] {
	return New(decode.StringNumber(), stringNumberEncoder())
}

// Array applies one element schema to every element.
func Array[T any](s Schema[T]) Schema[[]T] {
	return New(decode.Array(s.Decoder), encode.Array(s.Encoder))
}

// ObjectMap applies one value schema to every entry of an
// arbitrary-key object.
func ObjectMap[T any](s Schema[T]) Schema[map[string]T] {
	return New(decode.ObjectMap(s.Decoder), encode.ObjectMap(s.Encoder))
}

// Pair is a fixed two-element array.
func Pair[A, B any](a Schema[A], b Schema[B]) Schema[bicodec.Pair[A, B]] {
	return New(decode.Pair(a.Decoder, b.Decoder), encode.Pair(a.Encoder, b.Encoder))
}

// Triple is a fixed three-element array.
func Triple[A, B, C any](a Schema[A], b Schema[B], c Schema[C]) Schema[bicodec.Triple[A, B, C]] {
	return New(decode.Triple(a.Decoder, b.Decoder, c.Decoder), encode.Triple(a.Encoder, b.Encoder, c.Encoder))
}

// Maybe is the explicit presence protocol on both directions.
func Maybe[T any](s Schema[T]) Schema[bicodec.Maybe[T]] {
	return New(decode.Maybe(s.Decoder), encode.Maybe(s.Encoder))
}

// Nullable accepts JSON null as a nil pointer.
func Nullable[T any](s Schema[T]) Schema[*T] {
	return New(decode.Nullable(s.Decoder), encode.Nullable(s.Encoder))
}

// Stringified nests a JSON document inside a string field.
func Stringified[T any](s Schema[T]) Schema[T] {
	return New(decode.Stringified(s.Decoder), encode.Stringified(s.Encoder))
}

// Recursive ties the knot for self-referential schemas. The
// placeholder handed to build fails (decode) or panics (encode) if
// invoked before build returns.
func Recursive[T any](build func(self Schema[T]) Schema[T]) Schema[T] {
	var cell *Schema[T]
	placeholder := New(
		decode.New(func(ctx context.Context, v any) (T, error) {
			if cell == nil {
				var zero T
				return zero, bicodec.NewFailure(bicodec.CodeUninitialized, i18n.T(bicodec.CodeUninitialized, nil))
			}
			return cell.Decoder.Decode(ctx, v)
		}),
		encode.New(func(v T) any {
			if cell == nil {
				panic(&bicodec.EncodeError{Message: "recursive encoder invoked before initialization"})
			}
			return cell.Encoder.Encode(v)
		}),
	)
	real := build(placeholder)
	cell = &real
	return real
}

func stringNumberEncoder() encode.Encoder[float64] {
	return encode.Stringified(encode.Number())
}
