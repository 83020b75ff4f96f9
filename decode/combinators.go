package decode

import (
	"context"
	"strings"

	gojson "github.com/goccy/go-json"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/i18n"
)

// OneOf tries each decoder in the given order and returns the first
// success. When every branch fails, the failure aggregates each
// branch's rendered (path, message) line so callers can see why every
// alternative was rejected.
func OneOf[T any](ds ...Decoder[T]) Decoder[T] {
	return New(func(ctx context.Context, v any) (T, error) {
		var zero T
		lines := make([]string, 0, len(ds))
		for _, d := range ds {
			tv, err := d.Decode(ctx, v)
			if err == nil {
				return tv, nil
			}
			lines = append(lines, err.Error())
		}
		return zero, bicodec.NewFailure(bicodec.CodeNoAlternative, strings.Join(lines, "\n"))
	})
}

// Maybe decodes the explicit presence protocol: {"just": V} yields a
// present value, {"nothing": {}} yields absence. The wrapper is a wire
// convention only; failures of the inner decoder keep their own path.
func Maybe[T any](d Decoder[T]) Decoder[bicodec.Maybe[T]] {
	return New(func(ctx context.Context, v any) (bicodec.Maybe[T], error) {
		var zero bicodec.Maybe[T]
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return zero, failExpected("maybe wrapper", v)
		}
		if raw, ok := m[bicodec.MaybeJustKey]; ok {
			tv, err := d.Decode(ctx, raw)
			if err != nil {
				return zero, err
			}
			return bicodec.Just(tv), nil
		}
		if _, ok := m[bicodec.MaybeNothingKey]; ok {
			return bicodec.Nothing[T](), nil
		}
		return zero, failExpected("maybe wrapper", v)
	})
}

// Nullable accepts JSON null as a nil pointer, otherwise delegates.
func Nullable[T any](d Decoder[T]) Decoder[*T] {
	return New(func(ctx context.Context, v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		tv, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return &tv, nil
	})
}

// jsonAny is the self-referential decoder accepting any JSON shape.
var jsonAny = Recursive(func(self Decoder[any]) Decoder[any] {
	return OneOf(
		Null(),
		Map(String(), func(s string) any { return s }),
		Map(Number(), func(f float64) any { return f }),
		Map(Bool(), func(b bool) any { return b }),
		Map(Array(self), func(xs []any) any { return xs }),
		Map(ObjectMap(self), func(m map[string]any) any { return m }),
	)
})

// JSON accepts any JSON-shaped value: null, string, number, boolean,
// array of JSON, or string-keyed object of JSON. Numbers normalize to
// float64 and arrays/objects are rebuilt, so the result is independent
// of the input value.
func JSON() Decoder[any] { return jsonAny }

// Stringified decodes a string field holding JSON text: the string is
// parsed and the inner decoder runs on the parsed value. A malformed
// string surfaces as a decode failure, never a parse panic.
func Stringified[T any](d Decoder[T]) Decoder[T] {
	return New(func(ctx context.Context, v any) (T, error) {
		var zero T
		s, err := String().Decode(ctx, v)
		if err != nil {
			return zero, err
		}
		var raw any
		if err := gojson.Unmarshal([]byte(s), &raw); err != nil {
			return zero, bicodec.NewFailure(bicodec.CodeInvalidJSON, i18n.T(bicodec.CodeInvalidJSON, nil))
		}
		return d.Decode(ctx, raw)
	})
}

// Recursive enables self-referential decoders without infinite
// construction-time recursion. The placeholder handed to build
// delegates through a deferred-initialization cell that is assigned
// once build returns; invoking the placeholder before then is a logic
// error reported as a failure, not a stack overflow.
func Recursive[T any](build func(self Decoder[T]) Decoder[T]) Decoder[T] {
	var cell func(ctx context.Context, v any) (T, error)
	placeholder := New(func(ctx context.Context, v any) (T, error) {
		if cell == nil {
			var zero T
			return zero, bicodec.NewFailure(bicodec.CodeUninitialized, i18n.T(bicodec.CodeUninitialized, nil))
		}
		return cell(ctx, v)
	})
	real := build(placeholder)
	cell = real.fn
	return real
}
