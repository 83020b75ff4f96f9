package encode

import (
	gojson "github.com/goccy/go-json"

	bicodec "github.com/reoring/bicodec"
)

// OneOf dispatches dynamically: the selector inspects the runtime value
// and picks the encoder to apply. This is the mechanism beneath
// discriminated unions; a selector with no applicable encoder should
// panic with an EncodeError of its own.
func OneOf[T any](selector func(v T) Encoder[T]) Encoder[T] {
	return New(func(v T) any { return selector(v).Encode(v) })
}

// Maybe produces the explicit presence protocol: a present value
// encodes as {"just": V}, absence as {"nothing": {}}. This is the wire
// producer, distinct from field omission inside Object.
func Maybe[T any](e Encoder[T]) Encoder[bicodec.Maybe[T]] {
	return New(func(m bicodec.Maybe[T]) any {
		if !m.Present {
			return map[string]any{bicodec.MaybeNothingKey: map[string]any{}}
		}
		return map[string]any{bicodec.MaybeJustKey: e.Encode(m.Value)}
	})
}

// Nullable passes nil through as JSON null, otherwise delegates.
func Nullable[T any](e Encoder[T]) Encoder[*T] {
	return New(func(v *T) any {
		if v == nil {
			return nil
		}
		return e.Encode(*v)
	})
}

// jsonAny mirrors decode.JSON: the self-referential encoder rebuilding
// any JSON shape.
var jsonAny = Recursive(func(self Encoder[any]) Encoder[any] {
	return New(func(v any) any {
		switch t := v.(type) {
		case []any:
			return Array(self).Encode(t)
		case map[string]any:
			return ObjectMap(self).Encode(t)
		default:
			return v
		}
	})
})

// JSONTree rebuilds an arbitrary JSON tree through the recursive
// encoder. Scalars pass through; arrays and objects are copied.
func JSONTree() Encoder[any] { return jsonAny }

// Stringified encodes through the inner encoder, then serializes the
// result into a JSON string.
func Stringified[T any](e Encoder[T]) Encoder[T] {
	return New(func(v T) any {
		b, err := gojson.Marshal(e.Encode(v))
		if err != nil {
			invariant("cannot stringify encoded value: %v", err)
		}
		return string(b)
	})
}

// Recursive enables self-referential encoders with the same
// deferred-initialization cell as decode.Recursive. The placeholder
// panics if invoked before build returns.
func Recursive[T any](build func(self Encoder[T]) Encoder[T]) Encoder[T] {
	var cell func(v T) any
	placeholder := New(func(v T) any {
		if cell == nil {
			invariant("recursive encoder invoked before initialization")
		}
		return cell(v)
	})
	real := build(placeholder)
	cell = real.fn
	return real
}
