package encode

import (
	bicodec "github.com/reoring/bicodec"
)

// AnyEncoder adapts a strongly typed Encoder[T] for use as an object
// field. A required field always emits its key. The optional flavors
// run the Maybe-protocol encoder underneath and the object builder
// inspects its wrapper: {"nothing": {}} omits the key entirely,
// {"just": V} emits V directly under the key. The wrapper itself is
// never serialized; only key presence is externally visible.
type AnyEncoder struct {
	// required encodes the map entry. Exactly one of required and the
	// optional pair below is set.
	required func(v any) any
	// entry projects the decoded-map entry into the presence protocol;
	// wrap is the Maybe-protocol encoder applied to it.
	entry func(m map[string]any, key string) bicodec.Maybe[any]
	wrap  func(m bicodec.Maybe[any]) any
}

// AnyOf erases an Encoder[T] as a required field. The map entry must
// hold a T; anything else is an invariant violation.
func AnyOf[T any](e Encoder[T]) AnyEncoder {
	return AnyEncoder{required: func(v any) any {
		return e.Encode(assertField[T](v))
	}}
}

// Optional emits the key only when the decoded map contains it.
func Optional[T any](e Encoder[T]) AnyEncoder {
	return AnyEncoder{
		entry: func(m map[string]any, key string) bicodec.Maybe[any] {
			v, ok := m[key]
			if !ok {
				return bicodec.Nothing[any]()
			}
			return bicodec.Just(v)
		},
		wrap: maybeAny(e),
	}
}

// OptionalNullable emits the key only when its entry is non-nil; the
// nil entry produced by the matching decoder flavor is treated as
// absence.
func OptionalNullable[T any](e Encoder[T]) AnyEncoder {
	return AnyEncoder{
		entry: func(m map[string]any, key string) bicodec.Maybe[any] {
			v, ok := m[key]
			if !ok || v == nil {
				return bicodec.Nothing[any]()
			}
			return bicodec.Just(v)
		},
		wrap: maybeAny(e),
	}
}

// OptionalMaybe expects the entry to be a bicodec.Maybe[any] and emits
// the key only for a present value.
func OptionalMaybe[T any](e Encoder[T]) AnyEncoder {
	return AnyEncoder{
		entry: func(m map[string]any, key string) bicodec.Maybe[any] {
			v, ok := m[key]
			if !ok {
				return bicodec.Nothing[any]()
			}
			mv, isMaybe := v.(bicodec.Maybe[any])
			if !isMaybe {
				invariant("field %q: expected bicodec.Maybe[any], got %T", key, v)
			}
			return mv
		},
		wrap: maybeAny(e),
	}
}

// maybeAny runs the typed Maybe-protocol encoder against a type-erased
// presence value.
func maybeAny[T any](e Encoder[T]) func(m bicodec.Maybe[any]) any {
	me := Maybe(e)
	return func(m bicodec.Maybe[any]) any {
		if !m.Present {
			return me.Encode(bicodec.Nothing[T]())
		}
		return me.Encode(bicodec.Just(assertField[T](m.Value)))
	}
}

func assertField[T any](v any) T {
	tv, ok := v.(T)
	if !ok {
		var zero T
		invariant("expected field value of type %T, got %T", zero, v)
	}
	return tv
}

// ObjectBuilder accumulates field definitions in declaration order.
type ObjectBuilder struct {
	names  []string
	fields map[string]AnyEncoder
}

// Object creates a new object encoder builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{fields: map[string]AnyEncoder{}}
}

// Field registers a field under the given key.
func (b *ObjectBuilder) Field(name string, e AnyEncoder) *ObjectBuilder {
	if _, seen := b.fields[name]; !seen {
		b.names = append(b.names, name)
	}
	b.fields[name] = e
	return b
}

// Build returns the object encoder.
func (b *ObjectBuilder) Build() Encoder[map[string]any] {
	names := append([]string(nil), b.names...)
	fields := make(map[string]AnyEncoder, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	return New(func(m map[string]any) any {
		out := make(map[string]any, len(names))
		for _, name := range names {
			fe := fields[name]
			if fe.required != nil {
				out[name] = fe.required(m[name])
				continue
			}
			wrapper := fe.wrap(fe.entry(m, name))
			wm, _ := wrapper.(map[string]any)
			if _, absent := wm[bicodec.MaybeNothingKey]; absent {
				continue
			}
			out[name] = wm[bicodec.MaybeJustKey]
		}
		return out
	})
}
