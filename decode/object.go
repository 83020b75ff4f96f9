package decode

import (
	"context"

	bicodec "github.com/reoring/bicodec"
)

// AnyDecoder adapts a strongly typed Decoder[T] for use as an object
// field, erasing T so heterogeneous fields can share one builder. The
// optional flavors are built on the Maybe presence protocol: the object
// decoder hands them {"just": raw} when the key is present and
// {"nothing": {}} when it is absent, and the flavor decides what, if
// anything, lands in the decoded map.
type AnyDecoder struct {
	// required decodes the raw field value. Exactly one of required and
	// optional is set.
	required func(ctx context.Context, v any) (any, error)
	// optional decodes the presence wrapper; emit reports whether the
	// key appears in the decoded map at all.
	optional func(ctx context.Context, wrapper any) (value any, emit bool, err error)
}

// AnyOf erases a Decoder[T] as a required field.
func AnyOf[T any](d Decoder[T]) AnyDecoder {
	return AnyDecoder{required: func(ctx context.Context, v any) (any, error) {
		tv, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return tv, nil
	}}
}

// Optional marks a field that may be absent; an absent key is dropped
// from the decoded map.
func Optional[T any](d Decoder[T]) AnyDecoder {
	md := Maybe(d)
	return AnyDecoder{optional: func(ctx context.Context, wrapper any) (any, bool, error) {
		m, err := md.Decode(ctx, wrapper)
		if err != nil {
			return nil, false, err
		}
		if !m.Present {
			return nil, false, nil
		}
		return m.Value, true, nil
	}}
}

// OptionalNullable marks a field that may be absent; an absent key
// decodes to an explicit nil entry.
func OptionalNullable[T any](d Decoder[T]) AnyDecoder {
	md := Maybe(d)
	return AnyDecoder{optional: func(ctx context.Context, wrapper any) (any, bool, error) {
		m, err := md.Decode(ctx, wrapper)
		if err != nil {
			return nil, false, err
		}
		if !m.Present {
			return nil, true, nil
		}
		return m.Value, true, nil
	}}
}

// OptionalMaybe marks a field that may be absent; the decoded entry is
// a bicodec.Maybe[any] making presence explicit to the caller.
func OptionalMaybe[T any](d Decoder[T]) AnyDecoder {
	md := Maybe(d)
	return AnyDecoder{optional: func(ctx context.Context, wrapper any) (any, bool, error) {
		m, err := md.Decode(ctx, wrapper)
		if err != nil {
			return nil, false, err
		}
		if !m.Present {
			return bicodec.Nothing[any](), true, nil
		}
		return bicodec.Just[any](m.Value), true, nil
	}}
}

// OptionalDefault marks a field that may be absent; an absent key
// decodes to def, so the entry is always present and always typed T.
func OptionalDefault[T any](def T, d Decoder[T]) AnyDecoder {
	md := Maybe(d)
	return AnyDecoder{optional: func(ctx context.Context, wrapper any) (any, bool, error) {
		m, err := md.Decode(ctx, wrapper)
		if err != nil {
			return nil, false, err
		}
		return m.Or(def), true, nil
	}}
}

// ObjectBuilder accumulates field definitions in declaration order.
type ObjectBuilder struct {
	names  []string
	fields map[string]AnyDecoder
}

// Object creates a new object decoder builder. Decoding is open:
// keys without a declared field are ignored.
func Object() *ObjectBuilder {
	return &ObjectBuilder{fields: map[string]AnyDecoder{}}
}

// Field registers a field under the given key. Registering the same key
// twice replaces the earlier definition but keeps its position.
func (b *ObjectBuilder) Field(name string, d AnyDecoder) *ObjectBuilder {
	if _, seen := b.fields[name]; !seen {
		b.names = append(b.names, name)
	}
	b.fields[name] = d
	return b
}

// Build returns the object decoder. Fields decode in declaration order
// and the first failing field aborts the whole object, its name
// prepended to the failure path.
func (b *ObjectBuilder) Build() Decoder[map[string]any] {
	names := append([]string(nil), b.names...)
	fields := make(map[string]AnyDecoder, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	return New(func(ctx context.Context, v any) (map[string]any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, failExpected("object", v)
		}
		if m == nil {
			// A typed nil map would read as "found object".
			return nil, failExpected("object", nil)
		}
		out := make(map[string]any, len(names))
		for _, name := range names {
			fd := fields[name]
			if fd.required != nil {
				dv, err := fd.required(ctx, m[name])
				if err != nil {
					return nil, prependField(err, name)
				}
				out[name] = dv
				continue
			}
			dv, emit, err := fd.optional(ctx, presenceWrapper(m, name))
			if err != nil {
				return nil, prependField(err, name)
			}
			if emit {
				out[name] = dv
			}
		}
		return out, nil
	})
}

// presenceWrapper lifts key presence into the Maybe wire protocol so
// the optional flavors can share the plain Maybe decoder.
func presenceWrapper(m map[string]any, key string) any {
	if raw, ok := m[key]; ok {
		return map[string]any{bicodec.MaybeJustKey: raw}
	}
	return map[string]any{bicodec.MaybeNothingKey: map[string]any{}}
}

func prependField(err error, name string) error {
	if f, ok := bicodec.AsFailure(err); ok {
		return f.At(name)
	}
	return err
}
