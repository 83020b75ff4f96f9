package decode

import (
	"context"
	"sort"
	"strconv"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/i18n"
)

// Array decodes every element with the same decoder, in order,
// stopping at the first failing element. The failing index is
// prepended to the failure path.
func Array[T any](d Decoder[T]) Decoder[[]T] {
	return New(func(ctx context.Context, v any) ([]T, error) {
		xs, ok := v.([]any)
		if !ok {
			return nil, failExpected("array", v)
		}
		out := make([]T, 0, len(xs))
		for i, x := range xs {
			tv, err := d.Decode(ctx, x)
			if err != nil {
				return nil, prependField(err, strconv.Itoa(i))
			}
			out = append(out, tv)
		}
		return out, nil
	})
}

// ObjectMap decodes an arbitrary-key object whose values all share one
// decoder. Keys are visited in sorted order so the first failing key is
// deterministic; its name is prepended to the failure path.
func ObjectMap[T any](d Decoder[T]) Decoder[map[string]T] {
	return New(func(ctx context.Context, v any) (map[string]T, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, failExpected("object", v)
		}
		if m == nil {
			// A typed nil map would read as "found object".
			return nil, failExpected("object", nil)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]T, len(m))
		for _, k := range keys {
			tv, err := d.Decode(ctx, m[k])
			if err != nil {
				return nil, prependField(err, k)
			}
			out[k] = tv
		}
		return out, nil
	})
}

// Pair decodes a two-element array positionally.
func Pair[A, B any](da Decoder[A], db Decoder[B]) Decoder[bicodec.Pair[A, B]] {
	return New(func(ctx context.Context, v any) (bicodec.Pair[A, B], error) {
		var zero bicodec.Pair[A, B]
		xs, err := fixedArray(v, 2)
		if err != nil {
			return zero, err
		}
		a, err := da.Decode(ctx, xs[0])
		if err != nil {
			return zero, prependField(err, "0")
		}
		b, err := db.Decode(ctx, xs[1])
		if err != nil {
			return zero, prependField(err, "1")
		}
		return bicodec.Pair[A, B]{First: a, Second: b}, nil
	})
}

// Triple decodes a three-element array positionally.
func Triple[A, B, C any](da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[bicodec.Triple[A, B, C]] {
	return New(func(ctx context.Context, v any) (bicodec.Triple[A, B, C], error) {
		var zero bicodec.Triple[A, B, C]
		xs, err := fixedArray(v, 3)
		if err != nil {
			return zero, err
		}
		a, err := da.Decode(ctx, xs[0])
		if err != nil {
			return zero, prependField(err, "0")
		}
		b, err := db.Decode(ctx, xs[1])
		if err != nil {
			return zero, prependField(err, "1")
		}
		c, err := dc.Decode(ctx, xs[2])
		if err != nil {
			return zero, prependField(err, "2")
		}
		return bicodec.Triple[A, B, C]{First: a, Second: b, Third: c}, nil
	})
}

func fixedArray(v any, want int) ([]any, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, failExpected("array", v)
	}
	if len(xs) != want {
		return nil, bicodec.NewFailure(bicodec.CodeInvalidLength,
			i18n.T(bicodec.CodeInvalidLength, map[string]string{
				"want": strconv.Itoa(want),
				"got":  strconv.Itoa(len(xs)),
			}))
	}
	return xs, nil
}
