package encode

import (
	"sort"

	bicodec "github.com/reoring/bicodec"
)

// Array encodes every element with the same encoder, in order.
func Array[T any](e Encoder[T]) Encoder[[]T] {
	return New(func(vs []T) any {
		out := make([]any, 0, len(vs))
		for _, v := range vs {
			out = append(out, e.Encode(v))
		}
		return out
	})
}

// ObjectMap encodes an arbitrary-key map whose values share one
// encoder. Keys are visited in sorted order for deterministic output.
func ObjectMap[T any](e Encoder[T]) Encoder[map[string]T] {
	return New(func(m map[string]T) any {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(m))
		for _, k := range keys {
			out[k] = e.Encode(m[k])
		}
		return out
	})
}

// Pair encodes a fixed tuple as a two-element array.
func Pair[A, B any](ea Encoder[A], eb Encoder[B]) Encoder[bicodec.Pair[A, B]] {
	return New(func(p bicodec.Pair[A, B]) any {
		return []any{ea.Encode(p.First), eb.Encode(p.Second)}
	})
}

// Triple encodes a fixed tuple as a three-element array.
func Triple[A, B, C any](ea Encoder[A], eb Encoder[B], ec Encoder[C]) Encoder[bicodec.Triple[A, B, C]] {
	return New(func(t bicodec.Triple[A, B, C]) any {
		return []any{ea.Encode(t.First), eb.Encode(t.Second), ec.Encode(t.Third)}
	})
}
