package bicodec

// Maybe represents explicit presence of a value, distinct from JSON
// null. On the wire it is written as {"just": V} when present and
// {"nothing": {}} when absent; the object combinators also use it
// internally to signal field presence, in which case the wrapper never
// appears in the emitted object shape, only the key's presence or
// absence does.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] { return Maybe[T]{Value: v, Present: true} }

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] { return Maybe[T]{} }

// Or returns the wrapped value when present, def otherwise.
func (m Maybe[T]) Or(def T) T {
	if m.Present {
		return m.Value
	}
	return def
}

// Wire field names of the explicit presence protocol.
const (
	MaybeJustKey    = "just"
	MaybeNothingKey = "nothing"
)
