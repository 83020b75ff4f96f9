// Package bicodec holds the shared substrate for the decode, encode and
// schema packages: the failure path model, the decode failure error, the
// encode invariant panic payload, the Maybe presence wrapper and the
// fixed-size tuple types.
//
// The three layers build on it as follows. decode.Decoder[T] converts an
// untyped JSON-like value (nil, string, float64, bool, []any,
// map[string]any) into a typed T, reporting malformed input as a
// *Failure. encode.Encoder[T] converts a typed T back into the untyped
// representation and is total: an encoder given a value that violates
// its schema's invariants panics with *EncodeError, it never returns an
// error. schema.Schema[T] pairs the two so call sites declare one
// artifact per type.
//
// Design policy:
// - Keep only the shared value substrate in the root package.
// - Place decoders under decode/, encoders under encode/, paired
//   combinators under schema/, ready-made domain schemas under codec/,
//   byte-format adapters under wire/, and the CLI under cmd/bicodec.
// - Prefer black-box testing against public APIs.
//
// Every artifact is immutable once constructed and safe for concurrent
// use from any number of goroutines.
package bicodec
