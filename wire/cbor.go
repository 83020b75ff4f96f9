package wire

import (
	"context"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/reoring/bicodec/schema"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Schemas only see string-keyed objects. When the decoder's
		// target is any, it must pick a concrete Go map type; the CBOR
		// default is map[interface{}]interface{} (CBOR allows
		// non-string keys), which the decode package rejects as
		// non-JSON. Force map[string]any instead.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// UnmarshalCBOR parses CBOR bytes and decodes the resulting tree
// against the schema. CBOR integers materialize as uint64/int64 and
// coerce through the number decoder.
func UnmarshalCBOR[T any](ctx context.Context, s schema.Schema[T], data []byte) (T, error) {
	var raw any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, err
	}
	return schema.Decode(ctx, s, raw)
}

// MarshalCBOR encodes the value through the schema and serializes the
// wire tree with Core Deterministic Encoding.
func MarshalCBOR[T any](s schema.Schema[T], v T) ([]byte, error) {
	return encMode.Marshal(schema.Encode(s, v))
}
