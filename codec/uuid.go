package codec

import (
	"github.com/google/uuid"

	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/schema"
)

// UUID returns a Schema converting between canonical UUID strings and
// uuid.UUID values. Decoding accepts the formats uuid.Parse accepts;
// encoding always emits the canonical lowercase hyphenated form.
func UUID() schema.Schema[uuid.UUID] {
	return schema.Chain(schema.String(),
		func(s string) decode.Decoder[uuid.UUID] {
			u, err := uuid.Parse(s)
			if err != nil {
				return decode.Fail[uuid.UUID]("invalid UUID \"" + s + "\"")
			}
			return decode.Succeed(u)
		},
		uuid.UUID.String,
	)
}
