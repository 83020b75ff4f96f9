package codec

import (
	"time"

	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/schema"
)

// Duration returns a Schema converting between Go duration strings
// ("1h30m", "250ms") and time.Duration values.
func Duration() schema.Schema[time.Duration] {
	return schema.Chain(schema.String(),
		func(s string) decode.Decoder[time.Duration] {
			d, err := time.ParseDuration(s)
			if err != nil {
				return decode.Fail[time.Duration]("invalid duration \"" + s + "\"")
			}
			return decode.Succeed(d)
		},
		time.Duration.String,
	)
}
