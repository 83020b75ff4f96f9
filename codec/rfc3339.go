// Package codec provides ready-made domain schemas built with
// schema.Chain: the wire side is a plain string, the domain side a
// validated Go type, and decoding may fail dynamically while encoding
// is canonical text.
package codec

import (
	"time"

	"github.com/reoring/bicodec/decode"
	"github.com/reoring/bicodec/schema"
)

// TimeRFC3339 returns a Schema converting between RFC3339 strings and
// time.Time. Encoding normalizes to UTC and formats with RFC3339Nano
// (Go trims trailing zeros), so the output is canonical.
func TimeRFC3339() schema.Schema[time.Time] {
	return schema.Chain(schema.String(),
		func(s string) decode.Decoder[time.Time] {
			t, err := parseRFC3339(s)
			if err != nil {
				return decode.Fail[time.Time]("invalid RFC3339 time \"" + s + "\"")
			}
			return decode.Succeed(t)
		},
		formatRFC3339Canonical,
	)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
