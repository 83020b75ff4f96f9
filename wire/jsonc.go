package wire

import (
	"context"

	"github.com/tidwall/jsonc"

	"github.com/reoring/bicodec/schema"
)

// UnmarshalJSONC strips JSONC extensions (// line comments, /* block
// comments */, trailing commas) from data, then decodes the plain JSON
// against the schema. The format is for documents authored on disk by
// people; output is always plain JSON.
func UnmarshalJSONC[T any](ctx context.Context, s schema.Schema[T], data []byte) (T, error) {
	return UnmarshalJSON(ctx, s, jsonc.ToJSON(data))
}
