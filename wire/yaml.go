package wire

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/reoring/bicodec/schema"
)

// UnmarshalYAML parses a YAML document and decodes the resulting tree
// against the schema. Maps are normalized to string keys (YAML permits
// arbitrary key types; non-string keys are dropped) so the decoded
// tree matches the JSON data model.
func UnmarshalYAML[T any](ctx context.Context, s schema.Schema[T], data []byte) (T, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, err
	}
	return schema.Decode(ctx, s, yamlNormalizeValue(raw))
}

// MarshalYAML encodes the value through the schema and serializes the
// wire tree as YAML.
func MarshalYAML[T any](s schema.Schema[T], v T) ([]byte, error) {
	return yaml.Marshal(schema.Encode(s, v))
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return v
	}
}
