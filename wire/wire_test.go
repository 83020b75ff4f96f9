package wire_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/bicodec/schema"
	"github.com/reoring/bicodec/wire"
)

func widgetSchema() schema.Schema[map[string]any] {
	return schema.Object().
		Field("id", schema.Of(schema.String())).
		Field("count", schema.OptionalDefault(0.0, schema.Number())).
		Field("tags", schema.Of(schema.Array(schema.String()))).
		Build()
}

func TestJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := widgetSchema()

	got, err := wire.UnmarshalJSON(ctx, s, []byte(`{"id":"w1","tags":["a"],"junk":1}`))
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if got["id"] != "w1" || got["count"] != 0.0 {
		t.Fatalf("unexpected value: %v", got)
	}
	if _, ok := got["junk"]; ok {
		t.Fatalf("unknown key leaked: %v", got)
	}

	data, err := wire.MarshalJSON(s, got)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	again, err := wire.UnmarshalJSON(ctx, s, data)
	if err != nil || !reflect.DeepEqual(again, got) {
		t.Fatalf("round trip unstable: %v err=%v", again, err)
	}
}

func TestJSON_UnmarshalFailurePath(t *testing.T) {
	ctx := context.Background()
	s := widgetSchema()

	_, err := wire.UnmarshalJSON(ctx, s, []byte(`{"id":1,"tags":[]}`))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "When parsing: id") {
		t.Fatalf("failure should name the field: %v", err)
	}

	if _, err := wire.UnmarshalJSON(ctx, s, []byte(`{broken`)); err == nil {
		t.Fatalf("malformed JSON must fail")
	}
}

func TestJSONC_StripsComments(t *testing.T) {
	ctx := context.Background()
	s := widgetSchema()

	src := []byte(`{
  // inline documentation
  "id": "w1",
  "tags": ["a", "b"], // trailing comment
}`)
	got, err := wire.UnmarshalJSONC(ctx, s, src)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if got["id"] != "w1" || len(got["tags"].([]string)) != 2 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := widgetSchema()

	src := []byte("id: w1\ncount: 3\ntags:\n  - a\n")
	got, err := wire.UnmarshalYAML(ctx, s, src)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	// YAML integers coerce into the number type.
	if got["count"] != 3.0 {
		t.Fatalf("unexpected count: %v (%T)", got["count"], got["count"])
	}

	data, err := wire.MarshalYAML(s, got)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	again, err := wire.UnmarshalYAML(ctx, s, data)
	if err != nil || !reflect.DeepEqual(again, got) {
		t.Fatalf("round trip unstable: %v err=%v", again, err)
	}
}

func TestCBOR_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := widgetSchema()

	in := map[string]any{"id": "w1", "count": 2.0, "tags": []string{"a"}}
	data, err := wire.MarshalCBOR(s, in)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	got, err := wire.UnmarshalCBOR(ctx, s, data)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if got["id"] != "w1" || got["count"] != 2.0 {
		t.Fatalf("unexpected value: %v", got)
	}
	tags := got["tags"].([]string)
	if len(tags) != 1 || tags[0] != "a" {
		t.Fatalf("unexpected tags: %v", got["tags"])
	}
}
