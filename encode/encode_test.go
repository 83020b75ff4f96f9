package encode_test

import (
	"math"
	"reflect"
	"testing"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/encode"
)

// mustPanicEncode runs fn and asserts it panics with an *EncodeError
// carrying the given message.
func mustPanicEncode(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		ee, ok := r.(*bicodec.EncodeError)
		if !ok {
			t.Fatalf("expected *EncodeError, got %T: %v", r, r)
		}
		if ee.Message != want {
			t.Fatalf("expected %q, got %q", want, ee.Message)
		}
	}()
	fn()
}

func TestPrimitives(t *testing.T) {
	if got := encode.String().Encode("hi"); got != "hi" {
		t.Fatalf("string: got %v", got)
	}
	if got := encode.Bool().Encode(true); got != true {
		t.Fatalf("bool: got %v", got)
	}
	if got := encode.Number().Encode(2.5); got != 2.5 {
		t.Fatalf("number: got %v", got)
	}
	tree := map[string]any{"a": []any{1.0, nil}}
	if got := encode.JSON().Encode(tree); !reflect.DeepEqual(got, tree) {
		t.Fatalf("json: got %v", got)
	}
}

func TestNumber_NonFinitePanics(t *testing.T) {
	mustPanicEncode(t, "cannot encode non-finite number NaN", func() {
		encode.Number().Encode(math.NaN())
	})
	mustPanicEncode(t, "cannot encode non-finite number +Inf", func() {
		encode.Number().Encode(math.Inf(1))
	})
}

func TestStringEnum_PanicsOutsideValues(t *testing.T) {
	e := encode.StringEnum("a", "b")
	if got := e.Encode("a"); got != "a" {
		t.Fatalf("got %v", got)
	}
	mustPanicEncode(t, `"z" is not a valid value for enum`, func() {
		e.Encode("z")
	})
}

func TestContramap(t *testing.T) {
	type port struct{ n float64 }
	e := encode.Contramap(encode.Number(), func(p port) float64 { return p.n })
	if got := e.Encode(port{n: 8080}); got != 8080.0 {
		t.Fatalf("got %v", got)
	}
}

func TestCollections(t *testing.T) {
	if got := encode.Array(encode.Number()).Encode([]float64{1, 2}); !reflect.DeepEqual(got, []any{1.0, 2.0}) {
		t.Fatalf("array: got %v", got)
	}
	got := encode.ObjectMap(encode.String()).Encode(map[string]string{"a": "x"})
	if !reflect.DeepEqual(got, map[string]any{"a": "x"}) {
		t.Fatalf("object map: got %v", got)
	}
	p := encode.Pair(encode.String(), encode.Number()).
		Encode(bicodec.Pair[string, float64]{First: "a", Second: 1})
	if !reflect.DeepEqual(p, []any{"a", 1.0}) {
		t.Fatalf("pair: got %v", p)
	}
	tr := encode.Triple(encode.String(), encode.Number(), encode.Bool()).
		Encode(bicodec.Triple[string, float64, bool]{First: "a", Second: 1, Third: true})
	if !reflect.DeepEqual(tr, []any{"a", 1.0, true}) {
		t.Fatalf("triple: got %v", tr)
	}
}

func TestMaybe_WireShape(t *testing.T) {
	e := encode.Maybe(encode.String())
	if got := e.Encode(bicodec.Just("v")); !reflect.DeepEqual(got, map[string]any{"just": "v"}) {
		t.Fatalf("just: got %v", got)
	}
	want := map[string]any{"nothing": map[string]any{}}
	if got := e.Encode(bicodec.Nothing[string]()); !reflect.DeepEqual(got, want) {
		t.Fatalf("nothing: got %v", got)
	}
}

func TestNullable(t *testing.T) {
	e := encode.Nullable(encode.String())
	if got := e.Encode(nil); got != nil {
		t.Fatalf("nil: got %v", got)
	}
	s := "x"
	if got := e.Encode(&s); got != "x" {
		t.Fatalf("value: got %v", got)
	}
}

func TestObject_OmissionAndEmission(t *testing.T) {
	e := encode.Object().
		Field("id", encode.AnyOf(encode.String())).
		Field("opt", encode.Optional(encode.String())).
		Field("nul", encode.OptionalNullable(encode.String())).
		Field("may", encode.OptionalMaybe(encode.String())).
		Build()

	got := e.Encode(map[string]any{
		"id":  "abc",
		"nul": nil,
		"may": bicodec.Nothing[any](),
	})
	want := map[string]any{"id": "abc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("absent fields must be omitted, got %v", got)
	}

	got = e.Encode(map[string]any{
		"id":  "abc",
		"opt": "x",
		"nul": "y",
		"may": bicodec.Just[any]("z"),
	})
	want = map[string]any{"id": "abc", "opt": "x", "nul": "y", "may": "z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("present fields lost, got %v", got)
	}
}

func TestObject_RequiredTypeMismatchPanics(t *testing.T) {
	e := encode.Object().Field("id", encode.AnyOf(encode.String())).Build()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		} else if _, ok := r.(*bicodec.EncodeError); !ok {
			t.Fatalf("expected *EncodeError, got %T", r)
		}
	}()
	e.Encode(map[string]any{"id": 42})
}

func TestOneOf_Dispatch(t *testing.T) {
	quoted := encode.New(func(s string) any { return "<" + s + ">" })
	plain := encode.String()
	e := encode.OneOf(func(v string) encode.Encoder[string] {
		if v == "special" {
			return quoted
		}
		return plain
	})
	if got := e.Encode("special"); got != "<special>" {
		t.Fatalf("got %v", got)
	}
	if got := e.Encode("normal"); got != "normal" {
		t.Fatalf("got %v", got)
	}
}

func TestStringified(t *testing.T) {
	e := encode.Stringified(encode.Number())
	if got := e.Encode(42); got != "42" {
		t.Fatalf("got %v", got)
	}
}

func TestJSONTree_CopiesContainers(t *testing.T) {
	in := map[string]any{"a": []any{1.0, "x"}, "b": nil}
	got := encode.JSONTree().Encode(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %v", got)
	}
	// Containers are rebuilt, not aliased.
	got.(map[string]any)["a"].([]any)[0] = 99.0
	if in["a"].([]any)[0] != 1.0 {
		t.Fatalf("input aliased by output")
	}
}

func TestRecursive(t *testing.T) {
	// Encode a number slice as a nested cons-list.
	list := encode.Recursive(func(self encode.Encoder[[]float64]) encode.Encoder[[]float64] {
		return encode.New(func(xs []float64) any {
			if len(xs) == 0 {
				return nil
			}
			return map[string]any{
				"head": encode.Number().Encode(xs[0]),
				"tail": self.Encode(xs[1:]),
			}
		})
	})

	got := list.Encode([]float64{1, 2})
	want := map[string]any{"head": 1.0, "tail": map[string]any{"head": 2.0, "tail": nil}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestRecursive_PlaceholderBeforeInitialization(t *testing.T) {
	// Invoking the placeholder while build is still running panics
	// with an EncodeError, not a stack overflow.
	var recovered any
	encode.Recursive(func(self encode.Encoder[any]) encode.Encoder[any] {
		func() {
			defer func() { recovered = recover() }()
			self.Encode(nil)
		}()
		return encode.JSON()
	})
	ee, ok := recovered.(*bicodec.EncodeError)
	if !ok {
		t.Fatalf("expected *EncodeError, got %T: %v", recovered, recovered)
	}
	if ee.Message != "recursive encoder invoked before initialization" {
		t.Fatalf("unexpected message: %q", ee.Message)
	}
}
