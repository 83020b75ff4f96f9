package bicodec_test

import (
	"errors"
	"fmt"
	"testing"

	bicodec "github.com/reoring/bicodec"
)

func TestPath_StringAndPrepend(t *testing.T) {
	p := bicodec.Path{"b", "c"}
	if got := p.String(); got != "b.c" {
		t.Fatalf("expected b.c, got %q", got)
	}
	q := p.Prepend("a")
	if got := q.String(); got != "a.b.c" {
		t.Fatalf("expected a.b.c, got %q", got)
	}
	// Prepend must not mutate the receiver.
	if got := p.String(); got != "b.c" {
		t.Fatalf("receiver mutated: %q", got)
	}
}

func TestFailure_ErrorRendering(t *testing.T) {
	f := bicodec.NewFailure(bicodec.CodeInvalidType, "expected string but found number")
	if got := f.Error(); got != "expected string but found number. When parsing: " {
		t.Fatalf("unexpected top-level rendering: %q", got)
	}
	g := f.At("b").At("a")
	if got := g.Error(); got != "expected string but found number. When parsing: a.b" {
		t.Fatalf("unexpected nested rendering: %q", got)
	}
	// At returns copies.
	if len(f.Path) != 0 {
		t.Fatalf("At mutated the original failure: %v", f.Path)
	}
}

func TestAsFailure(t *testing.T) {
	f := bicodec.NewFailure(bicodec.CodeInvalidEnum, "nope")
	wrapped := fmt.Errorf("while loading: %w", f)
	got, ok := bicodec.AsFailure(wrapped)
	if !ok || got.Code != bicodec.CodeInvalidEnum {
		t.Fatalf("expected to unwrap the failure, got %v ok=%v", got, ok)
	}
	if _, ok := bicodec.AsFailure(errors.New("plain")); ok {
		t.Fatalf("plain error should not convert")
	}
	if _, ok := bicodec.AsFailure(nil); ok {
		t.Fatalf("nil error should not convert")
	}
}

func TestMaybe_Or(t *testing.T) {
	if got := bicodec.Just(3).Or(7); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := bicodec.Nothing[int]().Or(7); got != 7 {
		t.Fatalf("expected default 7, got %v", got)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"x", "string"},
		{3.5, "number"},
		{int64(3), "number"},
		{true, "boolean"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
	}
	for _, c := range cases {
		if got := bicodec.KindOf(c.in); got != c.want {
			t.Fatalf("KindOf(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestAsNumber(t *testing.T) {
	if f, ok := bicodec.AsNumber(int(7)); !ok || f != 7 {
		t.Fatalf("int coercion failed: %v %v", f, ok)
	}
	if f, ok := bicodec.AsNumber(uint16(9)); !ok || f != 9 {
		t.Fatalf("uint coercion failed: %v %v", f, ok)
	}
	if _, ok := bicodec.AsNumber("7"); ok {
		t.Fatalf("string must not coerce")
	}
}
