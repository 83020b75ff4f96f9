package codec

import (
	"context"
	"testing"
)

func TestUUID_RoundTrip(t *testing.T) {
	c := UUID()
	ctx := context.Background()

	in := "9b2b6f5e-3f0a-4c8f-9a35-2f6c9a1f0d42"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out := c.Encode(got); out != in {
		t.Fatalf("roundtrip mismatch: %v != %s", out, in)
	}

	// Uppercase input canonicalizes to lowercase on the way out.
	got, err = c.Decode(ctx, "9B2B6F5E-3F0A-4C8F-9A35-2F6C9A1F0D42")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out := c.Encode(got); out != in {
		t.Fatalf("expected lowercase canonical form, got %v", out)
	}
}

func TestUUID_Rejects(t *testing.T) {
	c := UUID()
	ctx := context.Background()

	if _, err := c.Decode(ctx, "not-a-uuid"); err == nil {
		t.Fatalf("expected failure")
	}
}
