package secrets

import (
	"bytes"
	"strings"
	"testing"
)

func TestCipherRoundTrip(t *testing.T) {
	c, err := New(strings.Repeat("k", 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sealed, err := c.Seal([]byte(`{"grossPay":3000}`))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	if bytes.Contains(sealed, []byte("grossPay")) {
		t.Fatal("sealed payload must not contain plaintext")
	}

	plain, err := c.Open(sealed)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if string(plain) != `{"grossPay":3000}` {
		t.Fatalf("unexpected plaintext: %s", plain)
	}
}

func TestCipherPassThroughWithoutKey(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Configured() {
		t.Fatal("expected unconfigured cipher")
	}

	sealed, err := c.Seal([]byte("plain"))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	if string(sealed) != "plain" {
		t.Fatalf("expected pass-through, got %q", sealed)
	}
}

func TestCipherRejectsShortKey(t *testing.T) {
	if _, err := New("too-short"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestCipherOpenRejectsTruncatedPayload(t *testing.T) {
	c, err := New(strings.Repeat("k", 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Open([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}
