package hash

import (
	"bytes"
	"testing"
)

func TestHMACSHA256(t *testing.T) {
	mac := NewHMACSHA256("test-secret")

	t.Run("hash is deterministic hex", func(t *testing.T) {
		first, err := mac.Hash("1.2.3.4")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		second, err := mac.Hash("1.2.3.4")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Fatalf("Hash() not deterministic: %q vs %q", first, second)
		}
		if len(first) != 64 {
			t.Fatalf("digest length = %d, want 64 hex chars", len(first))
		}
		for _, c := range first {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				t.Fatalf("digest %q is not lowercase hex", first)
			}
		}
	})

	t.Run("different inputs produce different digests", func(t *testing.T) {
		a, _ := mac.Hash("jane@example.com")
		b, _ := mac.Hash("john@example.com")
		if bytes.Equal(a, b) {
			t.Fatal("distinct inputs share a digest")
		}
	})

	t.Run("different secrets produce different digests", func(t *testing.T) {
		other := NewHMACSHA256("other-secret")
		a, _ := mac.Hash("jane@example.com")
		b, _ := other.Hash("jane@example.com")
		if bytes.Equal(a, b) {
			t.Fatal("distinct secrets share a digest")
		}
	})

	t.Run("verify matches hash output", func(t *testing.T) {
		digest, err := mac.Hash("1.2.3.4")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}

		if !mac.Verify(string(digest), "1.2.3.4") {
			t.Fatal("Verify() = false for matching input")
		}
		if mac.Verify(string(digest), "4.3.2.1") {
			t.Fatal("Verify() = true for mismatched input")
		}
	})
}

func TestBcrypt(t *testing.T) {
	hasher := NewBcrypt(4, "test-pepper")

	digest, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !hasher.Verify(string(digest), "correct-password") {
		t.Fatal("Verify() = false for the hashed password")
	}
	if hasher.Verify(string(digest), "wrong-password") {
		t.Fatal("Verify() = true for a wrong password")
	}

	t.Run("pepper participates in the hash", func(t *testing.T) {
		other := NewBcrypt(4, "another-pepper")
		if other.Verify(string(digest), "correct-password") {
			t.Fatal("Verify() = true across different peppers")
		}
	})
}
