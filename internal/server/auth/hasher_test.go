package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "pw1" || hash == "" {
		t.Fatalf("hash must not equal plaintext: %q", hash)
	}
	if !h.Verify("pw1", hash) {
		t.Fatal("Verify must accept the original password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (salt)")
	}
	if !h.Verify("pw1", h1) || !h.Verify("pw1", h2) {
		t.Fatal("Verify must accept both salted hashes")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Verify("wrong", hash) {
		t.Fatal("Verify must reject a wrong password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	if h.Verify("pw1", "not-a-bcrypt-hash") {
		t.Fatal("Verify must resolve malformed hash to false")
	}
	if h.Verify("pw1", "") {
		t.Fatal("Verify must resolve empty hash to false")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewHasher(100)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}
