package security

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "s3cret!" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}
	if !h.Verify("s3cret!", hash) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("s3cret", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(4)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same plaintext are identical")
	}
	if !h.Verify("same", a) || !h.Verify("same", b) {
		t.Fatalf("both hashes must verify the original plaintext")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)

	for _, malformed := range []string{"", "not-a-hash", "$2a$broken"} {
		if h.Verify("anything", malformed) {
			t.Fatalf("malformed hash %q verified", malformed)
		}
	}
}

func TestBcryptHasher_EmptyPlaintext(t *testing.T) {
	h := NewBcryptHasher(4)

	// Empty passwords hash normally; rejecting them is request
	// validation's job.
	hash, err := h.Hash("")
	if err != nil {
		t.Fatalf("hash empty: %v", err)
	}
	if !h.Verify("", hash) {
		t.Fatalf("empty plaintext did not round-trip")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != DefaultCost {
		t.Fatalf("expected fallback cost %d, got %d", DefaultCost, got)
	}
	if got := NewBcryptHasher(99).cost; got != DefaultCost {
		t.Fatalf("expected fallback cost %d, got %d", DefaultCost, got)
	}
	if got := NewBcryptHasher(12).cost; got != 12 {
		t.Fatalf("expected cost 12, got %d", got)
	}
}
