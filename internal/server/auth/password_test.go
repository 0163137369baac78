package auth

import "testing"

func TestHashPassword_SaltsEachCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == "pw123" {
		t.Fatal("digest must not equal the plaintext")
	}
	if h1 == h2 {
		t.Fatal("two digests of the same input must differ (random salt)")
	}
	if !CheckPassword("pw123", h1) || !CheckPassword("pw123", h2) {
		t.Fatal("both digests must verify against the original password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("wrong", h) {
		t.Fatal("mismatching password must not verify")
	}
}

func TestHashPassword_EmptyAllowed(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("")
	if err != nil {
		t.Fatalf("HashPassword error for empty password: %v", err)
	}
	if !CheckPassword("", h) {
		t.Fatal("empty password must verify against its own digest")
	}
	if CheckPassword("x", h) {
		t.Fatal("non-empty password must not verify against empty digest")
	}
}
