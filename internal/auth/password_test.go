package auth

import "testing"

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ, both were %q", first)
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !CheckPassword("correct horse", digest) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong horse", digest) {
		t.Fatal("expected non-matching password to fail")
	}
	if CheckPassword("correct horse", "not-a-bcrypt-digest") {
		t.Fatal("expected garbage digest to fail")
	}
}
