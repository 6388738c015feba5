package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("s3cret!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatalf("hash must not equal the plaintext")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != Cost {
		t.Fatalf("expected cost %d, got %d", Cost, cost)
	}

	if !Compare("s3cret!", hash) {
		t.Fatalf("expected match")
	}
	if Compare("wrong", hash) {
		t.Fatalf("expected mismatch")
	}
}

func TestHash_Salted(t *testing.T) {
	a, _ := Hash("same")
	b, _ := Hash("same")
	if a == b {
		t.Fatalf("two hashes of the same password should differ")
	}
}

func TestCompare_MalformedHash(t *testing.T) {
	if Compare("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not match")
	}
	if Compare("", "") {
		t.Fatalf("empty hash must not match")
	}
}
