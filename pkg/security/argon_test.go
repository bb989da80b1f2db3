package security

import (
	"strings"
	"testing"
)

func TestArgonHashVerify(t *testing.T) {
	a := New()

	hash, err := a.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash %q is not in PHC format", hash)
	}

	ok, err := a.Verify("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected the correct password")
	}

	ok, err = a.Verify("wrong password", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a wrong password")
	}
}

func TestArgonHashUniqueSalts(t *testing.T) {
	a := New()

	h1, err := a.Hash("same password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	h2, err := a.Hash("same password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestArgonVerifyMalformed(t *testing.T) {
	a := New()

	for _, encoded := range []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=65536,t=3,p=2$bad",
	} {
		if _, err := a.Verify("anything", encoded); err == nil {
			t.Errorf("Verify accepted malformed hash %q", encoded)
		}
	}
}
