package harpocrates

import "testing"

func TestNewHandle(t *testing.T) {
	h1 := NewHandle(CipherText("ciphertext-1"))
	h2 := NewHandle(CipherText("ciphertext-1"))
	h3 := NewHandle(CipherText("ciphertext-2"))

	if h1 != h2 {
		t.Fatalf("handle derivation is not deterministic")
	}
	if h1 == h3 {
		t.Fatalf("distinct ciphertexts share a handle")
	}
}

func TestHandle_Empty(t *testing.T) {
	var zero Handle
	if !zero.Empty() {
		t.Fatalf("zero handle is not empty")
	}
	if NewHandle(CipherText("ct")).Empty() {
		t.Fatalf("derived handle is empty")
	}
}
