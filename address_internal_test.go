package harpocrates

import "testing"

func TestToAddress(t *testing.T) {
	addr, err := ToAddress("0x1234567890123456789012345678901234567890")
	if err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
	if addr.String() != "0x1234567890123456789012345678901234567890" {
		t.Fatalf("address does not round-trip. got=%s", addr.String())
	}
}

func TestToAddress_NoPrefix(t *testing.T) {
	withPrefix, _ := ToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	noPrefix, err := ToAddress("abcdefabcdefabcdefabcdefabcdefabcdefabcd")
	if err != nil {
		t.Fatalf("unprefixed address rejected: %v", err)
	}
	if withPrefix != noPrefix {
		t.Fatalf("prefix changes parse result. got=%s, expected=%s", noPrefix, withPrefix)
	}
}

func TestToAddress_Invalid(t *testing.T) {
	if _, err := ToAddress("0x1234"); err == nil {
		t.Fatalf("short address accepted")
	}
	if _, err := ToAddress("0xzz34567890123456789012345678901234567890"); err == nil {
		t.Fatalf("non-hex address accepted")
	}
}
