package codec

import "testing"

func TestEncode(t *testing.T) {
	value, err := Encode("ABC")
	if err != nil {
		t.Fatalf("encode failed with err: %v", err)
	}
	// 'A'<<16 | 'B'<<8 | 'C'
	if value != 0x414243 {
		t.Fatalf("unexpected packed value. got=%#x, expected=%#x", value, 0x414243)
	}
}

func TestEncode_TooLong(t *testing.T) {
	if _, err := Encode("ABCDE"); !IsErrTooLong(err) {
		t.Fatalf("five byte text accepted. got=%v", err)
	}
	// multi-byte characters count in bytes, not runes
	if _, err := Encode("한국"); !IsErrTooLong(err) {
		t.Fatalf("six byte text accepted. got=%v", err)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, text := range []string{"A", "no", "ABC", "BAC", "DEF", "quiz", "été"} {
		value, err := Encode(text)
		if err != nil {
			t.Fatalf("encode %q failed with err: %v", text, err)
		}
		if decoded := Decode(value); decoded != text {
			t.Fatalf("round trip broken. got=%q, expected=%q", decoded, text)
		}
	}
}

func TestDecode_Zero(t *testing.T) {
	if decoded := Decode(0); decoded != "" {
		t.Fatalf("zero slot decodes to %q, expected empty", decoded)
	}
}

// Texts whose packing starts with a 0x00 byte lose that byte on decode.
// This is a known boundary of the minimal-byte reconstruction, asserted
// here so a change in behavior is caught, not hidden.
func TestCodec_LeadingZeroByte(t *testing.T) {
	text := "\x00AB"
	value, err := Encode(text)
	if err != nil {
		t.Fatalf("encode failed with err: %v", err)
	}

	decoded := Decode(value)
	if decoded == text {
		t.Fatalf("leading zero byte unexpectedly survived the round trip")
	}
	if decoded != "AB" {
		t.Fatalf("unexpected reconstruction. got=%q, expected=%q", decoded, "AB")
	}
}

// Interior zero bytes are preserved: only leading zeros fall outside the
// significant bits.
func TestCodec_InteriorZeroByte(t *testing.T) {
	text := "A\x00B"
	value, err := Encode(text)
	if err != nil {
		t.Fatalf("encode failed with err: %v", err)
	}
	if decoded := Decode(value); decoded != text {
		t.Fatalf("interior zero byte broken. got=%q, expected=%q", decoded, text)
	}
}
