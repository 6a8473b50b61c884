// Package codec packs short UTF-8 texts into the store's fixed-width
// ciphertext slot and back. The packing is big-endian with no left
// padding, so the integer's bit length mirrors the text's byte length.
package codec

import "math/bits"

// SlotBits is the width of the store's ciphertext slot type.
const SlotBits = 32

// Encode packs the canonical UTF-8 bytes of text into an unsigned
// integer of at most SlotBits bits.
func Encode(text string) (uint32, error) {
	data := []byte(text)
	if len(data)*8 > SlotBits {
		return 0, ErrTooLong
	}

	var value uint32
	for _, b := range data {
		value = value<<8 | uint32(b)
	}
	return value, nil
}

// Decode renders value back to its minimal big-endian byte string and
// reinterprets it as UTF-8. Texts whose packing carries a leading zero
// byte do not survive the round trip; the byte count is derived from the
// significant bits alone.
func Decode(value uint32) string {
	if value == 0 {
		return ""
	}

	size := (bits.Len32(value) + 7) / 8
	data := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		data[i] = byte(value)
		value >>= 8
	}
	return string(data)
}
