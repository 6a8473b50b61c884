package harpocrates

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const addressSize = 20

// Address is a ledger address used both for participant identities
// and for the store contract itself.
type Address [addressSize]byte

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func ToAddress(addr string) (Address, error) {
	hexPart := strings.TrimPrefix(addr, "0x")
	data, err := hex.DecodeString(hexPart)
	if err != nil {
		return Address{}, err
	}
	if len(data) != addressSize {
		return Address{}, fmt.Errorf("invalid address length: %d", len(data))
	}

	result := Address{}
	copy(result[:], data)
	return result, nil
}
