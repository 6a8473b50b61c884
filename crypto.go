package harpocrates

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

type SecretKey [32]byte
type PublicKey []byte
type CipherText []byte

const handleSize = 32

// Handle is an opaque reference to a ciphertext held by the decryption
// authority. It reveals nothing about the plaintext.
type Handle [handleSize]byte

// NewHandle derives the handle under which a ciphertext is referenced.
func NewHandle(ct CipherText) Handle {
	return Handle(sha256.Sum256(ct))
}

func (h Handle) Empty() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return hex.EncodeToString(h[:])
}

func (h Handle) Bytes() []byte {
	return h[:]
}

// Proof binds a ciphertext handle to the (store, submitter) pair it was
// encrypted for. The store rebuilds the binding tuple and compares roots,
// so a proof minted for one pair fails verification for any other.
type Proof struct {
	Root    []byte
	Path    [][]byte
	Indexes []int64
}

func (p Proof) Equals(other Proof) bool {
	return bytes.Equal(p.Root, other.Root)
}

// Authorization is a participant's signed request to decrypt. Signature
// verification belongs to the decryption gateway; the core checks only
// that the signing identity holds a capability.
type Authorization struct {
	Identity  Address
	Signature []byte
}

type EncryptionGateway interface {
	Encrypt(store, identity Address, plaintext uint32) (Handle, Proof, error)
}

type DecryptionGateway interface {
	Decrypt(handle Handle, store Address, auth Authorization) (uint32, error)
}

type ProofVerifier interface {
	Verify(store, identity Address, handle Handle, proof Proof) bool
}
