// Package gateway provides the in-process encryption and decryption
// authority. Production deployments point the submission machine at
// remote gateways exposing the same interfaces; the enclave exists so a
// full node runs without any external crypto service.
package gateway

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/tpke"
)

type Config struct {
	Threshold int
}

// Enclave holds the threshold key material and the ciphertexts behind
// the opaque handles the store keeps. Decryption combines threshold+1
// shares, standing in for the distributed decryption committee.
type Enclave struct {
	lock      sync.RWMutex
	threshold int

	publicKeySet *tpke.PublicKeySet
	secretKeySet *tpke.SecretKeySet

	ciphertexts map[harpocrates.Handle]harpocrates.CipherText
	caps        *harpocrates.CapabilityTable
}

func New(conf Config, caps *harpocrates.CapabilityTable) *Enclave {
	secretKeySet := tpke.RandomSecretKeySet(conf.Threshold)

	return &Enclave{
		lock:         sync.RWMutex{},
		threshold:    conf.Threshold,
		publicKeySet: secretKeySet.PublicKeySet(),
		secretKeySet: secretKeySet,
		ciphertexts:  make(map[harpocrates.Handle]harpocrates.CipherText),
		caps:         caps,
	}
}

// Encrypt produces a fresh ciphertext for the slot value and the proof
// binding its handle to (store, identity). Encryption is randomized, so
// equal plaintexts from different submitters never share a handle.
func (e *Enclave) Encrypt(store, identity harpocrates.Address, plaintext uint32) (harpocrates.Handle, harpocrates.Proof, error) {
	slot := make([]byte, 4)
	binary.BigEndian.PutUint32(slot, plaintext)

	ct, err := e.publicKeySet.PublicKey().Encrypt(slot)
	if err != nil {
		return harpocrates.Handle{}, harpocrates.Proof{}, ErrEncryptionFailed
	}

	serialized := harpocrates.CipherText(ct.Serialize())
	handle := harpocrates.NewHandle(serialized)

	proof, err := bindingProof(store, identity, handle)
	if err != nil {
		return harpocrates.Handle{}, harpocrates.Proof{}, err
	}

	e.lock.Lock()
	e.ciphertexts[handle] = serialized
	e.lock.Unlock()

	return handle, proof, nil
}

// Decrypt releases the slot value behind handle to a principal holding a
// decryption capability issued by the store.
func (e *Enclave) Decrypt(handle harpocrates.Handle, store harpocrates.Address, auth harpocrates.Authorization) (uint32, error) {
	if !e.caps.Granted(handle, auth.Identity) {
		return 0, ErrNotAuthorized
	}

	e.lock.RLock()
	serialized, ok := e.ciphertexts[handle]
	e.lock.RUnlock()
	if !ok {
		return 0, ErrUnknownHandle
	}

	ct := tpke.NewCipherTextFromBytes(serialized)

	shares := make(map[string]*tpke.DecryptionShare)
	for i := 0; i <= e.threshold; i++ {
		id := strconv.Itoa(i)
		shares[id] = e.secretKeySet.KeyShareUsingString(id).DecryptShare(ct)
	}

	slot, err := e.publicKeySet.DecryptUsingStringMap(shares, ct)
	if err != nil || len(slot) != 4 {
		return 0, ErrDecryptionFailed
	}

	return binary.BigEndian.Uint32(slot), nil
}
