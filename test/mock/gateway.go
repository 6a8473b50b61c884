package mock

import "github.com/DE-labtory/harpocrates"

type EncryptionGateway struct {
	EncryptFunc func(store, identity harpocrates.Address, plaintext uint32) (harpocrates.Handle, harpocrates.Proof, error)
}

func (g *EncryptionGateway) Encrypt(store, identity harpocrates.Address, plaintext uint32) (harpocrates.Handle, harpocrates.Proof, error) {
	return g.EncryptFunc(store, identity, plaintext)
}

type DecryptionGateway struct {
	DecryptFunc func(handle harpocrates.Handle, store harpocrates.Address, auth harpocrates.Authorization) (uint32, error)
}

func (g *DecryptionGateway) Decrypt(handle harpocrates.Handle, store harpocrates.Address, auth harpocrates.Authorization) (uint32, error) {
	return g.DecryptFunc(handle, store, auth)
}

type ProofVerifier struct {
	VerifyFunc func(store, identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) bool
}

func (v *ProofVerifier) Verify(store, identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) bool {
	return v.VerifyFunc(store, identity, handle, proof)
}
