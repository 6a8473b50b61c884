package gateway

import (
	"bytes"

	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/harpocrates/gateway/merkletree"
)

// bindingLeaves fixes the leaf order of the binding tree. Changing the
// order invalidates every previously minted proof.
func bindingLeaves(store, identity harpocrates.Address, handle harpocrates.Handle) []merkletree.Data {
	return []merkletree.Data{
		merkletree.NewData(store.Bytes()),
		merkletree.NewData(identity.Bytes()),
		merkletree.NewData(handle.Bytes()),
	}
}

// bindingProof builds the tuple tree over (store, identity, handle) and
// returns its root together with the handle leaf's path.
func bindingProof(store, identity harpocrates.Address, handle harpocrates.Handle) (harpocrates.Proof, error) {
	leaves := bindingLeaves(store, identity, handle)
	tree, err := merkletree.New(leaves)
	if err != nil {
		return harpocrates.Proof{}, err
	}

	path, indexes, err := tree.MerklePath(leaves[2])
	if err != nil {
		return harpocrates.Proof{}, err
	}

	return harpocrates.Proof{
		Root:    tree.MerkleRoot(),
		Path:    path,
		Indexes: indexes,
	}, nil
}

// Verify rebuilds the binding tuple tree from the verifier's own view of
// (store, identity, handle) and compares roots, then checks the handle
// leaf's path. A proof minted for another store or another identity
// yields a different root and fails.
func (e *Enclave) Verify(store, identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) bool {
	leaves := bindingLeaves(store, identity, handle)
	tree, err := merkletree.New(leaves)
	if err != nil {
		return false
	}
	if !bytes.Equal(tree.MerkleRoot(), proof.Root) {
		return false
	}
	return merkletree.ValidatePath(leaves[2], proof.Root, proof.Path, proof.Indexes)
}
