package merkletree_test

import (
	"bytes"
	"testing"

	"github.com/DE-labtory/harpocrates/gateway/merkletree"
)

func setupTree(t *testing.T) (*merkletree.Tree, []merkletree.Data) {
	dataList := []merkletree.Data{
		merkletree.NewData([]byte("store address")),
		merkletree.NewData([]byte("participant identity")),
		merkletree.NewData([]byte("ciphertext handle")),
	}
	tree, err := merkletree.New(dataList)
	if err != nil {
		t.Fatalf("tree construction failed with err: %v", err)
	}
	return tree, dataList
}

func TestTree_MerkleRoot_Deterministic(t *testing.T) {
	first, _ := setupTree(t)
	second, _ := setupTree(t)

	if !bytes.Equal(first.MerkleRoot(), second.MerkleRoot()) {
		t.Fatalf("equal leaves produced different roots")
	}
}

func TestValidatePath(t *testing.T) {
	tree, dataList := setupTree(t)

	for _, data := range dataList {
		path, indexes, err := tree.MerklePath(data)
		if err != nil {
			t.Fatalf("merkle path failed with err: %v", err)
		}
		if !merkletree.ValidatePath(data, tree.MerkleRoot(), path, indexes) {
			t.Fatalf("valid path rejected for leaf %q", data.Bytes())
		}
	}
}

func TestValidatePath_WrongLeaf(t *testing.T) {
	tree, dataList := setupTree(t)

	path, indexes, err := tree.MerklePath(dataList[2])
	if err != nil {
		t.Fatalf("merkle path failed with err: %v", err)
	}

	forged := merkletree.NewData([]byte("forged handle"))
	if merkletree.ValidatePath(forged, tree.MerkleRoot(), path, indexes) {
		t.Fatalf("forged leaf accepted")
	}
}

func TestValidatePath_LengthMismatch(t *testing.T) {
	tree, dataList := setupTree(t)

	path, indexes, err := tree.MerklePath(dataList[2])
	if err != nil {
		t.Fatalf("merkle path failed with err: %v", err)
	}

	if merkletree.ValidatePath(dataList[2], tree.MerkleRoot(), path, indexes[:len(indexes)-1]) {
		t.Fatalf("truncated index list accepted")
	}
}
