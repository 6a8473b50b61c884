// Package merkletree builds the binding tree whose root ties a ciphertext
// handle to the (store, identity) pair it was encrypted for.
package merkletree

import (
	"bytes"
	"crypto/sha256"

	"github.com/cbergoon/merkletree"
)

type RootPath [][]byte
type RootHash []byte

type Tree struct {
	tree merkletree.MerkleTree
}

func New(dataList []Data) (*Tree, error) {
	var contentList []merkletree.Content
	for _, data := range dataList {
		contentList = append(contentList, data.Content)
	}

	t, err := merkletree.NewTree(contentList)
	if err != nil {
		return nil, err
	}

	return &Tree{*t}, nil
}

func (t *Tree) MerkleRoot() RootHash {
	return t.tree.MerkleRoot()
}

func (t *Tree) MerklePath(data Data) (RootPath, []int64, error) {
	return t.tree.GetMerklePath(data.Content)
}

type Data struct {
	Content content
}

func NewData(data []byte) Data {
	return Data{Content: content(data)}
}

func (d Data) CalculateHash() ([]byte, error) {
	return d.Content.CalculateHash()
}

func (d Data) Bytes() []byte {
	return d.Content
}

type content []byte

func (c content) CalculateHash() ([]byte, error) {
	h := sha256.New()
	if _, err := h.Write([]byte(c)); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func (c content) Equals(other merkletree.Content) (bool, error) {
	return bytes.Equal(c, other.(content)), nil
}

// ValidatePath walks the path from the data leaf to the root. Interior
// nodes hash the 64 byte concatenation of their children, matching the
// underlying tree construction.
func ValidatePath(data Data, rootHash RootHash, rootPath RootPath, indexList []int64) bool {
	if len(rootPath) != len(indexList) {
		return false
	}

	branch, err := data.CalculateHash()
	if err != nil {
		return false
	}

	node := make(content, 64)
	for i, sibling := range rootPath {
		switch indexList[i] {
		case 0: // sibling on the left
			copy(node[:32], sibling)
			copy(node[32:], branch)
		case 1: // sibling on the right
			copy(node[:32], branch)
			copy(node[32:], sibling)
		default:
			return false
		}
		if branch, err = node.CalculateHash(); err != nil {
			return false
		}
	}

	return bytes.Equal(rootHash, branch)
}
