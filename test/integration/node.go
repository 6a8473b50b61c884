package integration

import (
	"testing"
	"time"

	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/harpocrates/gateway"
	"github.com/DE-labtory/harpocrates/store"
	"github.com/DE-labtory/harpocrates/submission"
)

// Network wires one confidential store and one enclave shared by every
// participant node, the way a deployment shares one contract and one
// decryption committee.
type Network struct {
	caps    *harpocrates.CapabilityTable
	enclave *gateway.Enclave
	store   *store.Store
}

func NewNetwork(threshold int) *Network {
	caps := harpocrates.NewCapabilityTable()
	enclave := gateway.New(gateway.Config{Threshold: threshold}, caps)

	storeAddr := harpocrates.Address{}
	for i := range storeAddr {
		storeAddr[i] = 0xff
	}

	return &Network{
		caps:    caps,
		enclave: enclave,
		store:   store.New(storeAddr, enclave, caps),
	}
}

func (n *Network) Store() *store.Store {
	return n.store
}

func (n *Network) Capabilities() *harpocrates.CapabilityTable {
	return n.caps
}

type Node struct {
	Identity harpocrates.Address
	Machine  *submission.Machine
}

// Join creates a participant session against the shared network.
func (n *Network) Join(seed byte) *Node {
	identity := harpocrates.Address{}
	for i := range identity {
		identity[i] = seed
	}

	machine := submission.New(
		identity,
		[]byte{seed},
		n.store,
		n.enclave,
		n.enclave,
		harpocrates.NewStateChannel(64),
		harpocrates.NewMemCacheTracer(),
	)

	return &Node{
		Identity: identity,
		Machine:  machine,
	}
}

func (node *Node) WaitForState(t *testing.T, state harpocrates.State) {
	for i := 0; i < 400; i++ {
		if node.Machine.State() == state {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf(
		"timeout waiting for state %s on %s. current=%s, message=%s",
		state, node.Identity, node.Machine.State(), node.Machine.LastMessage(),
	)
}
