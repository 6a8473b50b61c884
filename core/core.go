// Package core assembles a full node from configuration: capability
// table, enclave, confidential store and the participant's submission
// machine.
package core

import (
	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/harpocrates/config"
	"github.com/DE-labtory/harpocrates/gateway"
	"github.com/DE-labtory/harpocrates/log"
	"github.com/DE-labtory/harpocrates/store"
	"github.com/DE-labtory/harpocrates/submission"
)

// Answerer is the node surface the answer API serves.
type Answerer interface {
	Submit(answer string) error
	Decrypt() error
	State() harpocrates.State
	HasSubmitted() bool
	CurrentHandle() harpocrates.Handle
	DecryptedText() string
	LastMessage() string
	Run()
	Close()
}

type Node struct {
	identity      harpocrates.Address
	store         *store.Store
	enclave       *gateway.Enclave
	machine       *submission.Machine
	stateReceiver harpocrates.StateReceiver
	tracer        harpocrates.Tracer
}

func New() (Answerer, error) {
	conf := config.Get()

	identity, err := harpocrates.ToAddress(conf.Identity.Address)
	if err != nil {
		return nil, err
	}
	storeAddr, err := harpocrates.ToAddress(conf.Store.Address)
	if err != nil {
		return nil, err
	}

	caps := harpocrates.NewCapabilityTable()
	enclave := gateway.New(gateway.Config{Threshold: conf.Tpke.Threshold}, caps)
	ledger := store.New(storeAddr, enclave, caps)

	stateChan := harpocrates.NewStateChannel(64)
	tracer := harpocrates.NewMemCacheTracer()
	machine := submission.New(
		identity,
		[]byte(conf.Identity.Signature),
		ledger,
		enclave,
		enclave,
		stateChan,
		tracer,
	)

	return &Node{
		identity:      identity,
		store:         ledger,
		enclave:       enclave,
		machine:       machine,
		stateReceiver: stateChan,
		tracer:        tracer,
	}, nil
}

// Run drains the machine's state channel into the logs until Close.
func (n *Node) Run() {
	for msg := range n.stateReceiver.Receive() {
		log.Info(
			"identity", n.identity.String(),
			"state", msg.State.String(),
			"attempt", msg.Attempt,
			"message", msg.Message,
		)
	}
}

func (n *Node) Submit(answer string) error {
	return n.machine.Submit(answer)
}

func (n *Node) Decrypt() error {
	return n.machine.Decrypt()
}

func (n *Node) State() harpocrates.State {
	return n.machine.State()
}

func (n *Node) HasSubmitted() bool {
	return n.machine.HasSubmitted()
}

func (n *Node) CurrentHandle() harpocrates.Handle {
	return n.machine.CurrentHandle()
}

func (n *Node) DecryptedText() string {
	return n.machine.DecryptedText()
}

func (n *Node) LastMessage() string {
	return n.machine.LastMessage()
}

func (n *Node) Close() {
	n.machine.Close()
	n.tracer.Trace()
}
