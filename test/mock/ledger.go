package mock

import "github.com/DE-labtory/harpocrates"

// Ledger stands in for the confidential store contract.
type Ledger struct {
	AddressFunc      func() harpocrates.Address
	SubmitFunc       func(identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) error
	HasSubmittedFunc func(identity harpocrates.Address) bool
	HandleFunc       func(identity harpocrates.Address) harpocrates.Handle
}

func (l *Ledger) Address() harpocrates.Address {
	return l.AddressFunc()
}

func (l *Ledger) Submit(identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) error {
	return l.SubmitFunc(identity, handle, proof)
}

func (l *Ledger) HasSubmitted(identity harpocrates.Address) bool {
	return l.HasSubmittedFunc(identity)
}

func (l *Ledger) Handle(identity harpocrates.Address) harpocrates.Handle {
	return l.HandleFunc(identity)
}
