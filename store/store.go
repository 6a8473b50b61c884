// Package store holds the ledger-resident one-time-write record per
// participant. There is no update and no delete: write-once is enforced
// by the data model, not by an application-level check.
package store

import (
	"sync"

	"github.com/DE-labtory/harpocrates"
)

// ParticipantRecord is the committed state for one identity. Submitted
// transitions false to true exactly once and the handle is never
// overwritten afterwards.
type ParticipantRecord struct {
	Handle    harpocrates.Handle
	Submitted bool
}

// Store serializes every mutation through Submit under one lock, standing
// in for the ledger's transaction ordering: a call fully applies or fully
// fails.
type Store struct {
	lock     sync.RWMutex
	addr     harpocrates.Address
	records  map[harpocrates.Address]ParticipantRecord
	verifier harpocrates.ProofVerifier
	caps     *harpocrates.CapabilityTable
}

func New(addr harpocrates.Address, verifier harpocrates.ProofVerifier, caps *harpocrates.CapabilityTable) *Store {
	return &Store{
		lock:     sync.RWMutex{},
		addr:     addr,
		records:  make(map[harpocrates.Address]ParticipantRecord),
		verifier: verifier,
		caps:     caps,
	}
}

func (s *Store) Address() harpocrates.Address {
	return s.addr
}

// Submit commits the identity's single record. The proof must bind the
// handle to this store and the submitting identity. On success the
// submitter and the store itself each receive a decryption capability;
// on any failure no state changes.
func (s *Store) Submit(identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.verifier.Verify(s.addr, identity, handle, proof) {
		return ErrInvalidProof
	}
	if record, ok := s.records[identity]; ok && record.Submitted {
		return ErrAlreadySubmitted
	}

	s.records[identity] = ParticipantRecord{Handle: handle, Submitted: true}
	s.caps.Grant(handle, identity)
	s.caps.Grant(handle, s.addr)
	return nil
}

// HasSubmitted reports whether the identity's record is committed.
func (s *Store) HasSubmitted(identity harpocrates.Address) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.records[identity].Submitted
}

// Handle returns the identity's ciphertext handle, or the zero handle
// when the identity never submitted.
func (s *Store) Handle(identity harpocrates.Address) harpocrates.Handle {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.records[identity].Handle
}
