// Package submission drives one participant's answer through the
// encrypt-submit-confirm-decrypt sequence against the confidential
// store, tolerating gateway failures at every step.
package submission

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/harpocrates/codec"
	"github.com/DE-labtory/harpocrates/store"
	"github.com/google/uuid"
)

// Ledger is the store contract surface the machine drives.
type Ledger interface {
	Address() harpocrates.Address
	Submit(identity harpocrates.Address, handle harpocrates.Handle, proof harpocrates.Proof) error
	HasSubmitted(identity harpocrates.Address) bool
	Handle(identity harpocrates.Address) harpocrates.Handle
}

type request struct {
	answer string
	err    chan error
}

type decryptRequest struct {
	err chan error
}

// Machine is the per-session state machine. One submission is in flight
// at a time; gateway calls run asynchronously and report back through
// the event loop, so abandoning the machine never blocks on them.
type Machine struct {
	lock sync.RWMutex

	identity harpocrates.Address
	auth     harpocrates.Authorization

	ledger Ledger
	encGw  harpocrates.EncryptionGateway
	decGw  harpocrates.DecryptionGateway

	state       harpocrates.State
	attempt     string
	handle      harpocrates.Handle
	decrypted   string
	lastMessage string

	stop      int32
	closeChan chan struct{}
	reqChan   chan request
	decChan   chan decryptRequest
	eventChan chan event

	stateSender harpocrates.StateSender
	tracer      harpocrates.Tracer
}

func New(
	identity harpocrates.Address,
	signature []byte,
	ledger Ledger,
	encGw harpocrates.EncryptionGateway,
	decGw harpocrates.DecryptionGateway,
	stateSender harpocrates.StateSender,
	tracer harpocrates.Tracer,
) *Machine {
	m := &Machine{
		lock:        sync.RWMutex{},
		identity:    identity,
		auth:        harpocrates.Authorization{Identity: identity, Signature: signature},
		ledger:      ledger,
		encGw:       encGw,
		decGw:       decGw,
		state:       harpocrates.Idle,
		closeChan:   make(chan struct{}, 1),
		reqChan:     make(chan request),
		decChan:     make(chan decryptRequest),
		eventChan:   make(chan event, 8),
		stateSender: stateSender,
		tracer:      tracer,
	}
	go m.run()
	return m
}

// Submit starts a submission for answer. Rejections that need no gateway
// round-trip (empty input, an in-flight submission, an already committed
// record) return synchronously; pipeline progress surfaces through the
// state queries and the state channel.
func (m *Machine) Submit(answer string) error {
	if m.toDie() {
		return ErrClosed
	}
	req := request{answer: answer, err: make(chan error)}
	m.reqChan <- req
	return <-req.err
}

// Decrypt asks the decryption gateway for the committed answer. It is
// accepted only when the store holds this identity's record and nothing
// is in flight; a failed attempt can be retried.
func (m *Machine) Decrypt() error {
	if m.toDie() {
		return ErrClosed
	}
	req := decryptRequest{err: make(chan error)}
	m.decChan <- req
	return <-req.err
}

// Close abandons the session. In-flight ledger effects are not rolled
// back; a fresh machine re-syncs from the store on its next Submit.
func (m *Machine) Close() {
	if first := atomic.CompareAndSwapInt32(&m.stop, int32(0), int32(1)); !first {
		return
	}
	m.closeChan <- struct{}{}
}

func (m *Machine) State() harpocrates.State {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.state
}

func (m *Machine) HasSubmitted() bool {
	return m.ledger.HasSubmitted(m.identity)
}

func (m *Machine) CurrentHandle() harpocrates.Handle {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.handle
}

func (m *Machine) DecryptedText() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.decrypted
}

func (m *Machine) LastMessage() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.lastMessage
}

func (m *Machine) toDie() bool {
	return atomic.LoadInt32(&(m.stop)) == int32(1)
}

func (m *Machine) run() {
	for !m.toDie() {
		select {
		case <-m.closeChan:
			m.closeChan <- struct{}{}
			return
		case req := <-m.reqChan:
			req.err <- m.handleSubmit(req)
		case req := <-m.decChan:
			req.err <- m.handleDecrypt(req)
		case evt := <-m.eventChan:
			m.muxEvent(evt)
		}
	}
}

func (m *Machine) handleSubmit(req request) error {
	if m.inFlight() {
		return ErrInFlight
	}
	if req.answer == "" {
		return ErrEmptyInput
	}

	// a transaction submitted before an earlier session was abandoned
	// may have landed; trust the store, not the session
	if m.ledger.HasSubmitted(m.identity) {
		m.setHandle(m.ledger.Handle(m.identity))
		m.transition("", harpocrates.Confirmed, "record already committed")
		return store.ErrAlreadySubmitted
	}

	attempt := uuid.New().String()
	m.transition(attempt, harpocrates.Encoding, "packing answer into slot")

	value, err := codec.Encode(req.answer)
	if err != nil {
		m.transition(attempt, harpocrates.Failed, fmt.Sprintf("encoding rejected: %s", err))
		return err
	}

	m.setAttempt(attempt)
	m.transition(attempt, harpocrates.Encrypting, "requesting ciphertext")
	go m.encrypt(attempt, value)
	return nil
}

func (m *Machine) handleDecrypt(req decryptRequest) error {
	if m.inFlight() {
		return ErrInFlight
	}
	if !m.ledger.HasSubmitted(m.identity) {
		return ErrNotSubmitted
	}

	handle := m.ledger.Handle(m.identity)
	m.setHandle(handle)

	attempt := uuid.New().String()
	m.setAttempt(attempt)
	m.transition(attempt, harpocrates.Decrypting, "requesting decryption")
	go m.decrypt(attempt, handle)
	return nil
}

func (m *Machine) encrypt(attempt string, value uint32) {
	handle, proof, err := m.encGw.Encrypt(m.ledger.Address(), m.identity, value)
	if err != nil {
		m.post(failedEvent{attempt: attempt, reason: fmt.Sprintf("encryption failed: %s", err)})
		return
	}
	m.post(encryptedEvent{attempt: attempt, handle: handle, proof: proof})
}

func (m *Machine) submit(attempt string, handle harpocrates.Handle, proof harpocrates.Proof) {
	if err := m.ledger.Submit(m.identity, handle, proof); err != nil {
		m.post(failedEvent{attempt: attempt, reason: fmt.Sprintf("submission rejected: %s", err)})
		return
	}
	m.post(submittedEvent{attempt: attempt})
}

func (m *Machine) decrypt(attempt string, handle harpocrates.Handle) {
	plain, err := m.decGw.Decrypt(handle, m.ledger.Address(), m.auth)
	if err != nil {
		m.post(failedEvent{attempt: attempt, reason: fmt.Sprintf("decryption failed: %s", err)})
		return
	}
	m.post(decryptedEvent{attempt: attempt, plain: plain})
}

func (m *Machine) post(evt event) {
	if m.toDie() {
		return
	}
	m.eventChan <- evt
}

func (m *Machine) muxEvent(evt event) {
	if evt.attemptId() != m.currentAttempt() {
		// event from an abandoned or superseded attempt
		return
	}

	switch evt := evt.(type) {
	case encryptedEvent:
		m.handleEncrypted(evt)
	case submittedEvent:
		m.handleSubmitted(evt)
	case decryptedEvent:
		m.handleDecrypted(evt)
	case failedEvent:
		m.handleFailed(evt)
	}
}

func (m *Machine) handleEncrypted(evt encryptedEvent) {
	m.transition(evt.attempt, harpocrates.Submitting, "submitting ciphertext handle")
	go m.submit(evt.attempt, evt.handle, evt.proof)
}

func (m *Machine) handleSubmitted(evt submittedEvent) {
	// read back the committed record rather than trusting the attempt
	m.setHandle(m.ledger.Handle(m.identity))
	m.setAttempt("")
	m.transition(evt.attempt, harpocrates.Confirmed, "submission committed")
}

func (m *Machine) handleDecrypted(evt decryptedEvent) {
	m.lock.Lock()
	m.decrypted = codec.Decode(evt.plain)
	m.lock.Unlock()

	m.setAttempt("")
	m.transition(evt.attempt, harpocrates.Decrypted, "answer decrypted")
}

func (m *Machine) handleFailed(evt failedEvent) {
	m.setAttempt("")
	m.transition(evt.attempt, harpocrates.Failed, evt.reason)
}

func (m *Machine) inFlight() bool {
	return m.currentAttempt() != ""
}

func (m *Machine) currentAttempt() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.attempt
}

func (m *Machine) setAttempt(attempt string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.attempt = attempt
}

func (m *Machine) setHandle(handle harpocrates.Handle) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.handle = handle
}

func (m *Machine) transition(attempt string, state harpocrates.State, message string) {
	m.lock.Lock()
	m.state = state
	m.lastMessage = message
	m.lock.Unlock()

	if m.tracer != nil {
		m.tracer.Log("state", state.String(), "attempt", attempt, "message", message)
	}
	if m.stateSender != nil {
		m.stateSender.Send(harpocrates.StateMessage{
			Attempt: attempt,
			State:   state,
			Message: message,
		})
	}
}
