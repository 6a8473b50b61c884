package submission

import "github.com/DE-labtory/harpocrates"

// events are posted into the machine's loop by gateway goroutines. Each
// carries the attempt id it belongs to so stale results from abandoned
// attempts are dropped instead of corrupting a newer attempt's state.
type event interface {
	attemptId() string
}

type encryptedEvent struct {
	attempt string
	handle  harpocrates.Handle
	proof   harpocrates.Proof
}

func (e encryptedEvent) attemptId() string { return e.attempt }

type submittedEvent struct {
	attempt string
}

func (e submittedEvent) attemptId() string { return e.attempt }

type decryptedEvent struct {
	attempt string
	plain   uint32
}

func (e decryptedEvent) attemptId() string { return e.attempt }

type failedEvent struct {
	attempt string
	reason  string
}

func (e failedEvent) attemptId() string { return e.attempt }
