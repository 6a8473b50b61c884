package harpocrates

// State is the submission machine's current phase.
type State int

const (
	Idle State = iota
	Encoding
	Encrypting
	Submitting
	Confirmed
	Decrypting
	Decrypted
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Encoding:
		return "ENCODING"
	case Encrypting:
		return "ENCRYPTING"
	case Submitting:
		return "SUBMITTING"
	case Confirmed:
		return "CONFIRMED"
	case Decrypting:
		return "DECRYPTING"
	case Decrypted:
		return "DECRYPTED"
	case Failed:
		return "FAILED"
	}
	return "UNKNOWN"
}
