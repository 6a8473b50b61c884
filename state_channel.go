package harpocrates

// StateMessage notifies watchers of a submission machine transition.
type StateMessage struct {
	Attempt string
	State   State
	Message string
}

type StateSender interface {
	Send(msg StateMessage)
}

type StateReceiver interface {
	Receive() <-chan StateMessage
}

type StateChannel struct {
	buffer chan StateMessage
}

func NewStateChannel(size int) *StateChannel {
	return &StateChannel{
		buffer: make(chan StateMessage, size),
	}
}

func (c *StateChannel) Send(msg StateMessage) {
	c.buffer <- msg
}

func (c *StateChannel) Receive() <-chan StateMessage {
	return c.buffer
}
