package submission

import "errors"

var ErrEmptyInput = errors.New("answer is empty")
var ErrInFlight = errors.New("another request is in flight")
var ErrNotSubmitted = errors.New("no record committed for identity")
var ErrClosed = errors.New("machine is closed")

func IsErrEmptyInput(err error) bool {
	return err == ErrEmptyInput
}

func IsErrInFlight(err error) bool {
	return err == ErrInFlight
}

func IsErrNotSubmitted(err error) bool {
	return err == ErrNotSubmitted
}
