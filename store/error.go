package store

import "errors"

var ErrAlreadySubmitted = errors.New("identity has already submitted")
var ErrInvalidProof = errors.New("proof does not bind handle to store and identity")

func IsErrAlreadySubmitted(err error) bool {
	return err == ErrAlreadySubmitted
}

func IsErrInvalidProof(err error) bool {
	return err == ErrInvalidProof
}
