package gateway

import "errors"

var ErrEncryptionFailed = errors.New("encryption gateway failed to produce a ciphertext")
var ErrDecryptionFailed = errors.New("decryption gateway failed to recover the slot value")
var ErrNotAuthorized = errors.New("requester holds no decryption capability")
var ErrUnknownHandle = errors.New("no ciphertext behind handle")

func IsErrNotAuthorized(err error) bool {
	return err == ErrNotAuthorized
}

func IsErrUnknownHandle(err error) bool {
	return err == ErrUnknownHandle
}
