package codec

import "errors"

var ErrTooLong = errors.New("text does not fit into the ciphertext slot")

func IsErrTooLong(err error) bool {
	return err == ErrTooLong
}
