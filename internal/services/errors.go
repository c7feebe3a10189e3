package services

import (
	"errors"
	"fmt"
)

// ErrWrongCredentials is returned for every login failure, whether the
// account is missing or the password is wrong. The two cases must stay
// indistinguishable to callers.
var ErrWrongCredentials = errors.New("Wrong Credentials")

// InvalidReferenceError reports a request that names a parent or related
// record that does not exist, e.g. a season created under an unknown serie.
type InvalidReferenceError struct {
	Ref string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Ref)
}

func invalidRef(ref string) *InvalidReferenceError {
	return &InvalidReferenceError{Ref: ref}
}
