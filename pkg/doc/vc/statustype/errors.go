/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus matches every *InvalidStatusError through errors.Is.
var ErrInvalidStatus = errors.New("invalid status")

// Reason names the validation step a credential status failed.
type Reason string

const (
	ReasonTypeMismatch          Reason = "type mismatch"
	ReasonMissingIndex          Reason = "missing index"
	ReasonInvalidIndex          Reason = "non-numeric index"
	ReasonMissingListCredential Reason = "missing list credential"
	ReasonMalformedLocator      Reason = "malformed locator"
)

// InvalidStatusError is returned when a credential status is not a valid
// RevocationList2020Status.
type InvalidStatusError struct {
	Reason Reason
	Detail string
	Err    error
}

func newInvalidStatusError(reason Reason, err error, format string, args ...interface{}) *InvalidStatusError {
	return &InvalidStatusError{
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (e *InvalidStatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid status (%s): %s: %v", e.Reason, e.Detail, e.Err)
	}

	return fmt.Sprintf("invalid status (%s): %s", e.Reason, e.Detail)
}

func (e *InvalidStatusError) Unwrap() error {
	return e.Err
}

func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

// HasReason reports whether err carries an InvalidStatusError with the given reason.
func HasReason(err error, reason Reason) bool {
	var statusErr *InvalidStatusError

	return errors.As(err, &statusErr) && statusErr.Reason == reason
}
