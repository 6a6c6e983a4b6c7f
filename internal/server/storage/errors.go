// Package storage defines the server-side persistence contract.
package storage

import "errors"

// ErrOwnerMismatch indicates a record claiming an owner other than the
// authenticated user. The storage layer enforces this independently of
// the handler's request validation.
var ErrOwnerMismatch = errors.New("record owner mismatch")
