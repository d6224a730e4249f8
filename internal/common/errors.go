// Package common defines shared sentinel errors used across status-villain
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Interactive flow control: the user interrupted an elicitation.
	ErrorCancelled = errors.New("cancelled")

	// Invariant violation: an operation was attempted before the state it
	// requires was populated. Should not occur in a correct flow.
	ErrorMissingState = errors.New("missing required state")
)
