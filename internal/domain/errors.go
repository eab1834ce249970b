package domain

import "errors"

var (
	// ErrEnumerationUnavailable is returned when the total supply cannot be
	// read from the contract. Callers degrade to an empty page but must be
	// able to tell "no assets" apart from "the chain was unreachable".
	ErrEnumerationUnavailable = errors.New("token enumeration unavailable")

	// ErrMetadataUnavailable is returned when every gateway candidate for a
	// token URI has been exhausted
	ErrMetadataUnavailable = errors.New("metadata unavailable")

	// ErrInvalidURI is returned when a token URI cannot be resolved to any
	// fetchable candidate URL
	ErrInvalidURI = errors.New("invalid token URI")
)
