package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrInvalidCallback is the panic value (wrapped) raised when a
	// value-retriever argument is neither a path string nor a supported
	// function.
	ErrInvalidCallback = errors.New("collections: argument is not a path or callback")

	// ErrInvalidJSON is returned when a JSON document cannot be decoded.
	ErrInvalidJSON = errors.New("collections: invalid JSON")

	// ErrInvalidYAML is returned when a YAML document cannot be decoded.
	ErrInvalidYAML = errors.New("collections: invalid YAML")

	// ErrInvalidPayload is returned when a serialized blob is malformed.
	ErrInvalidPayload = errors.New("collections: invalid serialized payload")

	// ErrChecksumMismatch is returned when a serialized blob fails its
	// integrity check.
	ErrChecksumMismatch = errors.New("collections: serialized payload checksum mismatch")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
