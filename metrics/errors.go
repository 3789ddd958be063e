package metrics

import "errors"

// Errors returned by the registry and its instruments. They are wrapped with
// additional context, so compare with errors.Is.
var (
	// ErrDuplicateName is returned when a metric name is registered twice with
	// a different kind or a different label schema.
	ErrDuplicateName = errors.New("metric already registered with a different schema")

	// ErrInvalidName is returned when a metric or label name is rejected by the
	// exposition format rules.
	ErrInvalidName = errors.New("invalid metric or label name")

	// ErrUnknownKind is returned when Register is called with an unsupported Kind.
	ErrUnknownKind = errors.New("unknown metric kind")

	// ErrLabelMismatch is returned when the label set passed to an instrument
	// does not use exactly the declared label keys.
	ErrLabelMismatch = errors.New("label set does not match declared label keys")

	// ErrInvalidValue is returned for NaN or infinite gauge values, negative or
	// non-finite histogram observations, label values that are not valid UTF-8,
	// and malformed histogram buckets.
	ErrInvalidValue = errors.New("invalid metric value")
)
