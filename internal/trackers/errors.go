package trackers

import (
	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeValidationFailed    = "TRK_1000"
	codeUnserializableEvent = "TRK_1001"
)

// errValidationFailed returns an error for tracking request validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errUnserializableEvent returns an error when the built event cannot be
// encoded for the stream. Only caller-supplied metadata values can cause this.
func errUnserializableEvent(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnserializableEvent, "event cannot be serialized", cause)
}
