package processors

import (
	"fmt"

	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidEventPayload = "PRC_1000"

	codeInternalEventStoreFailed = "PRC_9000"
)

// errInvalidEventPayload returns an error when a consumed payload cannot be decoded
// into a valid event. Not retryable; the consumer skips the message.
func errInvalidEventPayload(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidEventPayload, msg, cause)
}

// errInternalEventStoreFailed returns an error when the durable event store write fails.
func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("eventStoreFailed: %w", cause))
}
