package aggregators

import (
	"fmt"

	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeInternalAggregateStoreFailed = "AGG_9000"
	codeInternalProductLookupFailed  = "AGG_9001"
)

// errInternalAggregateStoreFailed returns an error when reading or writing a product aggregate fails.
func errInternalAggregateStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregateStoreFailed, fmt.Errorf("aggregateStoreFailed: %w", cause))
}

// errInternalProductLookupFailed returns an error when loading the canonical product fails.
func errInternalProductLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProductLookupFailed, fmt.Errorf("productLookupFailed: %w", cause))
}
