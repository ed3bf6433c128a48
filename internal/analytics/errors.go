package analytics

import (
	"fmt"

	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "ANL_1000"

	codeInternalSearchQueryFailed = "ANL_9000"
)

// errValidationFailed returns an error for analytics query parameter failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalSearchQueryFailed returns an error when a search store aggregation fails.
func errInternalSearchQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSearchQueryFailed, fmt.Errorf("searchQueryFailed: %w", cause))
}
