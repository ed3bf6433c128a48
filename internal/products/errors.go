package products

import (
	"fmt"

	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "PRD_1000"
	codeNegativeStock    = "PRD_1001"
	codeProductNotFound  = "PRD_1002"

	codeInternalProductStoreFailed = "PRD_9000"
)

// errValidationFailed returns an error for product payload validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errNegativeStock returns an error when a write would leave stock below zero.
func errNegativeStock(quantity int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNegativeStock, fmt.Sprintf("stock quantity must not be negative, got %d", quantity), nil)
}

// errProductNotFound returns an error when no product exists for the id.
func errProductNotFound(id int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeProductNotFound, fmt.Sprintf("product %d not found", id), cause)
}

// errInternalProductStoreFailed returns an error when a product store operation fails.
func errInternalProductStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProductStoreFailed, fmt.Errorf("productStoreFailed: %w", cause))
}
