package http

import (
	"ecom-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody = "API_1000"
	codeInvalidPathParam   = "API_1001"
)

// errInvalidRequestBody returns an error when the request body cannot be decoded.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "invalid request body", cause)
}

// errInvalidPathParam returns an error for an unusable path parameter.
func errInvalidPathParam(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPathParam, "invalid path parameter: "+name, cause)
}
