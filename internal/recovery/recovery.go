/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package recovery classifies AWS API errors so callers can decide whether a
// failure is worth retrying and how loudly to log it.
package recovery

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrorClassification categorizes errors for retry and logging decisions.
type ErrorClassification string

const (
	ErrorTransient ErrorClassification = "Transient"
	ErrorPermanent ErrorClassification = "Permanent"
	ErrorUnknown   ErrorClassification = "Unknown"
)

// transientAWSErrorCodes contains AWS error codes that indicate transient failures.
var transientAWSErrorCodes = map[string]bool{
	"Throttling":                             true,
	"RequestLimitExceeded":                   true,
	"ServiceUnavailable":                     true,
	"InternalError":                          true,
	"RequestTimeout":                         true,
	"ProvisionedThroughputExceededException": true,
}

// permanentAWSErrorCodes contains AWS error codes that indicate permanent failures.
var permanentAWSErrorCodes = map[string]bool{
	"ResourceNotFoundException":      true,
	"ValidationException":            true,
	"ValidationError":                true,
	"InvalidParameterException":      true,
	"AccessDenied":                   true,
	"AccessDeniedException":          true,
	"UnauthorizedException":          true,
	"UnauthorizedOperation":          true,
	"ResourceAlreadyExistsException": true,
}

// authorizationAWSErrorCodes contains AWS error codes returned when the
// caller lacks permission, most notably when an STS AssumeRole is rejected
// by a missing or wrong trust policy.
var authorizationAWSErrorCodes = map[string]bool{
	"AccessDenied":          true,
	"AccessDeniedException": true,
	"UnauthorizedException": true,
	"UnauthorizedOperation": true,
	"ExpiredToken":          true,
	"ExpiredTokenException": true,
	"InvalidClientTokenId":  true,
}

// ClassifyError determines if an error is transient or permanent.
// It first checks for AWS SDK typed errors, then falls back to string matching.
func ClassifyError(err error) ErrorClassification {
	if err == nil {
		return ErrorUnknown
	}

	// Check for AWS API errors using smithy-go interface
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if transientAWSErrorCodes[code] {
			return ErrorTransient
		}
		if permanentAWSErrorCodes[code] {
			return ErrorPermanent
		}
	}

	// Fallback to string matching for non-AWS errors
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"timeout",
		"connection refused",
		"temporary failure",
		"rate limit",
		"throttling",
		"service unavailable",
		"too many requests",
		"deadline exceeded",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return ErrorTransient
		}
	}

	permanentPatterns := []string{
		"not found", "already exists", "invalid",
		"forbidden", "unauthorized", "permission denied",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errMsg, pattern) {
			return ErrorPermanent
		}
	}

	return ErrorUnknown
}

// IsAuthorization reports whether err is an authorization rejection from an
// AWS API. Authorization failures must never be retried.
func IsAuthorization(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return authorizationAWSErrorCodes[apiErr.ErrorCode()]
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "accessdenied") ||
		strings.Contains(errMsg, "not authorized") ||
		strings.Contains(errMsg, "unauthorized")
}
