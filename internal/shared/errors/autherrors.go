package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeAccountNotFound    ErrorType = "account_not_found"
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a wrong password.
	ShouldLog bool
	// SecurityEvent marks failures worth tracking, e.g. a tampered token.
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the AppError
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError is returned for both an unknown email and a wrong password.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "email or password incorrect",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewTokenInvalidError creates an error for a malformed, tampered or wrongly signed token.
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "invalid " + tokenType,
			Code:    http.StatusUnauthorized,
			Details: "please login again",
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewTokenExpiredError creates an error for a token past its expiry.
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: "invalid " + tokenType,
			Code:    http.StatusUnauthorized,
			Details: "please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewAccountNotFoundError is returned when a refresh token names an account that no longer exists.
func NewAccountNotFoundError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountNotFound,
			Message: "account not found",
			Code:    http.StatusNotFound,
		},
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

// ErrUnauthorized is the only rejection the request guard emits for authentication failures.
var ErrUnauthorized = &AppError{
	Type:    ErrorTypeUnauthorized,
	Message: "Unauthorized access",
	Code:    http.StatusUnauthorized,
}

// ErrForbidden is the guard's rejection for an authenticated identity lacking a required role.
var ErrForbidden = &AppError{
	Type:    ErrorTypeForbidden,
	Message: "Access forbidden",
	Code:    http.StatusForbidden,
}

// IsInvalidToken reports whether err is an invalid or expired token error.
func IsInvalidToken(err error) bool {
	return IsType(err, ErrorTypeTokenInvalid) || IsType(err, ErrorTypeTokenExpired)
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
