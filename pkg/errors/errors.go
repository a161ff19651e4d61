// Package errors provides structured error handling for coinaddr.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrz1836/coinaddr/pkg/coinaddress"
)

// Exit codes.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input or rejected address
	ExitNotFound = 4 // Resource not found
)

// CoinError is the structured error type for coinaddr.
type CoinError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *CoinError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CoinError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for CoinError.
func (e *CoinError) Is(target error) bool {
	var t *CoinError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &CoinError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &CoinError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrNotFound = &CoinError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}

	// Address validation errors, one per coinaddress.ValidationError.
	ErrTooShort = &CoinError{
		Code:     coinaddress.TooShort.Code(),
		Message:  "address is empty",
		ExitCode: ExitInput,
	}

	ErrInvalidEncoding = &CoinError{
		Code:     coinaddress.InvalidEncoding.Code(),
		Message:  "address contains characters outside the base58 alphabet",
		ExitCode: ExitInput,
	}

	ErrHashMismatch = &CoinError{
		Code:     coinaddress.HashMismatch.Code(),
		Message:  "address checksum does not match",
		ExitCode: ExitInput,
	}

	ErrNotBitcoin = &CoinError{
		Code:     coinaddress.NotBitcoin.Code(),
		Message:  "address is not a bitcoin address",
		ExitCode: ExitInput,
	}

	ErrNotLitecoin = &CoinError{
		Code:     coinaddress.NotLitecoin.Code(),
		Message:  "address is not a litecoin address",
		ExitCode: ExitInput,
	}

	ErrInvalidAddress = &CoinError{
		Code:     "INVALID_ADDRESS",
		Message:  "one or more addresses are invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownCurrency = &CoinError{
		Code:     "UNKNOWN_CURRENCY",
		Message:  "unknown currency",
		ExitCode: ExitInput,
	}

	// Config-specific errors.
	ErrConfigNotFound = &CoinError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &CoinError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &CoinError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}

	ErrInvalidValue = &CoinError{
		Code:     "INVALID_VALUE",
		Message:  "invalid value",
		ExitCode: ExitInput,
	}
)

// FromValidation converts a coinaddress.ValidationError into its structured
// counterpart. The original error stays reachable through Unwrap. Other
// errors are returned unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var ve coinaddress.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var sentinel *CoinError
	switch ve {
	case coinaddress.TooShort:
		sentinel = ErrTooShort
	case coinaddress.InvalidEncoding:
		sentinel = ErrInvalidEncoding
	case coinaddress.HashMismatch:
		sentinel = ErrHashMismatch
	case coinaddress.NotBitcoin:
		sentinel = ErrNotBitcoin
	case coinaddress.NotLitecoin:
		sentinel = ErrNotLitecoin
	default:
		return err
	}

	return &CoinError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Cause:    err,
		ExitCode: sentinel.ExitCode,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ce *CoinError
	if errors.As(err, &ce) {
		return &CoinError{
			Code:       ce.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ce.Message),
			Details:    ce.Details,
			Suggestion: ce.Suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CoinError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ce *CoinError
	if errors.As(err, &ce) {
		return &CoinError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    details,
			Suggestion: ce.Suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CoinError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ce *CoinError
	if errors.As(err, &ce) {
		return &CoinError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    ce.Details,
			Suggestion: suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CoinError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ce *CoinError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}

	var ve coinaddress.ValidationError
	if errors.As(err, &ve) {
		return ExitInput
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var ce *CoinError
	if errors.As(err, &ce) {
		return ce.Code
	}

	var ve coinaddress.ValidationError
	if errors.As(err, &ve) {
		return ve.Code()
	}

	return "GENERAL_ERROR"
}
