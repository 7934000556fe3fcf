// Package errors provides standardized error handling for the plan
// generation pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Request errors: fatal, generation never attempted.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Attempt-level errors: recovered internally via retry, never
	// surfaced to the caller.
	ErrCodeLLMTimeout           ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMRequestFailed     ErrorCode = "LLM_REQUEST_FAILED"
	ErrCodeEmptyCompletion      ErrorCode = "EMPTY_COMPLETION"
	ErrCodeModelResponseInvalid ErrorCode = "MODEL_RESPONSE_INVALID"

	// Configuration/data errors: fatal, alert operators.
	ErrCodeCatalogExhausted ErrorCode = "CATALOG_EXHAUSTED"

	// Collaborator errors: outside generation correctness.
	ErrCodePersistenceFailed ErrorCode = "PERSISTENCE_FAILED"
	ErrCodeCacheFailed       ErrorCode = "CACHE_FAILED"
	ErrCodePlanNotFound      ErrorCode = "PLAN_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is lets errors.Is match two StandardErrors by code.
func (e *StandardError) Is(target error) bool {
	var se *StandardError
	if errors.As(target, &se) {
		return e.Code == se.Code
	}
	return false
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidInputError creates a non-retryable request validation
// error. Violations carries one message per violated field.
func NewInvalidInputError(violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Request validation failed",
		Details:   strings.Join(violations, "; "),
		Retryable: false,
		Metadata:  map[string]interface{}{"violations": violations},
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable model call timeout error.
func NewLLMTimeoutError(attempt int) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Generative service call timed out",
		Details:   fmt.Sprintf("attempt: %d", attempt),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMRequestFailedError creates a retryable model transport error.
func NewLLMRequestFailedError(attempt int, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMRequestFailed,
		Message:   "Generative service request failed",
		Details:   fmt.Sprintf("attempt: %d, error: %s", attempt, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyCompletionError creates a retryable empty completion error.
func NewEmptyCompletionError(attempt int) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyCompletion,
		Message:   "Generative service returned an empty completion",
		Details:   fmt.Sprintf("attempt: %d", attempt),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelResponseInvalidError creates a retryable parse/validation
// error for a single model attempt. Reasons carries every violation
// found in one validation pass, since each retry costs a network
// round trip.
func NewModelResponseInvalidError(attempt int, reasons []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelResponseInvalid,
		Message:   "Model response failed plan validation",
		Details:   fmt.Sprintf("attempt: %d, reasons: %s", attempt, strings.Join(reasons, "; ")),
		Retryable: true,
		Metadata:  map[string]interface{}{"reasons": reasons},
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogExhaustedError creates a non-retryable catalog
// configuration error. Indicates a data defect, not a request defect,
// and should alert operators.
func NewCatalogExhaustedError(category, level string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogExhausted,
		Message:   "Catalog has no items for a required cell",
		Details:   fmt.Sprintf("category: %s, level: %s", category, level),
		Retryable: false,
		Metadata: map[string]interface{}{
			"category": category,
			"level":    level,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewPersistenceFailedError creates a retryable plan store error.
func NewPersistenceFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePersistenceFailed,
		Message:   "Plan persistence failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheFailedError creates a non-retryable (best effort) cache error.
func NewCacheFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheFailed,
		Message:   "Plan cache operation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanNotFoundError creates a non-retryable lookup error.
func NewPlanNotFoundError(planID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanNotFound,
		Message:   "Plan not found",
		Details:   fmt.Sprintf("planId: %s", planID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Error Classification
// ==========================

// IsAttemptError reports whether err is a single-attempt failure that
// counts against the retry budget rather than surfacing to the caller.
func IsAttemptError(err error) bool {
	var se *StandardError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code {
	case ErrCodeLLMTimeout, ErrCodeLLMRequestFailed,
		ErrCodeEmptyCompletion, ErrCodeModelResponseInvalid:
		return true
	}
	return false
}

// CodeOf extracts the error code, or INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return "INTERNAL_ERROR"
}

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeInvalidInput:
		return "request"
	case ErrCodeLLMTimeout, ErrCodeLLMRequestFailed, ErrCodeEmptyCompletion, ErrCodeModelResponseInvalid:
		return "attempt"
	case ErrCodeCatalogExhausted:
		return "configuration"
	case ErrCodePersistenceFailed, ErrCodeCacheFailed, ErrCodePlanNotFound:
		return "collaborator"
	}
	return "internal"
}

// ToHTTPStatus maps an error to the status the API surface returns.
// Attempt-level codes never reach here because the orchestrator
// absorbs them into the fallback path.
func ToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeInvalidInput:
		return 400
	case ErrCodePlanNotFound:
		return 404
	case ErrCodeCatalogExhausted:
		return 503
	default:
		return 500
	}
}
