// Package errors provides custom error types for the wdsquery system.
// These errors enable programmatic error checking with errors.Is and
// errors.As, and keep whole-record failures distinct from field-level
// degradation.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As re-export the standard library helpers so callers need a single
// errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the wdsquery system
var (
	// ErrNotFound indicates that a requested system or object was not found
	ErrNotFound = errors.New("not found")

	// ErrEmptyResult indicates that a system exists but filtering removed every component
	ErrEmptyResult = errors.New("empty result")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedText indicates that an expected marker was absent from a text record
	ErrMalformedText = errors.New("malformed text")

	// ErrServiceUnavailable indicates that the remote service is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates that the remote service rejected a request for pacing reasons
	ErrRateLimited = errors.New("rate limited")

	// ErrIO indicates a failure reading or writing a file or stream
	ErrIO = errors.New("io failure")

	// ErrParse indicates content that could not be interpreted
	ErrParse = errors.New("parse failure")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// EmptyResultError reports that a system was found but no component survived
// the selection policy.
type EmptyResultError struct {
	System string
	Policy string
}

// Error implements the error interface
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("all components of %s removed by %s filter", e.System, e.Policy)
}

// Is implements errors.Is support
func (e *EmptyResultError) Is(target error) bool {
	return target == ErrEmptyResult
}

// NewEmptyResultError creates a new EmptyResultError
func NewEmptyResultError(system, policy string) *EmptyResultError {
	return &EmptyResultError{System: system, Policy: policy}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// UnknownPolicyError is returned when a filter policy value is not recognized.
// The filter still returns its unfiltered working copy alongside it.
type UnknownPolicyError struct {
	Policy string
}

// Error implements the error interface
func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown filter policy %q: must be one of abc, positive, negative", e.Policy)
}

// Is implements errors.Is support
func (e *UnknownPolicyError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewUnknownPolicyError creates a new UnknownPolicyError
func NewUnknownPolicyError(policy string) *UnknownPolicyError {
	return &UnknownPolicyError{Policy: policy}
}

// MalformedTextError records that a marker expected in a text record was
// missing. Parsers collect these rather than returning them.
type MalformedTextError struct {
	Marker string
	Fields []string
}

// Error implements the error interface
func (e *MalformedTextError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("marker %q not found, no data for %v", e.Marker, e.Fields)
	}
	return fmt.Sprintf("marker %q not found", e.Marker)
}

// Is implements errors.Is support
func (e *MalformedTextError) Is(target error) bool {
	return target == ErrMalformedText
}

// NewMalformedTextError creates a new MalformedTextError
func NewMalformedTextError(marker string, fields ...string) *MalformedTextError {
	return &MalformedTextError{Marker: marker, Fields: fields}
}

// APIError represents an error response from a remote catalog service
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrServiceUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(service string, statusCode int, message string) *APIError {
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents content that could not be interpreted, as opposed to
// content that could not be read.
type ParseError struct {
	Format  string // "csv", "yaml", "wds", "html", ...
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsEmptyResult checks if an error reports a fully filtered system
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownPolicy checks if an error is an UnknownPolicyError
func IsUnknownPolicy(err error) bool {
	var target *UnknownPolicyError
	return errors.As(err, &target)
}

// IsMalformedText checks if an error reports a missing text marker
func IsMalformedText(err error) bool {
	return errors.Is(err, ErrMalformedText)
}

// IsIO checks if an error is an I/O failure
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsParse checks if an error is a content/format failure
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsServiceUnavailable checks if an error indicates the remote service is down
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(service string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
