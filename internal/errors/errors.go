package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeOutOfRange indicates a segment index outside a wall's valid range
	CodeOutOfRange Code = "out_of_range"

	// CodeInvalidLocation indicates a wall location that does not exist on the boundary
	CodeInvalidLocation Code = "invalid_location"

	// CodeDoorAlreadyPresent indicates an attempt to add a door where one already exists
	CodeDoorAlreadyPresent Code = "door_already_present"

	// CodeNoDoorPresent indicates an attempt to remove a door from a solid segment
	CodeNoDoorPresent Code = "no_door_present"

	// CodeEmptyCatalog indicates a database build with zero template records
	CodeEmptyCatalog Code = "empty_catalog"

	// CodeInvalidSpecification indicates a query with a non-positive footprint
	CodeInvalidSpecification Code = "invalid_specification"

	// CodeSpecificationNotFound indicates a queried specification with no templates
	CodeSpecificationNotFound Code = "specification_not_found"

	// CodeThemeNotFound indicates a theme with no recorded templates
	CodeThemeNotFound Code = "theme_not_found"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// OutOfRangef creates a formatted out of range error
func OutOfRangef(format string, args ...any) *Error {
	return Newf(CodeOutOfRange, format, args...)
}

// InvalidLocationf creates a formatted invalid location error
func InvalidLocationf(format string, args ...any) *Error {
	return Newf(CodeInvalidLocation, format, args...)
}

// DoorAlreadyPresentf creates a formatted door already present error
func DoorAlreadyPresentf(format string, args ...any) *Error {
	return Newf(CodeDoorAlreadyPresent, format, args...)
}

// NoDoorPresentf creates a formatted no door present error
func NoDoorPresentf(format string, args ...any) *Error {
	return Newf(CodeNoDoorPresent, format, args...)
}

// EmptyCatalog creates an empty catalog error
func EmptyCatalog(message string) *Error {
	return New(CodeEmptyCatalog, message)
}

// InvalidSpecificationf creates a formatted invalid specification error
func InvalidSpecificationf(format string, args ...any) *Error {
	return Newf(CodeInvalidSpecification, format, args...)
}

// SpecificationNotFoundf creates a formatted specification not found error
func SpecificationNotFoundf(format string, args ...any) *Error {
	return Newf(CodeSpecificationNotFound, format, args...)
}

// ThemeNotFoundf creates a formatted theme not found error
func ThemeNotFoundf(format string, args ...any) *Error {
	return Newf(CodeThemeNotFound, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsOutOfRange checks if the error is an out of range error
func IsOutOfRange(err error) bool {
	return Is(err, CodeOutOfRange)
}

// IsInvalidLocation checks if the error is an invalid location error
func IsInvalidLocation(err error) bool {
	return Is(err, CodeInvalidLocation)
}

// IsDoorAlreadyPresent checks if the error is a door already present error
func IsDoorAlreadyPresent(err error) bool {
	return Is(err, CodeDoorAlreadyPresent)
}

// IsNoDoorPresent checks if the error is a no door present error
func IsNoDoorPresent(err error) bool {
	return Is(err, CodeNoDoorPresent)
}

// IsEmptyCatalog checks if the error is an empty catalog error
func IsEmptyCatalog(err error) bool {
	return Is(err, CodeEmptyCatalog)
}

// IsInvalidSpecification checks if the error is an invalid specification error
func IsInvalidSpecification(err error) bool {
	return Is(err, CodeInvalidSpecification)
}

// IsSpecificationNotFound checks if the error is a specification not found error
func IsSpecificationNotFound(err error) bool {
	return Is(err, CodeSpecificationNotFound)
}

// IsThemeNotFound checks if the error is a theme not found error
func IsThemeNotFound(err error) bool {
	return Is(err, CodeThemeNotFound)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
