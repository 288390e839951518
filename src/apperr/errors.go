package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP error translator.
type Kind string

const (
	KindValidation    Kind = "ValidationError"
	KindCast          Kind = "CastError"
	KindNotFound      Kind = "NotFoundError"
	KindConflict      Kind = "ConflictError"
	KindPartialUpdate Kind = "PartialUpdateError"
	KindInternal      Kind = "UnhandledError"
)

// AppError is the error type handlers return to the centralized translator
type AppError struct {
	Kind    Kind
	Message string
	Errors  []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func Validation(message string, errorsList ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Errors: errorsList}
}

// Cast reports a malformed identifier in the request params
func Cast(param, value string) *AppError {
	return &AppError{
		Kind:    KindCast,
		Message: fmt.Sprintf("invalid %s: %q", param, value),
	}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// PartialUpdate is returned once a multi-document change has been rolled back.
func PartialUpdate(err error) *AppError {
	return &AppError{
		Kind:    KindPartialUpdate,
		Message: "The operation could not be completed and was rolled back",
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
