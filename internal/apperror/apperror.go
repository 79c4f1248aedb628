package apperror

import "errors"

type Code string

const (
	Usage     Code = "USAGE"
	Parse     Code = "PARSE"
	Missing   Code = "MISSING"
	Ambiguous Code = "AMBIGUOUS"
	NoData    Code = "NO_DATA"
	Internal  Code = "INTERNAL"
)

type AppError struct {
	code    Code
	message string
	cause   error
}

func New(code Code, message string) *AppError {
	return &AppError{code: code, message: message}
}

// Wrap attaches a code to err. The message is err's message.
func Wrap(code Code, err error) *AppError {
	return &AppError{code: code, message: err.Error(), cause: err}
}

func (e *AppError) Error() string   { return e.message }
func (e *AppError) Code() Code      { return e.code }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Unwrap() error   { return e.cause }

// CodeOf returns the code of the first AppError found in err's tree, or
// Internal when there is none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
