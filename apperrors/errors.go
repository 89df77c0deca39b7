package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindAuth                 Kind = "AuthError"
	KindRoleMissing          Kind = "RoleMissing"
	KindPasswordMismatch     Kind = "PasswordMismatch"
	KindValidation           Kind = "ValidationError"
	KindUpload               Kind = "UploadError"
	KindNotFound             Kind = "NotFound"
	KindWrite                Kind = "WriteError"
	KindNotAuthenticated     Kind = "NotAuthenticated"
	KindForbidden            Kind = "Forbidden"
	KindConfirmationRequired Kind = "ConfirmationRequired"
	KindNotImplemented       Kind = "NotImplemented"
	KindInternal             Kind = "InternalError"
)

var statusByKind = map[Kind]int{
	KindAuth:                 http.StatusUnauthorized,
	KindRoleMissing:          http.StatusForbidden,
	KindPasswordMismatch:     http.StatusBadRequest,
	KindValidation:           http.StatusBadRequest,
	KindUpload:               http.StatusBadGateway,
	KindNotFound:             http.StatusNotFound,
	KindWrite:                http.StatusInternalServerError,
	KindNotAuthenticated:     http.StatusUnauthorized,
	KindForbidden:            http.StatusForbidden,
	KindConfirmationRequired: http.StatusPreconditionRequired,
	KindNotImplemented:       http.StatusNotImplemented,
	KindInternal:             http.StatusInternalServerError,
}

// Error is the failure type every operation returns. Message is shown to the
// user as is.
type Error struct {
	Kind    Kind   `json:"error"`
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can test against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, message string, err error) *Error {
	code, ok := statusByKind[kind]
	if !ok {
		code = http.StatusInternalServerError
	}
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func Auth(message string, err error) *Error { return New(KindAuth, message, err) }
func Validation(message string) *Error { return New(KindValidation, message, nil) }
func Upload(message string, err error) *Error { return New(KindUpload, message, err) }
func NotFound(message string) *Error { return New(KindNotFound, message, nil) }
func Write(message string, err error) *Error { return New(KindWrite, message, err) }
func Internal(message string, err error) *Error { return New(KindInternal, message, err) }
func NotImplemented(message string) *Error { return New(KindNotImplemented, message, nil) }
func Forbidden(message string) *Error { return New(KindForbidden, message, nil) }
func NotAuthenticated(message string) *Error { return New(KindNotAuthenticated, message, nil) }
func ConfirmationRequired(message string) *Error { return New(KindConfirmationRequired, message, nil) }

var (
	ErrAuth                 = New(KindAuth, "", nil)
	ErrRoleMissing          = New(KindRoleMissing, "User role not found!", nil)
	ErrPasswordMismatch     = New(KindPasswordMismatch, "Passwords do not match!", nil)
	ErrValidation           = New(KindValidation, "", nil)
	ErrUpload               = New(KindUpload, "", nil)
	ErrNotFound             = New(KindNotFound, "", nil)
	ErrWrite                = New(KindWrite, "", nil)
	ErrNotAuthenticated     = New(KindNotAuthenticated, "Please login to continue", nil)
	ErrForbidden            = New(KindForbidden, "", nil)
	ErrConfirmationRequired = New(KindConfirmationRequired, "", nil)
	ErrNotImplemented       = New(KindNotImplemented, "", nil)
)

// From returns err as an *Error, wrapping anything else as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return From(err).Kind
}
