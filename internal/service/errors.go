package service

import "errors"

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid status")
)

// requestError pairs one of the sentinel kinds with the message returned
// to the caller, so handlers can keep matching with errors.Is.
type requestError struct {
	kind error
	msg  string
}

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return e.kind }

func invalid(msg string) error       { return &requestError{kind: ErrInvalidInput, msg: msg} }
func denied(msg string) error        { return &requestError{kind: ErrPermissionDenied, msg: msg} }
func notFound(msg string) error      { return &requestError{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error      { return &requestError{kind: ErrConflict, msg: msg} }
func unauthorized(msg string) error  { return &requestError{kind: ErrInvalidCredentials, msg: msg} }
func invalidStatus(msg string) error { return &requestError{kind: ErrInvalidStatus, msg: msg} }
