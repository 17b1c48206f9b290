package main

import "errors"

// Erros de domínio; a borda HTTP decide o status em respondError
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// apiError carrega a mensagem exibida ao cliente junto do erro de domínio
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func invalidArgument(msg string) error { return &apiError{kind: ErrInvalidArgument, msg: msg} }
func unauthenticated(msg string) error { return &apiError{kind: ErrUnauthenticated, msg: msg} }
func forbidden(msg string) error       { return &apiError{kind: ErrForbidden, msg: msg} }
func notFound(msg string) error        { return &apiError{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error        { return &apiError{kind: ErrConflict, msg: msg} }
