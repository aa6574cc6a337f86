package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrValidation         = errors.New("validation failed")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrNetwork            = errors.New("remote request failed")
)
