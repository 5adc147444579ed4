package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized marks a 401 from any authenticated endpoint. The caller
// must terminate the local session when it sees this.
var ErrUnauthorized = errors.New("unauthorized")

// AuthError is a rejected login or register attempt, carrying the
// server-provided message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ValidationError aggregates field messages from a rejected payload.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "invalid request"
	}
	return strings.Join(e.Messages, " ")
}

// LoadError is any other failed fetch: a non-success status or a transport
// failure.
type LoadError struct {
	Op     string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
}

func (e *LoadError) Unwrap() error { return e.Err }
