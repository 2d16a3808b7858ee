package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when geocoding yields no match or a non-success status.
var ErrNotFound = errors.New("city not found")

// ErrInvalidSetting is returned when a settings update carries a value outside its enum.
var ErrInvalidSetting = errors.New("invalid setting value")

// TransportError wraps a network or decode failure of an upstream call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a settings load or save failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("settings %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
