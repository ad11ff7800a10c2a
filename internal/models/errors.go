package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrDirectoryNotFound ErrorType = iota
	ErrNoVersionsInstalled
	ErrNoLayoutVersions
	ErrVersionNotFound
	ErrInvalidFormat
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrDirectoryNotFound:
		return "DirectoryNotFound"
	case ErrNoVersionsInstalled:
		return "NoVersionsInstalled"
	case ErrNoLayoutVersions:
		return "NoLayoutVersions"
	case ErrVersionNotFound:
		return "VersionNotFound"
	case ErrInvalidFormat:
		return "InvalidFormat"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// PeekError represents an error raised while discovering packages
type PeekError struct {
	Type   ErrorType
	Source Source
	Path   string
	Err    error
}

// Error implements the error interface
func (e *PeekError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *PeekError) Unwrap() error {
	return e.Err
}

// IsErrorType reports whether err wraps a PeekError of the given type
func IsErrorType(err error, t ErrorType) bool {
	var pe *PeekError
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}

// IsSourceAbsent reports whether err only means a package manager has nothing on disk
func IsSourceAbsent(err error) bool {
	return IsErrorType(err, ErrDirectoryNotFound) ||
		IsErrorType(err, ErrNoVersionsInstalled) ||
		IsErrorType(err, ErrNoLayoutVersions)
}
