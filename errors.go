package main

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateField = errors.New("invalid date field")
	ErrFolderNotFound   = errors.New("folder not found")
	ErrPermissionDenied = errors.New("permission denied controlling Notes")
	ErrNoData           = errors.New("note source returned no data")
)

// ScriptError represents a failed scripting bridge invocation
type ScriptError struct {
	ExitCode int
	Stderr   string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script exited with status %d: %s", e.ExitCode, e.Stderr)
}

// ParseError carries the raw note source output that could not be decoded
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse notes JSON: %v. Raw output:\n%s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
