// Package errors provides a hierarchical error system for layoutsyn operations.
// It implements typed errors that can be inspected and handled differently
// based on their category, so the CLI can tell configuration mistakes apart
// from dictionary I/O failures when reporting them.
package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors that can occur while
// finding synonyms. Callers compare against them through errors.Is with a
// zero-value LayoutsynError of the wanted type.
const (
	ErrTypeFile       ErrorType = "file"
	ErrTypeConfig     ErrorType = "config"
	ErrTypeDictionary ErrorType = "dictionary"
	ErrTypeLayout     ErrorType = "layout"
)

// LayoutsynError is the base error type that provides structured error information.
// Specific error types embed it, and the path and cause carried here give the
// top-level driver enough context to print a single clear line before exiting.
type LayoutsynError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *LayoutsynError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *LayoutsynError) Unwrap() error {
	return e.Cause
}

// Is implements error identity checking for errors.Is.
// Two LayoutsynErrors match when they share the same ErrorType.
func (e *LayoutsynError) Is(target error) bool {
	t, ok := target.(*LayoutsynError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// FileError represents file system operation errors.
type FileError struct {
	*LayoutsynError
}

// NewFileError creates a file operation error with context.
func NewFileError(path, message string, cause error) *FileError {
	return &FileError{
		LayoutsynError: &LayoutsynError{
			Type:    ErrTypeFile,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// FileNotFoundError represents errors when files cannot be located.
type FileNotFoundError struct {
	*FileError
}

// NewFileNotFoundError creates a file not found error.
func NewFileNotFoundError(path string, cause error) *FileNotFoundError {
	return &FileNotFoundError{
		FileError: NewFileError(path, "file not found", cause),
	}
}

// FileNotReadableError represents errors when files exist but cannot be read.
type FileNotReadableError struct {
	*FileError
}

// NewFileNotReadableError creates a file read permission error.
func NewFileNotReadableError(path string, cause error) *FileNotReadableError {
	return &FileNotReadableError{
		FileError: NewFileError(path, "file not readable", cause),
	}
}

// ConfigError represents configuration validation and parsing errors.
// These are raised before any dictionary is loaded, so a bad flag never
// costs a full read of a large word list.
type ConfigError struct {
	*LayoutsynError
}

// NewConfigError creates a configuration error without path context.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		LayoutsynError: &LayoutsynError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewConfigErrorWithPath creates a configuration error tied to a specific file,
// such as a config file that fails to decode.
func NewConfigErrorWithPath(path, message string, cause error) *ConfigError {
	return &ConfigError{
		LayoutsynError: &LayoutsynError{
			Type:    ErrTypeConfig,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// DictionaryError represents failures while reading word-list content,
// as opposed to failures opening the file.
type DictionaryError struct {
	*LayoutsynError
}

// NewDictionaryError creates a dictionary read error.
func NewDictionaryError(path, message string, cause error) *DictionaryError {
	return &DictionaryError{
		LayoutsynError: &LayoutsynError{
			Type:    ErrTypeDictionary,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// LayoutError represents unknown layout names and key tables that cannot be paired.
type LayoutError struct {
	*LayoutsynError
}

// NewLayoutError creates a layout error.
func NewLayoutError(message string, cause error) *LayoutError {
	return &LayoutError{
		LayoutsynError: &LayoutsynError{
			Type:    ErrTypeLayout,
			Message: message,
			Cause:   cause,
		},
	}
}

// WrapFileError converts standard Go errors into typed LayoutsynError instances.
// Missing files and permission failures get their own types; everything else
// is reported as a generic file operation failure.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return NewFileNotFoundError(absPath, err)
	case stderrors.Is(err, fs.ErrPermission):
		return NewFileNotReadableError(absPath, err)
	default:
		return NewFileError(absPath, "file operation failed", err)
	}
}

func (e *LayoutsynError) base() *LayoutsynError {
	return e
}

// Describe formats err for the terminal. For typed errors the underlying
// cause is appended, so the operating system's reason for a failed open is
// shown alongside the message.
func Describe(err error) string {
	var typed interface{ base() *LayoutsynError }
	if stderrors.As(err, &typed) {
		if cause := typed.base().Cause; cause != nil {
			return err.Error() + ": " + cause.Error()
		}
	}
	return err.Error()
}
