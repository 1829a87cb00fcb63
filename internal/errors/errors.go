// Package errors provides standardized error handling for fexplore.
// It defines a small set of error kinds that callers branch on instead of
// parsing operating system messages, plus helpers for creating, wrapping and
// classifying errors returned by the os package.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Other ErrorKind = iota
	// File error kinds
	NotFound
	PermissionDenied
	AlreadyExists
	NotADirectory
	IsADirectory
	// Config error kinds
	InvalidConfig
	// Input error kinds
	InvalidInputData
)

var kindNames = map[ErrorKind]string{
	Other:            "other",
	NotFound:         "not found",
	PermissionDenied: "permission denied",
	AlreadyExists:    "already exists",
	NotADirectory:    "not a directory",
	IsADirectory:     "is a directory",
	InvalidConfig:    "invalid config",
	InvalidInputData: "invalid input",
}

// String returns a short human readable name for the kind
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrNotFound         = NewFileError("file not found", "", "", NotFound, nil)
	ErrPermissionDenied = NewFileError("permission denied", "", "", PermissionDenied, nil)
	ErrAlreadyExists    = NewFileError("file already exists", "", "", AlreadyExists, nil)
	ErrInvalidConfig    = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrInvalidInput     = NewInvalidInputError("invalid input data", nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations.
// Op names the operation that failed (open, lstat, create, unlink, chdir).
type FileError struct {
	ApplicationError
	op   string
	path string
}

// NewFileError creates a new file error
func NewFileError(msg, op, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		op:   op,
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.Reason())
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// Op returns the operation that failed
func (e *FileError) Op() string {
	return e.op
}

// Reason returns the operating system's failure text without the
// operation and path decoration added by the os package.
func (e *FileError) Reason() string {
	if e.err == nil {
		return e.kind.String()
	}
	var pathErr *fs.PathError
	if errors.As(e.err, &pathErr) {
		return pathErr.Err.Error()
	}
	return e.err.Error()
}

// FromOS classifies an error returned by an os or syscall call into a
// FileError carrying one of the file error kinds. A nil err yields nil.
func FromOS(op, path string, err error) *FileError {
	if err == nil {
		return nil
	}
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr
	}
	kind := classify(err)
	return NewFileError(op+" failed", op, path, kind, err)
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, syscall.EISDIR):
		return IsADirectory
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	}
	return Other
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// InvalidInputError represents errors related to malformed user input
type InvalidInputError struct {
	ApplicationError
	input string
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(msg string, err error) *InvalidInputError {
	return &InvalidInputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidInputData,
		},
	}
}

// WithInput records the offending input text
func (e *InvalidInputError) WithInput(input string) *InvalidInputError {
	e.input = input
	return e
}

// Input returns the offending input text
func (e *InvalidInputError) Input() string {
	return e.input
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Other,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Other,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: KindOf(err),
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first error in err's chain that carries
// one. Plain OS errors are classified directly. A nil err is Other.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Other
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return classify(err)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == NotFound
}

// IsPermissionDenied checks if the error is a permission denied error
func IsPermissionDenied(err error) bool {
	return err != nil && KindOf(err) == PermissionDenied
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return err != nil && KindOf(err) == AlreadyExists
}

// IsNotADirectory checks if the error is a not a directory error
func IsNotADirectory(err error) bool {
	return err != nil && KindOf(err) == NotADirectory
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidInputError checks if the error is an invalid input error
func IsInvalidInputError(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}
