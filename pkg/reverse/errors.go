// File: pkg/reverse/errors.go
package reverse

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a FileError.
type ErrorKind int

const (
	NotFound    ErrorKind = iota + 1 // Input file is missing or cannot be read.
	NotUTF8                          // Input file bytes are not valid UTF-8.
	WriteFailed                      // Output file cannot be created or written.
)

// Sentinels for matching a FileError kind with errors.Is.
var (
	ErrNotFound    = errors.New("input file not found or unreadable")
	ErrNotUTF8     = errors.New("input file is not valid UTF-8")
	ErrWriteFailed = errors.New("output file could not be written")
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotUTF8:
		return "not utf-8"
	case WriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case NotUTF8:
		return ErrNotUTF8
	case WriteFailed:
		return ErrWriteFailed
	default:
		return nil
	}
}

// FileError reports a failed read or write of Path.
type FileError struct {
	Kind ErrorKind
	Path string
	Err  error // Underlying cause, may be nil.
}

func (e *FileError) Error() string {
	msg := e.Kind.sentinel()
	if msg == nil {
		msg = errors.New(e.Kind.String())
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Path)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *FileError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
