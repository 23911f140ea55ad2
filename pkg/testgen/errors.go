package testgen

import (
	"errors"
	"fmt"
)

// Errors returned at the file-system boundary. They are never retried.
var (
	ErrCreateDir     = errors.New("failed to create output directory")
	ErrWriteFile     = errors.New("failed to write output file")
	ErrInvalidConfig = errors.New("invalid generator config")
)

// FileError records which path an output operation failed on.
// It matches both its kind (ErrCreateDir or ErrWriteFile) and the
// underlying os error under errors.Is.
type FileError struct {
	Op   error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%v %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}

func newFileError(op error, path string, err error) *FileError {
	return &FileError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
