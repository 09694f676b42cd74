package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPathExists signals a skip, never a failure
	ErrPathExists = errors.New("path already exists")
	// ErrAccessDenied means the target is locked by another process or not writable
	ErrAccessDenied = errors.New("file access denied")
	// ErrIO covers any other read, write or create failure
	ErrIO = errors.New("i/o failure")
	// ErrValidation means the generation table is malformed; nothing was written
	ErrValidation = errors.New("invalid spec")
	// ErrBatchFailed is returned after a completed batch in which some files failed
	ErrBatchFailed = errors.New("one or more files failed")
)

// FileError ties an error to the file it happened on
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
