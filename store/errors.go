package store

import (
	"errors"
	"fmt"
)

// State errors. These indicate misuse of the store's lifecycle rather
// than bad data, and are not meant to be handled by normal flow.
var (
	// ErrNotInitialized indicates an operation that requires Initialize
	// to have completed.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrAlreadyInitialized indicates a lifecycle operation arriving
	// after Initialize.
	ErrAlreadyInitialized = errors.New("store already initialized")

	// ErrNoBlueprints indicates Initialize was called before any
	// blueprint was added.
	ErrNoBlueprints = errors.New("store has no blueprints")

	// ErrOptionNotFound indicates the (section, option) pair is not
	// declared or not populated.
	ErrOptionNotFound = errors.New("option not found")

	// ErrDeleteUnsupported indicates an attempt to delete an option.
	// A declared option always exists once the store is initialized.
	ErrDeleteUnsupported = errors.New("deleting an option is unsupported")
)

// File errors, raised while reading, creating directories, or replacing
// the configuration file.
var (
	// ErrFileNotFound indicates a missing file where one was required.
	ErrFileNotFound = errors.New("file not found")

	// ErrIsADirectory indicates the configuration path names a directory.
	ErrIsADirectory = errors.New("path is a directory")

	// ErrPermission indicates the filesystem denied the operation.
	ErrPermission = errors.New("permission denied")

	// ErrSameFile indicates the replace target and the temporary file
	// are the same file.
	ErrSameFile = errors.New("source and destination are the same file")

	// ErrUnsupportedEncoding indicates the configured text encoding is
	// not a known IANA charset.
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")
)

// FileError is the catch-all I/O error for configuration file
// operations.
type FileError struct {
	// Path is the file or directory involved.
	Path string
	// Op names the failing operation.
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("config file error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}
