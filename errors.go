package s3

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDestination indicates a destination without a "bucket/key" form.
	ErrInvalidDestination = errors.New("destination path must include bucket and object key (e.g. bucket/file.txt)")

	// ErrMissingConfig indicates that required connection details are absent.
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrUploadFailed indicates that the object store rejected the upload.
	ErrUploadFailed = errors.New("upload rejected by object store")

	// ErrSourceChanged indicates that the source file changed size after it was hashed.
	ErrSourceChanged = errors.New("source file changed after hashing")
)

// MissingConfigError lists every required environment variable that is unset.
type MissingConfigError struct {
	Missing []string
}

// Error implements the error interface.
func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

// Unwrap makes errors.Is(err, ErrMissingConfig) hold.
func (e *MissingConfigError) Unwrap() error {
	return ErrMissingConfig
}

// UploadFailedError occurs when the object store answers with a status >= 300.
// Body is the response body exactly as received.
type UploadFailedError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Error implements the error interface.
func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("upload failed with status %s", e.Status)
}

// Unwrap makes errors.Is(err, ErrUploadFailed) hold.
func (e *UploadFailedError) Unwrap() error {
	return ErrUploadFailed
}
