package fsys

import (
	"fmt"

	"scaffix/internal/domain"
)

// Classify wraps a file operation error with domain.ErrAccessDenied when the
// file is locked by another process or not writable, and with domain.ErrIO
// otherwise. nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if isAccessDenied(err) {
		return fmt.Errorf("%w: %w", domain.ErrAccessDenied, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrIO, err)
}
