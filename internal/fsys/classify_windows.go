//go:build windows

package fsys

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"
)

// An editor or compiler holding the file open shows up as a sharing or lock
// violation; plain ERROR_ACCESS_DENIED unwraps to fs.ErrPermission.
func isAccessDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
