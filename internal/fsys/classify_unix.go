//go:build unix

package fsys

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

func isAccessDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, unix.EBUSY) ||
		errors.Is(err, unix.ETXTBSY)
}
