//go:build !unix && !windows

package fsys

import (
	"errors"
	"io/fs"
)

func isAccessDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
