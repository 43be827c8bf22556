//go:build !unix

package arena

import (
	cerrors "github.com/cockroachdb/errors"
)

// MapAnonymous allocates size bytes of zeroed memory for use as an arena buffer. Platforms without
// mmap fall back to the Go heap.
func MapAnonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, cerrors.Newf("cannot map an arena buffer of %d bytes", size)
	}
	return make([]byte, size), nil
}

// Unmap releases memory obtained from MapAnonymous
func Unmap(buffer []byte) error {
	return nil
}
