//go:build unix

package arena

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// MapAnonymous maps size bytes of private, zeroed, page-aligned memory outside of the Go heap for
// use as an arena buffer. The memory must be released with Unmap once every Controller referencing
// it is gone.
func MapAnonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, cerrors.Newf("cannot map an arena buffer of %d bytes", size)
	}

	buffer, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to map %d bytes of anonymous memory", size)
	}
	return buffer, nil
}

// Unmap releases memory obtained from MapAnonymous
func Unmap(buffer []byte) error {
	if err := unix.Munmap(buffer); err != nil {
		return cerrors.Wrap(err, "failed to unmap arena buffer")
	}
	return nil
}
