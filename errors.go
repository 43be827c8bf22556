package fixedblock

import "github.com/pkg/errors"

// ErrOutOfMemory is the error returned when no block of the requested size can currently be supplied.
// It covers every allocation failure: an arena too small for a single block, an exhausted free list,
// and a request whose size differs from the size the manager was fixed at.
var ErrOutOfMemory error = errors.New("out of memory")

// ErrMisaligned is the error returned when a block cannot hold a value of the requested type because
// the underlying buffer does not satisfy the type's alignment
var ErrMisaligned error = errors.New("block is not aligned for the requested type")

// ErrPointerType is the error returned when a type that contains pointers is placed in arena memory.
// The garbage collector does not scan arena bytes, so only pointer-free types may live there.
var ErrPointerType error = errors.New("type contains pointers")

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")
