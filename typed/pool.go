package typed

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/fixedblock"
	"github.com/vkngwrapper/arsenal/fixedblock/arena"
	"github.com/vkngwrapper/arsenal/fixedblock/manager"
)

// Handle refers to a single T living in a block of a Pool's arena. The zero Handle refers to
// nothing and may be passed to Pool.Free.
type Handle[T any] struct {
	block  arena.BlockIndex
	object *T
}

// Get returns a pointer to the value. The pointer is only valid until the handle is freed or the
// underlying manager is cleared.
func (h Handle[T]) Get() *T {
	return h.object
}

// Index returns the arena block holding the value, or arena.NoBlock for the zero Handle
func (h Handle[T]) Index() arena.BlockIndex {
	if h.object == nil {
		return arena.NoBlock
	}
	return h.block
}

// Valid returns false for the zero Handle
func (h Handle[T]) Valid() bool {
	return h.object != nil
}

// Pool places values of type T into the blocks of a manager.Manager, one value per block. Several
// pools may share a manager as long as their types have the same object size.
//
// T must not contain pointers of any kind, since the garbage collector does not look inside arena
// memory. Pool is not safe for concurrent use.
type Pool[T any] struct {
	manager    *manager.Manager
	objectSize int
	alignment  uintptr
}

// NewPool creates a Pool backed by the provided manager. It fails with an error wrapping
// fixedblock.ErrPointerType if T contains pointers.
func NewPool[T any](m *manager.Manager) (*Pool[T], error) {
	if err := assertNoPointers[T](); err != nil {
		return nil, err
	}

	var zero T
	alignment := unsafe.Alignof(zero)
	if err := fixedblock.CheckPow2(alignment, "alignment"); err != nil {
		return nil, err
	}

	objectSize := int(unsafe.Sizeof(zero))
	if objectSize == 0 {
		objectSize = 1
	}

	return &Pool[T]{
		manager:    m,
		objectSize: fixedblock.AlignUp(objectSize, uint(alignment)),
		alignment:  alignment,
	}, nil
}

// ObjectSize returns the size in bytes that the Pool requests from its manager for every value
func (p *Pool[T]) ObjectSize() int {
	return p.objectSize
}

// New allocates a block and copies value into it. Errors from the manager are returned unchanged, so
// a full arena is reported as fixedblock.ErrOutOfMemory.
func (p *Pool[T]) New(value T) (Handle[T], error) {
	block, err := p.manager.Allocate(p.objectSize)
	if err != nil {
		return Handle[T]{}, err
	}

	data := p.manager.Block(block)
	pointer := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(pointer)%p.alignment != 0 {
		p.manager.Deallocate(block)
		return Handle[T]{}, cerrors.Wrapf(fixedblock.ErrMisaligned, "block %d is not aligned to %d bytes", block, p.alignment)
	}

	object := (*T)(pointer)
	*object = value

	return Handle[T]{block: block, object: object}, nil
}

// Free returns the handle's block to the manager. Freeing the zero Handle is a no-op.
func (p *Pool[T]) Free(handle Handle[T]) {
	if handle.object == nil {
		return
	}

	p.manager.Deallocate(handle.block)
}
