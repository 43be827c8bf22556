package arena

import "math"

//go:generate mockgen -source arena.go -destination mocks/arena.go

// BlockIndex identifies a single block within an arena by its position in the block grid.
type BlockIndex uint64

const (
	// NoBlock is the BlockIndex value that refers to no block at all. It terminates the free list
	// and plays the role of a null block throughout the allocator.
	NoBlock BlockIndex = math.MaxUint64
)

// Arena represents a fixed region of memory that can be carved into equal-sized blocks. The
// partition is created once, on demand, and remains in place until Clear is called.
//
// While partitioned, every block owns a link slot in its first machine word which free lists use to
// chain blocks together. Implementations store the link inside the block itself, so the slot is only
// meaningful while the block is free.
type Arena interface {
	// Partition divides the arena into blocks of at least size bytes and threads every block
	// into a free list in ascending order, returning the head of that list. It returns an error
	// wrapping fixedblock.ErrOutOfMemory if the arena is already partitioned, if size is not positive,
	// or if the arena is too small to hold a single block.
	Partition(size int) (BlockIndex, error)
	// BlockSize returns the size in bytes of every block in the current partition, or 0 if the
	// arena is not partitioned. It may be larger than the size passed to Partition.
	BlockSize() int
	// Capacity returns the number of blocks in the current partition, or 0 if the arena is not
	// partitioned.
	Capacity() int
	// Clear returns the arena to an unpartitioned state. The contents of the underlying memory
	// are left untouched.
	Clear()
	// Empty returns true if the arena is not partitioned
	Empty() bool
	// Size returns the size in bytes of the memory that the arena manages
	Size() int

	// Contains returns true if the provided BlockIndex refers to a block of the current partition
	Contains(block BlockIndex) bool
	// Offset returns the offset in bytes of the provided block from the start of the arena
	Offset(block BlockIndex) int
	// Block returns exactly BlockSize() bytes of memory belonging to the provided block
	Block(block BlockIndex) []byte
	// Next reads the link slot of the provided block
	Next(block BlockIndex) BlockIndex
	// SetNext writes next into the link slot of the provided block
	SetNext(block BlockIndex, next BlockIndex)
}
