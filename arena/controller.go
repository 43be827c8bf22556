package arena

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/fixedblock"
)

// Controller is an Arena implementation that manages a single byte buffer supplied by the consumer.
// The buffer is referenced, never copied, resized, or freed, and must outlive the Controller.
//
// Controller is not safe for concurrent use.
type Controller struct {
	buffer    []byte
	blockSize int
}

var _ Arena = &Controller{}

// NewController creates a new, unpartitioned Controller over the provided buffer
func NewController(buffer []byte) *Controller {
	return &Controller{buffer: buffer}
}

// Size returns the size in bytes of the buffer the controller was created with
func (c *Controller) Size() int { return len(c.buffer) }

// BlockSize returns the size in bytes of every block in the current partition, or 0 if the
// arena is not partitioned.
func (c *Controller) BlockSize() int { return c.blockSize }

// Empty returns true if the arena is not partitioned
func (c *Controller) Empty() bool { return c.blockSize == 0 }

// Capacity returns the number of blocks in the current partition, or 0 if the arena is not
// partitioned. Bytes at the tail of the buffer that cannot hold a full block are not counted.
func (c *Controller) Capacity() int {
	if c.blockSize == 0 {
		return 0
	}

	return len(c.buffer) / c.blockSize
}

// Clear returns the arena to an unpartitioned state without touching the buffer
func (c *Controller) Clear() {
	c.blockSize = 0
}

// Partition divides the buffer into blocks of max(size, fixedblock.PointerWidth) bytes, writes the
// link of every block so that block i points at block i+1, and returns block 0 as the head of the
// resulting free list. The block size chosen is observable through BlockSize as soon as Partition
// returns successfully.
func (c *Controller) Partition(size int) (BlockIndex, error) {
	if !c.Empty() {
		return NoBlock, cerrors.Wrapf(fixedblock.ErrOutOfMemory, "arena is already partitioned into %d-byte blocks", c.blockSize)
	}

	if size <= 0 {
		return NoBlock, cerrors.Wrapf(fixedblock.ErrOutOfMemory, "block size must be positive, but %d was requested", size)
	}

	blockSize := size
	if blockSize < fixedblock.PointerWidth {
		blockSize = fixedblock.PointerWidth
	}

	count := len(c.buffer) / blockSize
	if count == 0 {
		return NoBlock, cerrors.Wrapf(fixedblock.ErrOutOfMemory, "arena of %d bytes cannot hold a single %d-byte block", len(c.buffer), blockSize)
	}

	c.blockSize = blockSize

	for index := 0; index < count; index++ {
		block := BlockIndex(index)
		next := block + 1
		if index == count-1 {
			next = NoBlock
		}

		c.SetNext(block, next)
		if fixedblock.DebugEnabled {
			fixedblock.WriteFreePattern(c.Block(block)[fixedblock.PointerWidth:])
		}
	}

	return 0, nil
}

// Contains returns true if the provided BlockIndex refers to a block of the current partition
func (c *Controller) Contains(block BlockIndex) bool {
	return block < BlockIndex(c.Capacity())
}

// Offset returns the offset in bytes of the provided block from the start of the buffer
func (c *Controller) Offset(block BlockIndex) int {
	return int(block) * c.blockSize
}

// Block returns exactly BlockSize() bytes of the buffer belonging to the provided block. The
// returned slice's capacity is clipped so appending to it cannot spill into the next block.
func (c *Controller) Block(block BlockIndex) []byte {
	if !c.Contains(block) {
		panic(fmt.Sprintf("block %d is outside of an arena with %d blocks", block, c.Capacity()))
	}

	offset := c.Offset(block)
	end := offset + c.blockSize
	return c.buffer[offset:end:end]
}

// Next reads the free list link stored in the provided block
func (c *Controller) Next(block BlockIndex) BlockIndex {
	offset := c.Offset(block)
	return readLink(c.buffer[offset : offset+fixedblock.PointerWidth])
}

// SetNext stores next as the free list link of the provided block
func (c *Controller) SetNext(block BlockIndex, next BlockIndex) {
	offset := c.Offset(block)
	writeLink(c.buffer[offset:offset+fixedblock.PointerWidth], next)
}
