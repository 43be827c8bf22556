package arena

import (
	"encoding/binary"
	"math"

	"github.com/vkngwrapper/arsenal/fixedblock"
)

// Links occupy the first fixedblock.PointerWidth bytes of a free block. On 32-bit platforms the
// all-ones 32-bit value stands in for NoBlock.

func writeLink(slot []byte, next BlockIndex) {
	if fixedblock.PointerWidth == 8 {
		binary.LittleEndian.PutUint64(slot, uint64(next))
		return
	}

	binary.LittleEndian.PutUint32(slot, uint32(next))
}

func readLink(slot []byte) BlockIndex {
	if fixedblock.PointerWidth == 8 {
		return BlockIndex(binary.LittleEndian.Uint64(slot))
	}

	next := binary.LittleEndian.Uint32(slot)
	if next == math.MaxUint32 {
		return NoBlock
	}
	return BlockIndex(next)
}
