package fixedblock

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// PointerWidth is the size in bytes of a machine word. Every block is at least this large so that
// a free block can always hold the link to the next free block.
const PointerWidth = int(unsafe.Sizeof(uintptr(0)))

type Number interface {
	~int | ~uint | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}
