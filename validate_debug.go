//go:build debug_fixed_block

package fixedblock

const (
	// DebugEnabled reports whether the package was built with the debug_fixed_block build tag
	DebugEnabled = true
	// freePatternMagicValue is a 4-byte pattern that is copied over the body of free blocks
	freePatternMagicValue uint32 = 0x7F84E666
)

func freePatternByte(index int) byte {
	return byte(freePatternMagicValue >> (8 * (index % 4)))
}

// WriteFreePattern writes an easy-to-identify marker across the provided bytes of a free block.
// This method no-ops unless the debug_fixed_block build tag is present.
func WriteFreePattern(body []byte) {
	for i := range body {
		body[i] = freePatternByte(i)
	}
}

// CheckFreePattern verifies that the marker written by WriteFreePattern is still present.
// It returns true if the marker is intact and false otherwise.
// This method always returns true unless the debug_fixed_block build tag is present.
func CheckFreePattern(body []byte) bool {
	for i, b := range body {
		if b != freePatternByte(i) {
			return false
		}
	}

	return true
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_fixed_block build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
