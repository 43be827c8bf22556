package fixedblock

// Statistics summarizes how the blocks of one or more arenas are being used
type Statistics struct {
	// ArenaBytes is the total size of the backing buffers, including any tail too small for a block
	ArenaBytes int
	// BlockCount is the number of blocks the arenas are partitioned into
	BlockCount int
	// AllocationCount is the number of blocks currently handed out to callers
	AllocationCount int
	// BlockBytes is the number of bytes covered by blocks
	BlockBytes int
	// AllocationBytes is the number of bytes covered by blocks handed out to callers
	AllocationBytes int
}

func (s *Statistics) Clear() {
	s.ArenaBytes = 0
	s.BlockCount = 0
	s.AllocationCount = 0
	s.BlockBytes = 0
	s.AllocationBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ArenaBytes += other.ArenaBytes
	s.BlockCount += other.BlockCount
	s.AllocationCount += other.AllocationCount
	s.BlockBytes += other.BlockBytes
	s.AllocationBytes += other.AllocationBytes
}

// FreeBlockCount is the number of blocks that are available for allocation
func (s *Statistics) FreeBlockCount() int {
	return s.BlockCount - s.AllocationCount
}
