package manager

import (
	"io"

	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/arsenal/fixedblock"
	"github.com/vkngwrapper/arsenal/fixedblock/arena"
	"golang.org/x/exp/slog"
)

// Manager hands out and reclaims fixed-size blocks of an arena.Arena. The arena is partitioned
// lazily by the first call to Allocate, and the size requested by that call becomes the only size
// the Manager will serve until Clear is called.
//
// The Manager owns its arena exclusively: nothing else should partition, clear, or relink it.
// Manager is not safe for concurrent use.
type Manager struct {
	logger *slog.Logger
	arena  arena.Arena

	head          arena.BlockIndex
	requestedSize int
	outstanding   int
}

var _ fixedblock.Validatable = &Manager{}

// New creates a Manager that serves blocks from the provided arena. The arena should be
// unpartitioned. If logger is nil, log output is discarded.
func New(logger *slog.Logger, blockArena arena.Arena) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Manager{
		logger: logger,
		arena:  blockArena,
		head:   arena.NoBlock,
	}
}

// NewForBuffer creates a Manager over an arena.Controller wrapping the provided buffer. The buffer
// must outlive the Manager.
func NewForBuffer(logger *slog.Logger, buffer []byte) *Manager {
	return New(logger, arena.NewController(buffer))
}

// Allocate pops a block from the free list and returns it. The first call partitions the arena into
// blocks of at least size bytes; every later call must request the same size.
//
// All failures wrap fixedblock.ErrOutOfMemory: the arena being too small for one block of the
// requested size, every block being in use, or size differing from the size the Manager is
// fixed at.
func (m *Manager) Allocate(size int) (arena.BlockIndex, error) {
	if m.Empty() {
		if !m.arena.Empty() {
			m.logger.Debug("Manager::Allocate exhausted", slog.Int("Capacity", m.arena.Capacity()))
			return arena.NoBlock, cerrors.Wrapf(fixedblock.ErrOutOfMemory, "all %d blocks of the arena are in use", m.arena.Capacity())
		}

		head, err := m.arena.Partition(size)
		if err != nil {
			m.logger.Debug("Manager::Allocate failed to partition arena", slog.Int("Size", size), slog.Any("error", err))
			return arena.NoBlock, err
		}

		m.head = head
		m.requestedSize = size
		m.logger.Debug("Manager::Allocate partitioned arena",
			slog.Int("RequestedSize", size),
			slog.Int("BlockSize", m.arena.BlockSize()),
			slog.Int("Capacity", m.arena.Capacity()))

		fixedblock.DebugValidate(m)
	}

	if size != m.requestedSize {
		m.logger.Debug("Manager::Allocate size mismatch", slog.Int("Size", size), slog.Int("RequestedSize", m.requestedSize))
		return arena.NoBlock, cerrors.Wrapf(fixedblock.ErrOutOfMemory, "requested %d bytes from a manager serving %d-byte requests", size, m.requestedSize)
	}

	block := m.head
	m.head = m.arena.Next(block)
	m.outstanding++

	return block, nil
}

// Deallocate pushes the provided block onto the front of the free list, so that it is the next
// block returned by Allocate. Deallocating arena.NoBlock is a no-op.
//
// The block must have been returned by Allocate on this Manager since the last call to Clear, and must
// not already be free. Neither condition is checked.
func (m *Manager) Deallocate(block arena.BlockIndex) {
	if block == arena.NoBlock {
		return
	}

	if fixedblock.DebugEnabled {
		fixedblock.WriteFreePattern(m.arena.Block(block)[fixedblock.PointerWidth:])
	}

	m.arena.SetNext(block, m.head)
	m.head = block
	m.outstanding--
}

// Block returns the usable bytes of a block returned by Allocate. The slice is exactly BlockSize()
// bytes long and is only valid until the block is deallocated or the Manager is cleared.
func (m *Manager) Block(block arena.BlockIndex) []byte {
	return m.arena.Block(block)
}

// BlockSize returns the size in bytes of the blocks this Manager serves, or 0 if no
// block has been allocated since creation or the last Clear. It reports the size the arena
// actually partitioned, which is never smaller than fixedblock.PointerWidth.
func (m *Manager) BlockSize() int {
	return m.arena.BlockSize()
}

// RequestedSize returns the size passed to the Allocate call that partitioned the arena, or 0 if
// the arena is not partitioned. Allocate only succeeds for this size.
func (m *Manager) RequestedSize() int {
	return m.requestedSize
}

// Capacity returns the total number of blocks in the arena's partition
func (m *Manager) Capacity() int {
	return m.arena.Capacity()
}

// Outstanding returns the number of blocks currently handed out to callers
func (m *Manager) Outstanding() int {
	return m.outstanding
}

// Available returns the number of blocks that can be allocated before the Manager runs out of memory.
// Before the first allocation this is 0 even though the arena has not been partitioned yet.
func (m *Manager) Available() int {
	return m.arena.Capacity() - m.outstanding
}

// Empty returns true if the free list is exhausted. That happens both before the first allocation
// and when every block is in use.
func (m *Manager) Empty() bool {
	return m.head == arena.NoBlock
}

// Clear forgets the free list and returns the arena to an unpartitioned state. Every block previously
// returned by Allocate becomes invalid and must not be used or deallocated. The next call to
// Allocate may choose a new size.
func (m *Manager) Clear() {
	m.logger.Debug("Manager::Clear", slog.Int("Outstanding", m.outstanding))

	m.head = arena.NoBlock
	m.requestedSize = 0
	m.outstanding = 0
	m.arena.Clear()

	fixedblock.DebugValidate(m)
}

// Validate walks the free list and verifies that it is consistent with the arena: every free block
// lies within the partition, no block appears twice, and free plus outstanding blocks add up to the
// arena's capacity. Debug builds also verify that free blocks were not written to after being freed.
//
// Validate is O(n) in the number of free blocks and is intended for diagnostics.
func (m *Manager) Validate() error {
	if m.arena.Empty() {
		if m.head != arena.NoBlock {
			return errors.Errorf("free list starts at block %d, but the arena is not partitioned", m.head)
		}
		if m.outstanding != 0 {
			return errors.Errorf("%d blocks are outstanding, but the arena is not partitioned", m.outstanding)
		}
		return nil
	}

	capacity := m.arena.Capacity()
	visited := swiss.NewMap[arena.BlockIndex, struct{}](uint32(capacity))

	for block := m.head; block != arena.NoBlock; block = m.arena.Next(block) {
		if !m.arena.Contains(block) {
			return errors.Errorf("free list references block %d, but the arena only has %d blocks", block, capacity)
		}

		if visited.Has(block) {
			return errors.Errorf("block %d appears in the free list more than once", block)
		}
		visited.Put(block, struct{}{})

		if fixedblock.DebugEnabled && !fixedblock.CheckFreePattern(m.arena.Block(block)[fixedblock.PointerWidth:]) {
			return errors.Errorf("free block %d was written to after it was freed", block)
		}
	}

	if visited.Count()+m.outstanding != capacity {
		return errors.Errorf("free list holds %d blocks and %d blocks are outstanding, but the arena has %d blocks", visited.Count(), m.outstanding, capacity)
	}

	return nil
}

// AddStatistics sums this Manager's block usage into the statistics currently present in the
// provided fixedblock.Statistics object.
func (m *Manager) AddStatistics(stats *fixedblock.Statistics) {
	blockSize := m.arena.BlockSize()
	capacity := m.arena.Capacity()

	stats.ArenaBytes += m.arena.Size()
	stats.BlockCount += capacity
	stats.BlockBytes += capacity * blockSize
	stats.AllocationCount += m.outstanding
	stats.AllocationBytes += m.outstanding * blockSize
}

// BuildStatsString populates a json object with information about this Manager and the current
// contents of its free list, in the order blocks will be handed out.
func (m *Manager) BuildStatsString(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	m.BlockJsonData(objState)
}

// BlockJsonData writes this Manager's fields into an object that is already open
func (m *Manager) BlockJsonData(json jwriter.ObjectState) {
	json.Name("ArenaBytes").Int(m.arena.Size())
	json.Name("RequestedSize").Int(m.requestedSize)
	json.Name("BlockSize").Int(m.arena.BlockSize())
	json.Name("Capacity").Int(m.arena.Capacity())
	json.Name("Outstanding").Int(m.outstanding)

	freeBlocks := json.Name("FreeBlocks").Array()
	defer freeBlocks.End()

	// Bounded by capacity so that a corrupted, cyclic free list still terminates
	remaining := m.arena.Capacity()
	for block := m.head; block != arena.NoBlock && remaining > 0; block = m.arena.Next(block) {
		freeBlocks.Int(int(block))
		remaining--
	}
}
