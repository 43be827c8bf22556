package manager_test

import (
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/fixedblock"
	"github.com/vkngwrapper/arsenal/fixedblock/arena"
	"github.com/vkngwrapper/arsenal/fixedblock/manager"
)

func TestManagerInitialState(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 4004))

	require.True(t, m.Empty())
	require.Equal(t, 0, m.BlockSize())
	require.Equal(t, 0, m.RequestedSize())
	require.Equal(t, 0, m.Capacity())
	require.Equal(t, 0, m.Outstanding())
	require.Equal(t, 0, m.Available())
	require.NoError(t, m.Validate())
}

func TestManagerExhaustion(t *testing.T) {
	buffer := make([]byte, 4004)
	m := manager.NewForBuffer(nil, buffer)

	seen := make(map[arena.BlockIndex]struct{})
	for i := 0; i < 500; i++ {
		block, err := m.Allocate(8)
		require.NoError(t, err)
		require.NotEqual(t, arena.NoBlock, block)

		_, duplicate := seen[block]
		require.False(t, duplicate, "block %d was issued twice", block)
		seen[block] = struct{}{}
	}

	require.Equal(t, 8, m.BlockSize())
	require.Equal(t, 500, m.Capacity())
	require.Equal(t, 500, m.Outstanding())
	require.Equal(t, 0, m.Available())
	require.True(t, m.Empty())
	require.NoError(t, m.Validate())

	block, err := m.Allocate(8)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
	require.Equal(t, arena.NoBlock, block)

	// Freeing one and reallocating returns the freed block
	m.Deallocate(137)
	require.False(t, m.Empty())

	block, err = m.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, arena.BlockIndex(137), block)
}

func TestManagerBlocksAreDistinctAndSpaced(t *testing.T) {
	controller := arena.NewController(make([]byte, 1000))
	m := manager.New(nil, controller)

	var offsets []int
	for {
		block, err := m.Allocate(24)
		if err != nil {
			require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
			break
		}
		offsets = append(offsets, controller.Offset(block))
	}

	require.Len(t, offsets, 1000/24)
	for i, offset := range offsets {
		require.Equal(t, i*24, offset)
		require.LessOrEqual(t, offset+m.BlockSize(), controller.Size())
	}
}

func TestManagerBlockBytes(t *testing.T) {
	buffer := make([]byte, 64)
	m := manager.NewForBuffer(nil, buffer)

	first, err := m.Allocate(16)
	require.NoError(t, err)
	second, err := m.Allocate(16)
	require.NoError(t, err)

	copy(m.Block(first), "0123456789abcdef")
	copy(m.Block(second), "ghijklmnopqrstuv")
	require.Equal(t, "0123456789abcdefghijklmnopqrstuv", string(buffer[:32]))
	require.Len(t, m.Block(first), 16)
}

func TestManagerLIFOReuse(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 128))

	a, err := m.Allocate(16)
	require.NoError(t, err)
	b, err := m.Allocate(16)
	require.NoError(t, err)
	c, err := m.Allocate(16)
	require.NoError(t, err)

	m.Deallocate(a)
	m.Deallocate(c)
	m.Deallocate(b)
	require.NoError(t, m.Validate())

	block, err := m.Allocate(16)
	require.NoError(t, err)
	require.Equal(t, b, block)

	block, err = m.Allocate(16)
	require.NoError(t, err)
	require.Equal(t, c, block)

	block, err = m.Allocate(16)
	require.NoError(t, err)
	require.Equal(t, a, block)

	// Then the untouched remainder of the partition, in order
	block, err = m.Allocate(16)
	require.NoError(t, err)
	require.Equal(t, arena.BlockIndex(3), block)
}

func TestManagerSizeMismatch(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 4004))

	_, err := m.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, 4, m.RequestedSize())
	require.Equal(t, 8, m.BlockSize())

	block, err := m.Allocate(8)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
	require.Equal(t, arena.NoBlock, block)

	block, err = m.Allocate(2)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
	require.Equal(t, arena.NoBlock, block)

	require.Equal(t, 1, m.Outstanding())

	_, err = m.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, 2, m.Outstanding())
}

func TestManagerArenaTooSmall(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 16))

	block, err := m.Allocate(32)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
	require.Equal(t, arena.NoBlock, block)
	require.True(t, m.Empty())
	require.Equal(t, 0, m.BlockSize())
	require.Equal(t, 0, m.RequestedSize())

	// The failed attempt did not fix a size
	_, err = m.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, 8, m.RequestedSize())
}

func TestManagerZeroSize(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 64))

	block, err := m.Allocate(0)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
	require.Equal(t, arena.NoBlock, block)
	require.True(t, m.Empty())
}

func TestManagerDeallocateNoBlock(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 32))

	m.Deallocate(arena.NoBlock)
	require.True(t, m.Empty())
	require.Equal(t, 0, m.Outstanding())

	first, err := m.Allocate(8)
	require.NoError(t, err)

	m.Deallocate(arena.NoBlock)
	require.Equal(t, 1, m.Outstanding())

	second, err := m.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, arena.BlockIndex(0), first)
	require.Equal(t, arena.BlockIndex(1), second)
	require.NoError(t, m.Validate())
}

func TestManagerClear(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 4004))

	for i := 0; i < 10; i++ {
		_, err := m.Allocate(8)
		require.NoError(t, err)
	}

	m.Clear()
	require.True(t, m.Empty())
	require.Equal(t, 0, m.BlockSize())
	require.Equal(t, 0, m.RequestedSize())
	require.Equal(t, 0, m.Capacity())
	require.Equal(t, 0, m.Outstanding())
	require.NoError(t, m.Validate())

	// A new size may be chosen after clearing
	block, err := m.Allocate(100)
	require.NoError(t, err)
	require.Equal(t, arena.BlockIndex(0), block)
	require.Equal(t, 100, m.BlockSize())
	require.Equal(t, 40, m.Capacity())

	_, err = m.Allocate(8)
	require.ErrorIs(t, err, fixedblock.ErrOutOfMemory)
}

func TestManagerValidateDetectsCorruption(t *testing.T) {
	controller := arena.NewController(make([]byte, 64))
	m := manager.New(nil, controller)

	_, err := m.Allocate(8)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	// Double free leaves block 0 linked to itself
	m.Deallocate(0)
	m.Deallocate(0)
	require.ErrorContains(t, m.Validate(), "more than once")

	m.Clear()
	_, err = m.Allocate(8)
	require.NoError(t, err)

	controller.SetNext(1, 42)
	require.ErrorContains(t, m.Validate(), "only has 8 blocks")

	controller.SetNext(1, arena.NoBlock)
	require.ErrorContains(t, m.Validate(), "free list holds 1 blocks and 1 blocks are outstanding, but the arena has 8 blocks")
}

func TestManagerStatistics(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 4004))

	var stats fixedblock.Statistics
	m.AddStatistics(&stats)
	require.Equal(t, fixedblock.Statistics{ArenaBytes: 4004}, stats)

	for i := 0; i < 3; i++ {
		_, err := m.Allocate(8)
		require.NoError(t, err)
	}

	stats.Clear()
	m.AddStatistics(&stats)
	require.Equal(t, fixedblock.Statistics{
		ArenaBytes:      4004,
		BlockCount:      500,
		BlockBytes:      4000,
		AllocationCount: 3,
		AllocationBytes: 24,
	}, stats)
	require.Equal(t, 497, stats.FreeBlockCount())
	require.Equal(t, 497, m.Available())
}

func TestManagerBuildStatsString(t *testing.T) {
	m := manager.NewForBuffer(nil, make([]byte, 40))

	a, err := m.Allocate(10)
	require.NoError(t, err)
	_, err = m.Allocate(10)
	require.NoError(t, err)
	m.Deallocate(a)

	writer := jwriter.NewWriter()
	m.BuildStatsString(&writer)
	require.NoError(t, writer.Error())
	require.JSONEq(t, `{
		"ArenaBytes": 40,
		"RequestedSize": 10,
		"BlockSize": 10,
		"Capacity": 4,
		"Outstanding": 1,
		"FreeBlocks": [0, 2, 3]
	}`, string(writer.Bytes()))
}
