package fixedblock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/fixedblock"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, fixedblock.CheckPow2(1, "alignment"))
	require.NoError(t, fixedblock.CheckPow2(8, "alignment"))
	require.NoError(t, fixedblock.CheckPow2(uint(4096), "alignment"))

	err := fixedblock.CheckPow2(12, "alignment")
	require.Error(t, err)
	require.True(t, errors.Is(err, fixedblock.PowerOfTwoError))
	require.Contains(t, err.Error(), "alignment is 12")

	require.ErrorIs(t, fixedblock.CheckPow2(0, "alignment"), fixedblock.PowerOfTwoError)
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, fixedblock.AlignUp(0, 8))
	require.Equal(t, 8, fixedblock.AlignUp(1, 8))
	require.Equal(t, 8, fixedblock.AlignUp(8, 8))
	require.Equal(t, 16, fixedblock.AlignUp(9, 8))
	require.Equal(t, 6, fixedblock.AlignUp(5, 2))
	require.Equal(t, 5, fixedblock.AlignUp(5, 1))
}

func TestPointerWidth(t *testing.T) {
	require.Contains(t, []int{4, 8}, fixedblock.PointerWidth)
}

func TestStatistics(t *testing.T) {
	stats := fixedblock.Statistics{
		ArenaBytes:      4004,
		BlockCount:      500,
		BlockBytes:      4000,
		AllocationCount: 3,
		AllocationBytes: 24,
	}
	require.Equal(t, 497, stats.FreeBlockCount())

	stats.AddStatistics(&fixedblock.Statistics{
		ArenaBytes:      100,
		BlockCount:      10,
		BlockBytes:      80,
		AllocationCount: 10,
		AllocationBytes: 80,
	})
	require.Equal(t, fixedblock.Statistics{
		ArenaBytes:      4104,
		BlockCount:      510,
		BlockBytes:      4080,
		AllocationCount: 13,
		AllocationBytes: 104,
	}, stats)

	stats.Clear()
	require.Equal(t, fixedblock.Statistics{}, stats)
}
