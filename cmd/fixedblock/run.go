package main

import (
	"fmt"
	"io"

	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/arsenal/fixedblock"
	"github.com/vkngwrapper/arsenal/fixedblock/arena"
	"github.com/vkngwrapper/arsenal/fixedblock/manager"
	"github.com/vkngwrapper/arsenal/fixedblock/typed"
	"golang.org/x/exp/slog"
)

// tester is the value type backed by the arena. It carries a single int32 of contents.
type tester struct {
	contents int32
}

type runOptions struct {
	arenaBytes int
	count      int
	useMmap    bool
}

var runOpts runOptions

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runOpts.arenaBytes, "arena-bytes", 4004, "Size in bytes of the arena buffer")
	cmd.Flags().IntVar(&runOpts.count, "count", -1, "Number of objects to allocate (default: one more than the arena holds)")
	cmd.Flags().BoolVar(&runOpts.useMmap, "mmap", false, "Back the arena with anonymous mapped memory instead of the Go heap")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill an arena with tester objects and report the result",
		Long: `The run command backs a small value type with a fixed-block manager,
allocates objects until the requested count or the arena runs out of memory,
then frees one object and checks that the next allocation reuses its block.

Example:
  fixedblock run
  fixedblock run --arena-bytes 1024 --count 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr()), runOpts, jsonOut)
		},
	}
	return cmd
}

type runResult struct {
	allocated   int
	failure     error
	reused      bool
	reusedBlock arena.BlockIndex
}

func runScenario(out io.Writer, logger *slog.Logger, opts runOptions, asJSON bool) error {
	buffer, release, err := acquireBuffer(opts)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := release(); releaseErr != nil {
			logger.Error("failed to release arena buffer", slog.Any("error", releaseErr))
		}
	}()

	m := manager.NewForBuffer(logger, buffer)
	pool, err := typed.NewPool[tester](m)
	if err != nil {
		return err
	}

	result, err := fill(pool, opts.count)
	if err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		return cerrors.Wrap(err, "allocator state is inconsistent")
	}

	if asJSON {
		return writeJSON(out, m, result)
	}
	return writeText(out, m, result)
}

func acquireBuffer(opts runOptions) ([]byte, func() error, error) {
	if opts.arenaBytes <= 0 {
		return nil, nil, cerrors.Newf("--arena-bytes must be positive, got %d", opts.arenaBytes)
	}

	if !opts.useMmap {
		return make([]byte, opts.arenaBytes), func() error { return nil }, nil
	}

	buffer, err := arena.MapAnonymous(opts.arenaBytes)
	if err != nil {
		return nil, nil, err
	}
	return buffer, func() error { return arena.Unmap(buffer) }, nil
}

func fill(pool *typed.Pool[tester], count int) (runResult, error) {
	var result runResult
	var handles []typed.Handle[tester]

	for count < 0 || len(handles) < count {
		handle, err := pool.New(tester{contents: int32(len(handles))})
		if cerrors.Is(err, fixedblock.ErrOutOfMemory) {
			result.failure = err
			break
		} else if err != nil {
			return result, err
		}
		handles = append(handles, handle)
	}
	result.allocated = len(handles)

	if len(handles) == 0 {
		return result, nil
	}

	freed := handles[len(handles)/2]
	pool.Free(freed)

	reused, err := pool.New(tester{contents: -1})
	if err != nil {
		return result, cerrors.Wrap(err, "failed to reallocate a freed block")
	}
	result.reused = reused.Index() == freed.Index()
	result.reusedBlock = reused.Index()

	return result, nil
}

func writeText(out io.Writer, m *manager.Manager, result runResult) error {
	var stats fixedblock.Statistics
	m.AddStatistics(&stats)

	fmt.Fprintf(out, "Arena:       %d bytes\n", stats.ArenaBytes)
	fmt.Fprintf(out, "Block size:  %d bytes (requested %d)\n", m.BlockSize(), m.RequestedSize())
	fmt.Fprintf(out, "Capacity:    %d blocks\n", m.Capacity())
	fmt.Fprintf(out, "Allocated:   %d objects\n", result.allocated)
	if result.failure != nil {
		fmt.Fprintf(out, "Failure:     %v\n", result.failure)
	}
	if result.allocated > 0 {
		fmt.Fprintf(out, "LIFO reuse:  %t (block %d)\n", result.reused, result.reusedBlock)
	}
	fmt.Fprintf(out, "Outstanding: %d blocks (%d bytes)\n", stats.AllocationCount, stats.AllocationBytes)
	return nil
}

func writeJSON(out io.Writer, m *manager.Manager, result runResult) error {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("Allocated").Int(result.allocated)
	if result.failure != nil {
		obj.Name("Failure").String(result.failure.Error())
	}
	obj.Name("LIFOReuse").Bool(result.reused)

	managerObj := obj.Name("Manager").Object()
	m.BlockJsonData(managerObj)
	managerObj.End()
	obj.End()

	if err := writer.Error(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, string(writer.Bytes()))
	return err
}
