// Package fixedblock holds the vocabulary shared by the fixed-block allocator packages: the error
// taxonomy, statistics, and the validation hooks that are switched on by the debug_fixed_block
// build tag.
//
// The allocator itself lives in two packages. arena.Controller owns a caller-supplied byte buffer
// and carves it into equal-sized blocks, threading a free list through the blocks themselves.
// manager.Manager serves Allocate and Deallocate against that free list, partitioning the arena
// lazily on the first request. typed.Pool builds typed handles on top of a manager.
//
// None of these types are safe for concurrent use. Hosts that need to share a manager between
// goroutines must serialize access themselves.
package fixedblock
