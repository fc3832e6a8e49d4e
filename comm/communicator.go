// Package comm implements the abstract collective communicator the rest of
// the stack is built against. A production MPI binding does
// not exist anywhere in this module's dependency surface, so Communicator
// is satisfied by two pure-Go implementations: Local, a single-rank
// identity used by tests and single-process tools, and Group, an
// in-process goroutine simulation of N ranks. Both honor the same
// fail-stop collective contract: every rank must call a collective op the
// same number of times in the same order, or the round deadlocks.
package comm

import "context"

// Communicator is the collective operation set every iodriver.Driver and
// file.InputFile/OutputFile is built on top of.
type Communicator interface {
	// Rank returns this handle's 0-based rank within its group.
	Rank() int

	// NumRanks returns the group's total rank count.
	NumRanks() int

	// Gather collects local from every rank, returned ordered by rank.
	Gather(ctx context.Context, local []byte) ([][]byte, error)

	// GatherInt collects local from every rank, returned ordered by rank.
	GatherInt(ctx context.Context, local int64) ([]int64, error)

	// Sum returns the sum of local across all ranks.
	Sum(ctx context.Context, local uint64) (uint64, error)

	// Min returns the minimum of local across all ranks.
	Min(ctx context.Context, local uint64) (uint64, error)

	// Max returns the maximum of local across all ranks.
	Max(ctx context.Context, local uint64) (uint64, error)

	// ExscanOffset returns the exclusive prefix sum of local up to (not
	// including) this rank: the classic "where does my share start"
	// collective used to turn per-rank counts into a global offset.
	ExscanOffset(ctx context.Context, local uint64) (uint64, error)

	// Barrier blocks until every rank in the group has called Barrier.
	Barrier(ctx context.Context) error

	// NewDistributedVector allocates a byte vector of size bytes shared
	// across the whole group.
	NewDistributedVector(ctx context.Context, size uint64) (DistributedVector, error)
}

// DistributedVector is a byte vector whose storage is shared across every
// rank of a Communicator's group, used by iodriver.NewVectorDriver to back
// an in-memory "file" too large to fit behind a single rank's address
// space assumptions.
type DistributedVector interface {
	// Size returns the vector's current length in bytes.
	Size() uint64

	// Resize grows or shrinks the vector to newSize, zero-filling any new
	// bytes. It is collective: every rank must call it with the same
	// newSize.
	Resize(ctx context.Context, newSize uint64) error

	// GetN reads len(n) bytes starting at offset into n.
	GetN(ctx context.Context, offset uint64, n []byte) error

	// SetN writes n into the vector starting at offset.
	SetN(ctx context.Context, offset uint64, n []byte) error

	// Sync marks the point after which this rank's earlier SetN calls are
	// visible to the other ranks. Both implementations in this package
	// write straight to the shared storage, so Sync returns at once and
	// does not wait for other ranks; ordering across ranks needs a
	// Communicator.Barrier (iodriver.VectorDriver.Sync adds one).
	Sync(ctx context.Context) error
}
