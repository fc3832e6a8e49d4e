package comm

import (
	"context"
	"fmt"
	"sync"

	"github.com/exseisdat/segyio/errs"
)

// Group is an in-process simulation of a multi-rank collective group: N
// goroutines, each holding its own Communicator handle bound to this
// shared coordinator, rendezvousing through a generation-counted condition
// variable instead of real interprocess messages. It is the idiomatic-Go
// analogue of an MPI communicator: ranks are goroutines instead of
// processes, but every collective call still blocks until all N ranks
// have made the matching call, in the same order, exactly as a real
// MPI_Allreduce/MPI_Barrier would require.
type Group struct {
	n int

	mu           sync.Mutex
	cond         *sync.Cond
	generation   int
	arrived      int
	contribs     []any
	results      []any
	err          error
	vector       *sharedVector
}

// NewGroup constructs a coordinator for n ranks. n must be >= 1.
func NewGroup(n int) *Group {
	if n < 1 {
		n = 1
	}

	g := &Group{n: n, contribs: make([]any, n)}
	g.cond = sync.NewCond(&g.mu)

	return g
}

// Rank returns the Communicator handle for rank i, 0 <= i < NumRanks.
func (g *Group) Rank(i int) Communicator {
	return &groupComm{group: g, rank: i}
}

// NumRanks returns the group's size.
func (g *Group) NumRanks() int { return g.n }

// rendezvous is the shared barrier primitive every collective op is built
// on: rank submits local, blocks until all g.n ranks have submitted for
// the current generation, and on the final arrival runs combine over the
// full ordered contribution set to produce one result per rank.
func (g *Group) rendezvous(rank int, local any, combine func([]any) ([]any, error)) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gen := g.generation
	g.contribs[rank] = local
	g.arrived++

	if g.arrived == g.n {
		results, err := combine(g.contribs)
		g.results = results
		g.err = err
		g.arrived = 0
		g.generation++
		g.contribs = make([]any, g.n)
		g.cond.Broadcast()
	} else {
		for g.generation == gen {
			g.cond.Wait()
		}
	}

	if g.err != nil {
		return nil, g.err
	}

	if g.results == nil {
		return nil, nil
	}

	return g.results[rank], nil
}

// broadcastAll returns an n-slot per-rank result slice holding v in every
// slot, or an all-nil slice when err is non-nil.
func broadcastAll(n int, v any, err error) []any {
	out := make([]any, n)
	if err != nil {
		return out
	}
	for i := range out {
		out[i] = v
	}

	return out
}

// groupComm is one rank's Communicator handle into a shared Group.
type groupComm struct {
	group *Group
	rank  int
}

var _ Communicator = (*groupComm)(nil)

func (c *groupComm) Rank() int     { return c.rank }
func (c *groupComm) NumRanks() int { return c.group.n }

func (c *groupComm) Gather(_ context.Context, local []byte) ([][]byte, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		out := make([][]byte, len(contribs))
		for i, v := range contribs {
			b, _ := v.([]byte)
			out[i] = b
		}

		return broadcastAll(len(contribs), out, nil), nil
	})
	if err != nil {
		return nil, err
	}

	return res.([][]byte), nil
}

func (c *groupComm) GatherInt(_ context.Context, local int64) ([]int64, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		out := make([]int64, len(contribs))
		for i, v := range contribs {
			out[i], _ = v.(int64)
		}

		return broadcastAll(len(contribs), out, nil), nil
	})
	if err != nil {
		return nil, err
	}

	return res.([]int64), nil
}

func (c *groupComm) Sum(_ context.Context, local uint64) (uint64, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		var total uint64
		for _, v := range contribs {
			total += v.(uint64)
		}

		return broadcastAll(len(contribs), total, nil), nil
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *groupComm) Min(_ context.Context, local uint64) (uint64, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		min := contribs[0].(uint64)
		for _, v := range contribs[1:] {
			if u := v.(uint64); u < min {
				min = u
			}
		}

		return broadcastAll(len(contribs), min, nil), nil
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *groupComm) Max(_ context.Context, local uint64) (uint64, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		max := contribs[0].(uint64)
		for _, v := range contribs[1:] {
			if u := v.(uint64); u > max {
				max = u
			}
		}

		return broadcastAll(len(contribs), max, nil), nil
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *groupComm) ExscanOffset(_ context.Context, local uint64) (uint64, error) {
	res, err := c.group.rendezvous(c.rank, local, func(contribs []any) ([]any, error) {
		out := make([]any, len(contribs))
		var running uint64
		for i, v := range contribs {
			out[i] = running
			running += v.(uint64)
		}

		return out, nil
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *groupComm) Barrier(_ context.Context) error {
	_, err := c.group.rendezvous(c.rank, struct{}{}, func(contribs []any) ([]any, error) {
		return broadcastAll(len(contribs), struct{}{}, nil), nil
	})

	return err
}

func (c *groupComm) NewDistributedVector(_ context.Context, size uint64) (DistributedVector, error) {
	res, err := c.group.rendezvous(c.rank, size, func(contribs []any) ([]any, error) {
		max := contribs[0].(uint64)
		for _, v := range contribs[1:] {
			if u := v.(uint64); u > max {
				max = u
			}
		}

		c.group.vector = &sharedVector{data: make([]byte, max)}

		return broadcastAll(len(contribs), c.group.vector, nil), nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*sharedVector), nil
}

// sharedVector is the Group-backed DistributedVector: one byte slice
// guarded by a RWMutex, shared by every rank's handle.
type sharedVector struct {
	mu   sync.RWMutex
	data []byte
}

var _ DistributedVector = (*sharedVector)(nil)

func (v *sharedVector) Size() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return uint64(len(v.data))
}

func (v *sharedVector) Resize(_ context.Context, newSize uint64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if newSize <= uint64(len(v.data)) {
		v.data = v.data[:newSize]

		return nil
	}

	grown := make([]byte, newSize)
	copy(grown, v.data)
	v.data = grown

	return nil
}

func (v *sharedVector) GetN(_ context.Context, offset uint64, n []byte) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if offset+uint64(len(n)) > uint64(len(v.data)) {
		return fmt.Errorf("%w: read [%d,%d) beyond vector size %d", errs.ErrOutOfRange, offset, offset+uint64(len(n)), len(v.data))
	}

	copy(n, v.data[offset:offset+uint64(len(n))])

	return nil
}

func (v *sharedVector) SetN(_ context.Context, offset uint64, n []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if offset+uint64(len(n)) > uint64(len(v.data)) {
		return fmt.Errorf("%w: write [%d,%d) beyond vector size %d", errs.ErrOutOfRange, offset, offset+uint64(len(n)), len(v.data))
	}

	copy(v.data[offset:offset+uint64(len(n))], n)

	return nil
}

func (v *sharedVector) Sync(_ context.Context) error { return nil }
