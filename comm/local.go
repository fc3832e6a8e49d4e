package comm

import "context"

// Local is the trivial single-rank Communicator: every collective op is a
// local identity operation. It is used by cmd/segyinfo and by tests that
// do not need multi-rank behavior.
type Local struct{}

var _ Communicator = Local{}

// NewLocal returns a single-rank Communicator.
func NewLocal() Local { return Local{} }

func (Local) Rank() int     { return 0 }
func (Local) NumRanks() int { return 1 }

func (Local) Gather(_ context.Context, local []byte) ([][]byte, error) {
	return [][]byte{local}, nil
}

func (Local) GatherInt(_ context.Context, local int64) ([]int64, error) {
	return []int64{local}, nil
}

func (Local) Sum(_ context.Context, local uint64) (uint64, error) { return local, nil }
func (Local) Min(_ context.Context, local uint64) (uint64, error) { return local, nil }
func (Local) Max(_ context.Context, local uint64) (uint64, error) { return local, nil }

func (Local) ExscanOffset(_ context.Context, _ uint64) (uint64, error) { return 0, nil }

func (Local) Barrier(_ context.Context) error { return nil }

func (Local) NewDistributedVector(_ context.Context, size uint64) (DistributedVector, error) {
	return &localVector{data: make([]byte, size)}, nil
}

// localVector is the single-rank DistributedVector: an ordinary byte
// slice, since there is no second rank to synchronize with.
type localVector struct {
	data []byte
}

var _ DistributedVector = (*localVector)(nil)

func (v *localVector) Size() uint64 { return uint64(len(v.data)) }

func (v *localVector) Resize(_ context.Context, newSize uint64) error {
	if newSize <= uint64(len(v.data)) {
		v.data = v.data[:newSize]

		return nil
	}

	grown := make([]byte, newSize)
	copy(grown, v.data)
	v.data = grown

	return nil
}

func (v *localVector) GetN(_ context.Context, offset uint64, n []byte) error {
	copy(n, v.data[offset:offset+uint64(len(n))])

	return nil
}

func (v *localVector) SetN(_ context.Context, offset uint64, n []byte) error {
	copy(v.data[offset:offset+uint64(len(n))], n)

	return nil
}

func (v *localVector) Sync(_ context.Context) error { return nil }
