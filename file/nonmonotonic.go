package file

import (
	"context"
	"sort"

	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
	"github.com/exseisdat/segyio/segy"
	"github.com/exseisdat/segyio/tracemd"
)

// sortPermutation returns the indices that would sort offsets ascending,
// and the inverse permutation mapping a sorted-order row back to its
// original request-order row.
func sortPermutation(offsets []int64) (sorted []int64, order, inverse []int) {
	n := len(offsets)
	order = make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool { return offsets[order[a]] < offsets[order[b]] })

	sorted = make([]int64, n)
	inverse = make([]int, n)

	for sortedIdx, origIdx := range order {
		sorted[sortedIdx] = offsets[origIdx]
		inverse[origIdx] = sortedIdx
	}

	return sorted, order, inverse
}

// readNonMonotonic reads arbitrary (unordered) trace offsets, sorting them
// before the transport call and permuting the decoded metadata/samples
// back into caller-request order.
func readNonMonotonic(
	ctx context.Context,
	d iodriver.Driver,
	rule *rules.Rule,
	ns int,
	format segy.SampleFormat,
	offsets []int64,
	data []float32,
	dst *tracemd.Metadata,
	skip int,
) error {
	n := len(offsets)
	if n == 0 {
		return readHeadersNonContiguous(ctx, d, rule, ns, nil, dst, skip)
	}

	sorted, _, inverse := sortPermutation(offsets)

	sortedData := make([]float32, n*ns)
	tmp := tracemd.New(rule.TypeMap(), n)

	if err := readHeadersNonContiguous(ctx, d, rule, ns, sorted, tmp, 0); err != nil {
		return err
	}

	if data != nil {
		if err := readSamplesNonContiguous(ctx, d, ns, format, sorted, sortedData); err != nil {
			return err
		}
	}

	for origIdx, sortedIdx := range inverse {
		if dst != nil {
			if err := dst.CopyEntries(skip+origIdx, tmp, sortedIdx); err != nil {
				return err
			}
		}

		if data != nil {
			copy(data[origIdx*ns:(origIdx+1)*ns], sortedData[sortedIdx*ns:(sortedIdx+1)*ns])
		}
	}

	return nil
}
