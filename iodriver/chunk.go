package iodriver

import (
	"context"

	"github.com/exseisdat/segyio/comm"
)

// planRounds returns how many chunkMax-sized (or smaller, for the last
// one) calls are needed to move localBytes bytes. Zero bytes needs zero
// calls; this rank may still be driven through extra zero-length rounds
// if another rank needs more.
func planRounds(localBytes, chunkMax uint64) uint64 {
	if localBytes == 0 {
		return 0
	}

	rounds := localBytes / chunkMax
	if localBytes%chunkMax != 0 {
		rounds++
	}

	return rounds
}

// chunkAt returns the (offset, length) of round i of a localBytes-byte
// transfer starting at base, chunked at chunkMax. Callers must only call
// this for i < planRounds(localBytes, chunkMax).
func chunkAt(base, localBytes, chunkMax uint64, i uint64) (offset, length uint64) {
	offset = base + i*chunkMax
	remaining := localBytes - i*chunkMax
	if remaining > chunkMax {
		return offset, chunkMax
	}

	return offset, remaining
}

// negotiateBlocks agrees the number of per-block rounds a strided/offsets
// transfer will run via a collective Max, so ranks contributing fewer (or
// zero) blocks still participate in every round the busiest rank needs.
func negotiateBlocks(ctx context.Context, c comm.Communicator, localBlocks int) (int, error) {
	global, err := c.Max(ctx, uint64(localBlocks))
	if err != nil {
		return 0, err
	}

	return int(global), nil
}

// runChunkedRounds drives transfer over totalBytes bytes starting at base,
// split into chunkMax-sized rounds, agreeing the round count with every
// other rank in c via a collective Max so no rank returns from the
// collective before the others. Ranks with fewer local bytes
// than the global round count issue extra zero-length calls to transfer
// rather than skip the round outright.
func runChunkedRounds(
	ctx context.Context,
	c comm.Communicator,
	base, totalBytes, chunkMax uint64,
	transfer func(ctx context.Context, offset, length uint64) error,
) error {
	localCalls := planRounds(totalBytes, chunkMax)

	globalCalls, err := c.Max(ctx, localCalls)
	if err != nil {
		return err
	}

	for i := range globalCalls {
		if i < localCalls {
			offset, length := chunkAt(base, totalBytes, chunkMax, i)
			if err := transfer(ctx, offset, length); err != nil {
				return err
			}

			continue
		}

		if err := transfer(ctx, base, 0); err != nil {
			return err
		}
	}

	return nil
}
