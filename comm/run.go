package comm

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// RunGroup spawns n goroutines, one per rank, each running fn against its
// own Communicator handle into a freshly constructed Group, and waits for
// all of them to finish. It uses errgroup.Group for the fan-out and passes
// fn the derived context that errgroup cancels on the first error. Group's
// collectives do not observe that context, so a rank blocked in a
// collective whose peer has already returned keeps waiting. RunGroup
// does not rely on errgroup's first-error-wins return value: every rank's
// error is captured into its own slot and aggregated with
// multierr.Append, since a collective is fail-stop but the caller needs
// to see every rank's failure, not just whichever happened to return
// first.
func RunGroup(ctx context.Context, n int, fn func(ctx context.Context, c Communicator) error) error {
	group := NewGroup(n)

	g, gctx := errgroup.WithContext(ctx)
	errs := make([]error, n)

	for i := range n {
		g.Go(func() error {
			errs[i] = fn(gctx, group.Rank(i))

			return errs[i]
		})
	}

	_ = g.Wait()

	var combined error
	for _, e := range errs {
		combined = multierr.Append(combined, e)
	}

	return combined
}
