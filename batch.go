package pwcheck

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the concurrency used by ScoreAll when workers < 1.
const DefaultWorkers = 4

// ScoreAll scores every password concurrently and returns the results in
// input order. The sets and cfg are shared read-only across workers.
func ScoreAll(ctx context.Context, passwords []string, blocklist, dictionary WordSet, cfg Config, workers int) ([]Detail, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}

	out := make([]Detail, len(passwords))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pw := range passwords {
		if gctx.Err() != nil {
			break
		}
		i, pw := i, pw // per-iteration copies; go directive is below 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = ScorePassword(pw, blocklist, dictionary, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a cancelled parent may stop the loop before any worker sees it
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
