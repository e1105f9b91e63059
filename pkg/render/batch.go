package render

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Job renders one figure when invoked.
type Job struct {
	Name string
	Run  func() error
}

// Batch renders independent figures concurrently, bounded by limit workers
// (or one per job when limit is zero or negative). The first failure
// cancels the remaining jobs and is returned.
func Batch(ctx context.Context, limit int, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slog.Debug("rendering figure", "name", job.Name)
			return job.Run()
		})
	}

	return g.Wait()
}
