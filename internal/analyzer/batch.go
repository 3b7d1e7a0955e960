package analyzer

import (
	"context"
	"time"

	"github.com/nao1215/pwstrength/internal/model"
	"golang.org/x/sync/errgroup"
)

// AnalyzeAll analyzes every password concurrently, at most the configured
// concurrency at a time. Results are returned in input order.
//
// If ctx is cancelled, AnalyzeAll stops starting new analyses and returns
// ctx.Err() with no results, since cancelled breach lookups would report
// breached passwords as clean.
func (a *Analyzer) AnalyzeAll(ctx context.Context, passwords []string) ([]model.Result, error) {
	a.logger.Debug("starting batch analysis",
		"total", len(passwords),
		"concurrency", a.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]model.Result, len(passwords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, password := range passwords {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(gctx, password)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug("batch analysis completed",
		"total", len(passwords),
		"duration", time.Since(startTime),
	)
	return results, nil
}
