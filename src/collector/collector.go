// Package collector assembles a user's public activity into the flat
// sequence consumed by the synthesizer.
package collector

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	perrors "personacard/src/errors"
	"personacard/src/reddit"
)

// Lister is the slice of the Reddit client the collector needs. Tests
// substitute a fake.
type Lister interface {
	Submissions(ctx context.Context, username string, limit int) ([]reddit.ActivityItem, error)
	Comments(ctx context.Context, username string, limit int) ([]reddit.ActivityItem, error)
}

// Collect fetches the user's submission and comment listings and returns at
// most maxItems combined, submissions first. The two listings are fetched
// concurrently; the first error cancels the other fetch. An account with no
// public activity yields an empty, non-nil sequence, not an error.
func Collect(ctx context.Context, source Lister, username string, maxItems int) ([]reddit.ActivityItem, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty", perrors.ErrInvalidUsername)
	}
	if maxItems <= 0 {
		return nil, fmt.Errorf("max items must be positive, got %d", maxItems)
	}

	var submissions, comments []reddit.ActivityItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		submissions, err = source.Submissions(gctx, username, maxItems)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = source.Comments(gctx, username, maxItems)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, perrors.WrapWithContext(err, "collecting activity for %q", username)
	}

	items := make([]reddit.ActivityItem, 0, len(submissions)+len(comments))
	items = append(items, submissions...)
	items = append(items, comments...)
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}
