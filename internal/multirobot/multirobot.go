// Package multirobot runs several independent self-play games
// concurrently. Grounded on skybrian-Gongo's multirobot.go, which
// already spawned one goroutine per game over a sync.WaitGroup;
// adapted to golang.org/x/sync/errgroup so the first fatal error
// (history overflow, board allocation failure) cancels the shared
// context and becomes PlayAll's result. A game already in progress is
// not interrupted: each goroutine checks the context only after its
// own game has ended. Each goroutine
// owns its own *robot.Robot and *engine.Engine; no state is shared
// between games, so this does not reintroduce a concurrent session
// over one board.
package multirobot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/haigo/gongo/internal/robot"
)

// Result is one finished game's outcome.
type Result struct {
	Index      int
	MovesCount int
	Render     string
}

// PlayAll runs n independent games concurrently with the given config,
// returning one Result per game in index order. If any game returns an
// error, PlayAll returns that error once every goroutine has finished
// or noticed the shared context was cancelled; a game already past its
// last move before cancellation still contributes its Result via the
// slice, but PlayAll's return value is the error, not the partial
// slice.
func PlayAll(ctx context.Context, n int, cfg robot.Config) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, n)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			r, err := robot.New(cfg)
			if err != nil {
				return err
			}
			moves, err := r.PlayGame()
			if err != nil {
				return err
			}
			results[i] = Result{
				Index:      i,
				MovesCount: moves,
				Render:     r.Engine().Render(),
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
