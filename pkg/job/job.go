package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Runner executes registered jobs on their intervals until the context
// is done. Each job runs once immediately on start.
type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, v := range r.jobs {
		r.wg.Add(1)

		go r.run(ctx, v)
	}
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := runWithRecover(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func runWithRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

// Stop blocks until every started job loop has exited. Cancel the
// Start context first, otherwise Stop never returns.
func (r *Runner) Stop() {
	r.wg.Wait()
}
