// Package batch aligns many independent sequence pairs in parallel.
//
// Every job gets its own dtw.Engine; engines are never shared between
// workers, so no coordination beyond the worker pool is required. Results
// may be memoized across runs through a cache.Store.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/pkg/errors"

	"github.com/katalvlaran/warp/cache"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/pb"
)

// Job is one pair of scalar sequences to align. Local cost is |x−y|.
type Job struct {
	ID      string
	Seq1    []float64
	Seq2    []float64
	Pattern dtw.StepPattern
}

// Result is the outcome of one Job. Err is set for jobs that could not be
// aligned (invalid configuration, cancellation); Cost and Path are then zero.
type Result struct {
	ID      string
	Pattern dtw.StepPattern
	Len1    int
	Len2    int
	Cost    float64
	Path    dtw.Path // reverse-chronological, as returned by Engine.Path
	Cached  bool     // served from the Store
	Err     error
}

// ToProto converts a successful result to its protobuf form.
func (r Result) ToProto() *pb.Alignment {
	return &pb.Alignment{
		Id:      r.ID,
		Pattern: r.Pattern.String(),
		Cost:    r.Cost,
		Len1:    int32(r.Len1),
		Len2:    int32(r.Len2),
		Path:    pb.FromPath(r.Path),
	}
}

// Runner executes jobs on a fixed-size worker pool.
type Runner struct {
	// Workers is the pool size; 0 means runtime.NumCPU().
	Workers int
	// Fill is the fill mode of every engine. Eager keeps the stack flat on long inputs.
	Fill dtw.FillMode
	// Store memoizes results; nil disables caching.
	Store cache.Store
	// Logger receives per-job failures and cache errors.
	Logger logging.Logger
	// OnProgress is called after each finished job with the number of finished
	// jobs and the total. Calls are serialized and done is strictly increasing.
	OnProgress func(done, total int)
}

// NewRunner returns a Runner with NumCPU workers, Eager fill, no cache and
// the default logger.
func NewRunner() *Runner {
	return &Runner{
		Workers: runtime.NumCPU(),
		Fill:    dtw.Eager,
		Logger:  logging.NewLogger(),
	}
}

// worker adapts a Runner to tunny.Worker.
type worker struct {
	ctx    context.Context
	runner *Runner
}

// Process will synchronously perform a job and return the result.
func (w worker) Process(data interface{}) interface{} {
	return w.runner.align(w.ctx, data.(*Job))
}
func (w worker) BlockUntilReady() {}
func (w worker) Interrupt()       {}
func (w worker) Terminate()       {}

// Run aligns every job and returns the results in job order.
//
// Per-job failures are reported in Result.Err and do not abort the batch.
// If ctx is cancelled, jobs that have not started yet fail with ctx.Err()
// and Run returns the (partial) results together with the wrapped ctx error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if r.Logger == nil {
		r.Logger = logging.NewLogger()
	}
	if r.Fill == 0 {
		r.Fill = dtw.Eager
	}
	poolSize := r.Workers
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	pool := tunny.New(poolSize, func() tunny.Worker {
		return worker{ctx: ctx, runner: r}
	})
	defer pool.Close()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = pool.Process(&jobs[i]).(Result)
			mu.Lock()
			done++
			if r.OnProgress != nil {
				r.OnProgress(done, len(jobs))
			}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, "batch: run interrupted")
	}

	return results, nil
}

// align runs a single job: cache lookup, engine, cache store.
func (r *Runner) align(ctx context.Context, job *Job) Result {
	res := Result{ID: job.ID, Pattern: job.Pattern, Len1: len(job.Seq1), Len2: len(job.Seq2)}
	if err := ctx.Err(); err != nil {
		res.Err = err

		return res
	}

	var key string
	if r.Store != nil {
		key = cache.Key(job.Pattern, job.Seq1, job.Seq2)
		hit, ok, err := r.Store.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warnf("cache lookup for job %q failed: %v", job.ID, err)
		case ok:
			res.Cost = hit.Cost
			res.Path = hit.ToPath()
			res.Cached = true

			return res
		}
	}

	opts := dtw.Options{Pattern: job.Pattern, Fill: r.Fill}
	eng, err := dtw.New(job.Seq1, job.Seq2, dtw.AbsDiff[float64], &opts)
	if err != nil {
		res.Err = errors.Wrapf(err, "job %q", job.ID)
		r.Logger.Errorf("%v", res.Err)

		return res
	}
	msg := pb.FromEngine(job.ID, eng)
	res.Cost = msg.Cost
	res.Path = msg.ToPath()

	if r.Store != nil {
		if err = r.Store.Put(ctx, key, msg); err != nil {
			r.Logger.Warnf("cache store for job %q failed: %v", job.ID, err)
		}
	}

	return res
}
