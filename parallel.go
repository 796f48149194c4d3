package brokentoys

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

type queryTask struct {
	index int
	wg    *sync.WaitGroup
}

// AnswerQueriesParallel answers the queries like AnswerQueries, spread
// over the number of goroutines set with Workers. Each goroutine checks
// out a private clone of the workload, so w itself is never mutated.
//
// If ctx is done before every query ran, the batch is abandoned and
// ctx.Err() is returned.
func (w *Workload) AnswerQueriesParallel(ctx context.Context, queries []Query) ([]int, error) {
	workers := min(w.workers, len(queries))
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return w.AnswerQueries(queries)
	}

	clones := make(chan *Workload, workers)
	for i := 0; i < workers; i++ {
		clones <- w.Clone()
	}

	answers := make([]int, len(queries))
	errs := make([]error, len(queries))

	pool, err := ants.NewPoolWithFunc(workers, func(i interface{}) {
		task := i.(*queryTask)
		defer task.wg.Done()
		if ctx.Err() != nil {
			return
		}
		c := <-clones
		defer func() { clones <- c }()
		answers[task.index], errs[task.index] = c.AnswerQuery(queries[task.index])
	}, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrap(err, "start query workers")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range queries {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := pool.Invoke(&queryTask{index: i, wg: &wg}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrapf(err, "submit query %d", i+1)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rejected BatchError
	for i, err := range errs {
		if err != nil {
			answers[i] = Rejected
			rejected = append(rejected, &QueryError{Index: i, Err: err})
		}
	}

	w.logger.V(4).Info("Answered queries in parallel", "queries", len(queries), "workers", workers, "rejected", len(rejected))
	return answers, rejected.orNil()
}
