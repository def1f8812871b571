package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/s0up4200/crunchy/crunchyroll"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the number of results below which evaluation stays on
// the calling goroutine
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

var (
	_ Evaluator      = (*ConcurrentEvaluator)(nil)
	_ BatchEvaluator = (*ConcurrentEvaluator)(nil)
)

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate returns the items that match filter, in input order.
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, items []*crunchyroll.Collection) ([]*crunchyroll.Collection, error) {
	if len(items) == 0 {
		return []*crunchyroll.Collection{}, nil
	}

	// a search page rarely justifies the pool
	if len(items) < e.batchSize {
		return evaluateSequential(filter, items), nil
	}

	return e.evaluateConcurrent(ctx, filter, items)
}

// EvaluateBatch evaluates every filter against items. Each filter is one unit
// of pool work; filters whose work was cancelled are left out of the result.
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, items []*crunchyroll.Collection) (map[string][]*crunchyroll.Collection, error) {
	results := make(map[string][]*crunchyroll.Collection, len(filters))
	if len(filters) == 0 || len(items) == 0 {
		return results, nil
	}

	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		wg.Add(1)

		err := e.pool.Submit(func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				resultChan <- BatchResult{FilterName: name, Error: err}
				return
			}

			resultChan <- BatchResult{
				FilterName: name,
				Matches:    evaluateSequential(filter, items),
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()
	close(resultChan)

	for result := range resultChan {
		if result.Error != nil {
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, ctx.Err()
}

// evaluateSequential evaluates filter against items on the calling goroutine
func evaluateSequential(filter CompiledFilter, items []*crunchyroll.Collection) []*crunchyroll.Collection {
	matches := make([]*crunchyroll.Collection, 0, len(items))
	for _, item := range items {
		if filter.Evaluate(item) {
			matches = append(matches, item)
		}
	}
	return matches
}

// evaluateConcurrent splits items into chunks and evaluates them on the pool
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, items []*crunchyroll.Collection) ([]*crunchyroll.Collection, error) {
	chunkSize := max(len(items)/e.workerCount, e.batchSize)
	chunks := (len(items) + chunkSize - 1) / chunkSize

	// one slot per chunk keeps the input order without a merge step
	results := make([][]*crunchyroll.Collection, chunks)

	var wg sync.WaitGroup
	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(items))

		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i] = evaluateSequential(filter, items[start:end])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]*crunchyroll.Collection, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}

	return matches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
