package filter

import (
	"context"

	"github.com/s0up4200/crunchy/crunchyroll"
)

// Filter defines the basic interface for search result filters
type Filter interface {
	// Evaluate checks if a search result matches the filter criteria
	Evaluate(item *crunchyroll.Collection) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the runtime error kept
	Match(item *crunchyroll.Collection) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against search results
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, items []*crunchyroll.Collection) ([]*crunchyroll.Collection, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, items []*crunchyroll.Collection) (map[string][]*crunchyroll.Collection, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []*crunchyroll.Collection
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit submits work to the pool
	Submit(work func()) error

	// Stop gracefully stops the worker pool
	Stop(ctx context.Context) error
}
