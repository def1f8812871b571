package filter

import (
	"context"
	"testing"
)

func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `isType("series")`},
		{"complex", `isType("series") and Year > 2015 and hasAudio("ja-JP") and EpisodeCount >= 12`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := CompileFilter(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompileFilterWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `isType("series") and Year > 2015`

	b.ReportAllocs()
	for b.Loop() {
		if _, err := compiler.Compile(expression); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateConcurrent(b *testing.B) {
	items := generateTestCollections(10000)
	filter, err := CompileFilter(`isType("series") and Year > 2015`)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	evaluators := []struct {
		name      string
		evaluator *ConcurrentEvaluator
	}{
		{"workers-1", NewConcurrentEvaluator(WithWorkers(1))},
		{"workers-4", NewConcurrentEvaluator(WithWorkers(4))},
		{"workers-default", NewConcurrentEvaluator()},
	}

	for _, tc := range evaluators {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := tc.evaluator.Evaluate(ctx, filter, items); err != nil {
					b.Fatal(err)
				}
			}
		})
		tc.evaluator.Stop(ctx)
	}
}
