// Package stream implements lazy, restartable pipelines.
//
// A pipeline is a chain of stages hanging off a source. Nothing runs until a
// terminal operation is called; the terminal then re-opens the source and
// pushes elements one by one through the chain. Any stage may cancel the run,
// which is how Limit stops an unbounded source.
package stream

import (
	"iter"

	"github.com/kabu1204/go-views/types"
	"github.com/samber/mo"
)

type Stream[T any] interface {
	// stateless (nothing to do with elements order)
	Filter(p types.Predicate[T]) Stream[T]
	Map(f types.Function[T]) Stream[T]
	FlatMap(f func(T) Stream[T]) Stream[T]
	Peek(f types.Consumer[T]) Stream[T]

	Parallel(n int) Stream[T]

	// stateful
	Distinct(f types.IntFunction[T]) Stream[T]                   // custom hash, therefore the elements order may affect result
	Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] // non-stable
	Limit(n int64) Stream[T]                                     // first n elems
	Skip(n int64) Stream[T]                                      // skip first n elems

	ForEach(f types.Consumer[T])
	ToSlice() []T
	All() iter.Seq[T]
	AllMatch(p types.Predicate[T]) bool
	NoneMatch(p types.Predicate[T]) bool
	AnyMatch(p types.Predicate[T]) bool
	Reduce(accumulator types.BinaryOperator[T]) mo.Option[T]
	ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T
	FindFirst() mo.Option[T]
	FindFirstMatch(p types.Predicate[T]) mo.Option[T]
	Count() int64
}

// Fold reduces s into a value of another type.
func Fold[T, R any](s Stream[T], initValue R, accumulator func(R, T) R) R {
	result := initValue
	for e := range s.All() {
		result = accumulator(result, e)
	}
	return result
}
