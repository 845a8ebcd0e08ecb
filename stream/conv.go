package stream

import (
	"github.com/kabu1204/go-views/types"
)

func Of[T any](elems ...T) Stream[T] {
	return FromSlice(elems)
}

// FromSlice streams elems without copying them. Mutations of elems are
// visible to later runs.
func FromSlice[T any](elems []T) Stream[T] {
	slice := types.Slice[T](elems)
	return FromIterator(func() types.Iterator[T] {
		return slice.Iterator()
	})
}

// FromIterator builds a stream over the iterators returned by open. open is
// called once per terminal operation.
func FromIterator[T any](open func() types.Iterator[T]) Stream[T] {
	return &stream[T]{
		source:  open,
		prev:    nil,
		wrapper: defaultWrapper[T],
		Name:    "Of",
	}
}

// Iota streams start, start+1, ... up to the largest T. Terminate it with Limit,
// FindFirst or a match operation.
func Iota[T types.Integer](start T) Stream[T] {
	return FromIterator(func() types.Iterator[T] {
		return types.Iota(start)
	})
}

// Range streams the half-open interval [start, end).
func Range[T types.Integer](start, end T) Stream[T] {
	return FromIterator(func() types.Iterator[T] {
		return types.IotaN(start, end)
	})
}
