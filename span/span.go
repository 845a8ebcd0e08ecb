// Package span provides a non-owning view over contiguous storage.
//
// A Span is a (pointer, length) pair. It never copies or owns the elements
// it refers to; writes through a Span are visible in the backing array and
// vice versa. The caller must keep the backing storage alive and unresized
// for as long as the view is used: a view taken from a slice that is later
// grown by append keeps referring to the old array.
package span

import (
	"fmt"
	"iter"
	"sort"
	"unsafe"

	"github.com/kabu1204/go-views/ordering"
	"github.com/kabu1204/go-views/stream"
	"github.com/kabu1204/go-views/types"
)

// DynamicExtent marks a view whose length is only known at run time.
const DynamicExtent = -1

type Span[T any] struct {
	data   []T
	extent int
}

// Of views all of s.
func Of[T any](s []T) Span[T] {
	return Span[T]{data: s[:len(s):len(s)], extent: DynamicExtent}
}

// Fixed views all of s and records len(s) as the static extent. Use it for
// views over arrays, e.g. Fixed(arr[:]).
func Fixed[T any](s []T) Span[T] {
	return Span[T]{data: s[:len(s):len(s)], extent: len(s)}
}

// FromPointer views n elements starting at p.
func FromPointer[T any](p *T, n int) Span[T] {
	if n < 0 {
		panic(fmt.Sprintf("span: negative length %d", n))
	}
	if n == 0 {
		return Span[T]{extent: DynamicExtent}
	}
	return Span[T]{data: unsafe.Slice(p, n), extent: DynamicExtent}
}

func (s Span[T]) Size() int { return len(s.data) }
func (s Span[T]) SizeBytes() int {
	var zero T
	return len(s.data) * int(unsafe.Sizeof(zero))
}
func (s Span[T]) Extent() int    { return s.extent }
func (s Span[T]) Empty() bool    { return len(s.data) == 0 }
func (s Span[T]) At(i int) T     { return s.data[i] }
func (s Span[T]) Front() T       { return s.data[0] }
func (s Span[T]) Back() T        { return s.data[len(s.data)-1] }
func (s Span[T]) Data() []T      { return s.data }
func (s Span[T]) Set(i int, v T) { s.data[i] = v }

// First views the first n elements. The result has static extent n when s
// has a static extent.
func (s Span[T]) First(n int) Span[T] {
	s.check(0, n)
	return s.derive(s.data[:n], n)
}

// Last views the last n elements.
func (s Span[T]) Last(n int) Span[T] {
	s.check(len(s.data)-n, n)
	return s.derive(s.data[len(s.data)-n:], n)
}

// Subspan views count elements starting at offset; a count of DynamicExtent
// runs to the end.
func (s Span[T]) Subspan(offset, count int) Span[T] {
	if count == DynamicExtent {
		s.check(offset, len(s.data)-offset)
		return s.derive(s.data[offset:], len(s.data)-offset)
	}
	s.check(offset, count)
	return s.derive(s.data[offset:offset+count], count)
}

// Drop views everything after the first n elements.
func (s Span[T]) Drop(n int) Span[T] {
	return s.Subspan(n, DynamicExtent)
}

func (s Span[T]) check(offset, count int) {
	if offset < 0 || count < 0 || offset+count > len(s.data) {
		panic(fmt.Sprintf("span: [%d:%d] out of range for size %d", offset, offset+count, len(s.data)))
	}
}

func (s Span[T]) derive(data []T, n int) Span[T] {
	if s.extent == DynamicExtent {
		return Span[T]{data: data[:len(data):len(data)], extent: DynamicExtent}
	}
	return Span[T]{data: data[:len(data):len(data)], extent: n}
}

// Iterator walks the view in index order.
func (s Span[T]) Iterator() types.Iterator[T] {
	slice := types.Slice[T](s.data)
	return slice.Iterator()
}

func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range s.data {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (s Span[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.data {
			if !yield(e) {
				return
			}
		}
	}
}

// Stream pipes the view into a lazy pipeline. Every run reads the current
// contents of the backing storage.
func (s Span[T]) Stream() stream.Stream[T] {
	return stream.FromIterator(s.Iterator)
}

// Sort sorts the viewed elements in place. Elements of the backing storage
// outside the view are not touched.
func (s Span[T]) Sort(c ordering.Comparator[T]) {
	sort.Sort(&types.Array[T]{Data: s.data, Cmp: c.Int()})
}

func (s Span[T]) String() string {
	return fmt.Sprint(s.data)
}
