package ordering

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"github.com/kabu1204/go-views/types"
)

type Comparator[T any] func(a, b T) Ordering

// Natural orders values with the built-in operators. NaN sorts before every
// other float and equals itself.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering { return Of(cmp.Compare(a, b)) }
}

// By compares the keys extracted from two values.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return ByWith(key, Natural[K]())
}

func ByWith[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) Ordering { return c(key(a), key(b)) }
}

// Lexicographic compares with each comparator in turn and returns the first
// result that is not Equal.
func Lexicographic[T any](cs ...Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		for _, c := range cs {
			if o := c(a, b); o != Equal {
				return o
			}
		}
		return Equal
	}
}

// Elementwise compares slices element by element in index order. A proper
// prefix is Less than the longer slice.
func Elementwise[T any](c Comparator[T]) Comparator[[]T] {
	return func(a, b []T) Ordering {
		for i := 0; i < len(a) && i < len(b); i++ {
			if o := c(a[i], b[i]); o != Equal {
				return o
			}
		}
		return Of(len(a) - len(b))
	}
}

func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return Lexicographic(c, next)
}

func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) Ordering { return c(a, b).Reverse() }
}

// Int adapts c to the integer comparators taken by stream.Sorted and
// types.SortFrom.
func (c Comparator[T]) Int() types.Comparator[T] {
	return func(a, b T) int { return int(c(a, b)) }
}

// Utils adapts c to the gods containers. Both arguments must hold a T.
func (c Comparator[T]) Utils() utils.Comparator {
	return func(a, b interface{}) int { return int(c(a.(T), b.(T))) }
}

// FromUtils wraps one of the gods comparators such as utils.IntComparator.
func FromUtils[T any](u utils.Comparator) Comparator[T] {
	return func(a, b T) Ordering { return Of(u(a, b)) }
}
