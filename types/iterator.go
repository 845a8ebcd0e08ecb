package types

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, bool)
	Len() int // for slices: a definite number; for generators: -1
}

type sliceIterator[T any] struct {
	index int
	slice *Slice[T]
}

func (s *Slice[T]) Iterator() *sliceIterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.index < len(*it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.HasNext() {
		it.index++
		return (*it.slice)[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int {
	return len(*it.slice)
}

func (it *sliceIterator[T]) At(i int) *T {
	return &((*it.slice)[i])
}

// Seek positions the iterator so that the following Next returns element i.
func (it *sliceIterator[T]) Seek(i int) bool {
	if i < 0 || i >= len(*it.slice) {
		return false
	}
	it.index = i - 1
	return true
}

type funcIterator[T any] struct {
	f      func() (T, bool)
	peeked bool
	head   T
	done   bool
}

// Generate pulls elements from f until it reports false.
func Generate[T any](f func() (T, bool)) Iterator[T] {
	return &funcIterator[T]{f: f}
}

func (it *funcIterator[T]) HasNext() bool {
	if it.done {
		return false
	}
	if !it.peeked {
		it.head, it.peeked = it.f()
		it.done = !it.peeked
	}
	return it.peeked
}

func (it *funcIterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	it.peeked = false
	return it.head, true
}

func (it *funcIterator[T]) Len() int { return -1 }

type iotaIterator[T Integer] struct {
	cur     T
	end     T
	bounded bool
	done    bool
}

// Iota yields start, start+1, ... up to the largest value of T and stops
// there instead of wrapping.
func Iota[T Integer](start T) Iterator[T] {
	return &iotaIterator[T]{cur: start}
}

// IotaN yields the half-open range [start, end).
func IotaN[T Integer](start, end T) Iterator[T] {
	return &iotaIterator[T]{cur: start, end: end, bounded: true}
}

func (it *iotaIterator[T]) HasNext() bool {
	return !it.done && (!it.bounded || it.cur < it.end)
}

func (it *iotaIterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	v := it.cur
	if v+1 < v {
		it.done = true
	} else {
		it.cur++
	}
	return v, true
}

func (it *iotaIterator[T]) Len() int {
	if !it.bounded {
		return -1
	}
	if it.cur >= it.end {
		return 0
	}
	return int(it.end - it.cur)
}
