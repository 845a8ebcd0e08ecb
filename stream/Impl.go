package stream

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/kabu1204/go-views/types"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/mo"
)

// source <- Skip <- Limit <- Filter <- ToSlice

type Option[T any] func(*stream[T])
type wrapperType[T any] func(next *stream[T]) []Option[T]

type stream[T any] struct {
	source    func() types.Iterator[T]
	prev      *stream[T]
	wrapper   wrapperType[T]
	consumer  types.Consumer[T]
	settler   func(size int64, opts ...Option[T])
	cleaner   func()
	canceller func() bool
	parallel  int
	Name      string
}

func (s *stream[T]) terminate() {
	head := s.setFunctor()
	it := s.source()
	head.settler(int64(it.Len()))
	for !head.canceller() {
		v, ok := it.Next()
		if !ok {
			break
		}
		head.consumeOne(v)
	}
	head.cleaner()
}

func (s *stream[T]) consumeOne(e T) {
	s.consumer(e)
}

func (s *stream[T]) unwrap(next *stream[T]) {
	opts := s.wrapper(next)
	for _, o := range opts {
		o(s)
	}
}

func wrapConsumer[T any](c types.Consumer[T]) Option[T] {
	return func(s *stream[T]) { s.consumer = c }
}
func wrapSettler[T any](c func(int64, ...Option[T])) Option[T] {
	return func(s *stream[T]) { s.settler = c }
}
func wrapCleaner[T any](c func()) Option[T]        { return func(s *stream[T]) { s.cleaner = c } }
func wrapCanceller[T any](c func() bool) Option[T] { return func(s *stream[T]) { s.canceller = c } }

// setFunctor binds every stage to its successor, starting from a dummy tail
// behind s, and returns the head stage that sits on the source.
func (s *stream[T]) setFunctor() *stream[T] {
	s.unwrap(&stream[T]{
		prev:      s,
		consumer:  func(T) {},
		settler:   func(int64, ...Option[T]) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		Name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStream[T any](prev *stream[T], wrapper wrapperType[T], name string) *stream[T] {
	return &stream[T]{
		source:  prev.source,
		prev:    prev,
		wrapper: wrapper,
		Name:    name,
	}
}

// stateless

func (s *stream[T]) Filter(p types.Predicate[T]) Stream[T] {
	// s is prev
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream[T]) Map(f types.Function[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream[T]) FlatMap(f func(T) Stream[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(_ int64, opts ...Option[T]) {
			applyOpts(next, opts)
			next.settler(-1, opts...)
		}
		consumer := func(e T) {
			for inner := range f(e).All() {
				if next.canceller() {
					return
				}
				next.consumeOne(inner)
			}
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "FlatMap")
}

func (s *stream[T]) Peek(f types.Consumer[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Peek")
}

// Parallel hands every element to a pool of n workers. A negative n keeps the
// parallelism inherited from upstream.
func (s *stream[T]) Parallel(n int) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var wg sync.WaitGroup
		var pool *ants.Pool
		this := next.prev
		settler := func(sz int64, opts ...Option[T]) {
			if n >= 0 {
				toggleParallel := func(st *stream[T]) { st.parallel = n }
				opts = append(opts, toggleParallel)
			}
			applyOpts(next, opts)
			var err error
			if pool, err = ants.NewPool(max(this.parallel, 1)); err != nil {
				panic(err)
			}
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			wg.Add(1)
			f := func() {
				defer wg.Done()
				next.consumeOne(e)
			}
			if err := pool.Submit(f); err != nil {
				f()
			}
		}
		cleaner := func() {
			wg.Wait()
			pool.Release()
			pool = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Parallel")
}

// stateful

func (s *stream[T]) Distinct(f types.IntFunction[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var set *hashmap.Map[int, struct{}]
		settler := func(sz int64, opts ...Option[T]) {
			applyOpts(next, opts)
			set = hashmap.New[int, struct{}]()
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			if _, loaded := set.GetOrInsert(f(e), struct{}{}); !loaded {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

// Sorted buffers the whole upstream in a tree map and replays it in order once
// the upstream is exhausted. Elements that compare equal share one bucket and
// are replayed in arrival order (arrival order is unspecified under Parallel).
func (s *stream[T]) Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var buffer chan T
		var drained chan struct{}
		var mp *treemap.Map
		var settled []Option[T]
		var total int64
		this := next.prev
		put := func(e T) {
			total++
			if bucket, ok := mp.Get(e); ok {
				mp.Put(e, append(bucket.([]T), e))
			} else {
				mp.Put(e, []T{e})
			}
		}
		settler := func(capacity int64, opts ...Option[T]) {
			applyOpts(next, opts)
			settled = opts
			total = 0
			mp = treemap.NewWith(utils.Comparator(func(a, b interface{}) int {
				return cmp(a.(T), b.(T))
			}))
			if this.parallel > 0 {
				buffer = make(chan T, max(capacity, 0))
				drained = make(chan struct{})
				go func(buffer <-chan T) {
					for e := range buffer {
						put(e)
					}
					close(drained)
				}(buffer)
			}
		}
		consumer := func(e T) {
			if buffer != nil {
				buffer <- e
			} else {
				put(e)
			}
		}
		// nothing downstream can stop the buffering
		canceller := func() bool { return false }
		cleaner := func() {
			if buffer != nil {
				close(buffer)
				<-drained
				buffer = nil
			}
			opts := settled
			if !keepParallel || this.parallel == 0 {
				opts = append(opts[:len(opts):len(opts)], func(st *stream[T]) { st.parallel = 0 })
			}
			next.settler(total, opts...)
			it := mp.Iterator()
			for !next.canceller() && it.Next() {
				for _, e := range it.Value().([]T) {
					if next.canceller() {
						break
					}
					next.consumeOne(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer),
			wrapCleaner[T](cleaner), wrapCanceller[T](canceller))
	}
	if keepParallel {
		return newStream(s, wrapper, "Sorted").Parallel(-1)
	}
	return newStream(s, wrapper, "Sorted")
}

// Limit passes on the first n elements and then cancels the run, so it
// terminates pipelines over unbounded sources.
func (s *stream[T]) Limit(n int64) Stream[T] {
	n = max(n, 0)
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt atomic.Int64
		settler := func(sz int64, opts ...Option[T]) {
			applyOpts(next, opts)
			cnt.Store(0)
			if sz < 0 || sz > n {
				sz = n
			}
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			for old := cnt.Load(); old < n; old = cnt.Load() {
				if cnt.CompareAndSwap(old, old+1) {
					next.consumeOne(e)
					break
				}
			}
		}
		canceller := func() bool {
			return cnt.Load() >= n || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream[T]) Skip(n int64) Stream[T] {
	n = max(n, 0)
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt atomic.Int64
		settler := func(sz int64, opts ...Option[T]) {
			applyOpts(next, opts)
			cnt.Store(0)
			if sz >= 0 {
				sz = max(sz-n, 0)
			}
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			for old := cnt.Load(); old < n; old = cnt.Load() {
				if cnt.CompareAndSwap(old, old+1) {
					return
				}
			}
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream[T]) ToSlice() []T {
	var mu sync.Mutex
	var slice []T
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64, opts ...Option[T]) {
			applyOpts(next, opts)
			slice = make([]T, 0, max(sz, 0))
		}
		consumer := func(e T) {
			mu.Lock()
			slice = append(slice, e)
			mu.Unlock()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stream[T]) ForEach(f types.Consumer[T]) {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

// All runs the pipeline for a range loop. Breaking out of the loop cancels
// the run.
func (s *stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var mu sync.Mutex
		var stopped atomic.Bool
		wrapper := func(next *stream[T]) []Option[T] {
			consumer := func(e T) {
				mu.Lock()
				defer mu.Unlock()
				if !stopped.Load() && !yield(e) {
					stopped.Store(true)
				}
			}
			canceller := func() bool {
				return stopped.Load()
			}
			return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller[T](canceller))
		}
		newStream(s, wrapper, "All").terminate()
	}
}

func (s *stream[T]) AllMatch(p types.Predicate[T]) bool {
	return !s.AnyMatch(func(e T) bool { return !p(e) })
}

func (s *stream[T]) NoneMatch(p types.Predicate[T]) bool {
	return !s.AnyMatch(p)
}

func (s *stream[T]) AnyMatch(p types.Predicate[T]) bool {
	var flag atomic.Bool
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				flag.Store(true)
			}
		}
		canceller := func() bool {
			return flag.Load()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "AnyMatch").terminate()
	return flag.Load()
}

func (s *stream[T]) Reduce(accumulator types.BinaryOperator[T]) mo.Option[T] {
	var mu sync.Mutex
	var result T
	none := true
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			mu.Lock()
			defer mu.Unlock()
			if none {
				result = e
				none = false
			} else {
				result = accumulator(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Reduce").terminate()
	if none {
		return mo.None[T]()
	}
	return mo.Some(result)
}

func (s *stream[T]) ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T {
	var mu sync.Mutex
	result := initValue
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			mu.Lock()
			result = accumulator(result, e)
			mu.Unlock()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ReduceFrom").terminate()
	return result
}

func (s *stream[T]) FindFirst() mo.Option[T] {
	return s.FindFirstMatch(func(T) bool { return true })
}

func (s *stream[T]) FindFirstMatch(p types.Predicate[T]) mo.Option[T] {
	var mu sync.Mutex
	none := true
	var result T
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			mu.Lock()
			defer mu.Unlock()
			if none && p(e) {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			mu.Lock()
			defer mu.Unlock()
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "FindFirstMatch").terminate()
	if none {
		return mo.None[T]()
	}
	return mo.Some(result)
}

func (s *stream[T]) Count() int64 {
	var cnt atomic.Int64
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { cnt.Add(1) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return cnt.Load()
}
