package stream

func defaultWrapper[T any](next *stream[T]) []Option[T] {
	defaultConsumer := func(e T) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64, opts ...Option[T]) {
		applyOpts(next, opts)
		next.settler(capacity, opts...)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option[T]{wrapConsumer(defaultConsumer), wrapSettler(defaultSettler),
		wrapCleaner[T](defaultCleaner), wrapCanceller[T](defaultCanceller)}
}

// applyOpts runs the settler options on the stage that owns next.
func applyOpts[T any](next *stream[T], opts []Option[T]) {
	for _, o := range opts {
		o(next.prev)
	}
}
