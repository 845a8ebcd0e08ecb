package span

// Search returns the index of the first run in s equal to sub, or -1. An
// empty sub is found at index 0.
func Search[T comparable](s, sub Span[T]) int {
	return SearchFunc(s, sub, func(a, b T) bool { return a == b })
}

func SearchFunc[T any](s, sub Span[T], eq func(a, b T) bool) int {
	n, m := len(s.data), len(sub.data)
outer:
	for i := 0; i+m <= n; i++ {
		for j := 0; j < m; j++ {
			if !eq(s.data[i+j], sub.data[j]) {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Contains reports whether sub occurs as a contiguous run inside s. The
// position of the run does not matter. An empty sub is contained in any
// non-empty s, and nothing is contained in an empty s.
func Contains[T comparable](s, sub Span[T]) bool {
	return found(s, Search(s, sub))
}

func ContainsFunc[T any](s, sub Span[T], eq func(a, b T) bool) bool {
	return found(s, SearchFunc(s, sub, eq))
}

func found[T any](s Span[T], i int) bool {
	return i >= 0 && i < len(s.data)
}
