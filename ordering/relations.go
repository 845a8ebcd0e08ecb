package ordering

// Comparable is implemented by types that define their own three-way
// comparison.
type Comparable[T any] interface {
	Compare(other T) Ordering
}

func Lt[T Comparable[T]](a, b T) bool { return a.Compare(b).Lt() }
func Le[T Comparable[T]](a, b T) bool { return a.Compare(b).Le() }
func Gt[T Comparable[T]](a, b T) bool { return a.Compare(b).Gt() }
func Ge[T Comparable[T]](a, b T) bool { return a.Compare(b).Ge() }
func Eq[T Comparable[T]](a, b T) bool { return a.Compare(b).Eq() }
func Ne[T Comparable[T]](a, b T) bool { return a.Compare(b).Ne() }

// Method returns the comparator backed by T's Compare method.
func Method[T Comparable[T]]() Comparator[T] {
	return func(a, b T) Ordering { return a.Compare(b) }
}

// Promoted compares a wrapper type W against raw values of P by converting
// the raw value into a W first.
type Promoted[W Comparable[W], P any] struct {
	Convert func(P) W
}

func Promote[W Comparable[W], P any](convert func(P) W) Promoted[W, P] {
	return Promoted[W, P]{Convert: convert}
}

// Compare classifies w against raw.
func (p Promoted[W, P]) Compare(w W, raw P) Ordering {
	return w.Compare(p.Convert(raw))
}

// CompareRaw classifies raw against w.
func (p Promoted[W, P]) CompareRaw(raw P, w W) Ordering {
	return p.Convert(raw).Compare(w)
}
