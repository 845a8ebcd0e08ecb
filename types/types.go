package types

type (
	Predicate[T any] func(T) bool

	Function[T any] func(T) T

	Consumer[T any] func(T)

	IntFunction[T any] func(T) int

	// Comparator returns a negative number, zero or a positive number when
	// e1 is less than, equal to or greater than e2.
	Comparator[T any] func(e1, e2 T) int

	BinaryOperator[T any] func(e1, e2 T) T

	Slice[T any] []T
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Array[T any] struct {
	Data Slice[T]
	Cmp  Comparator[T]
}
