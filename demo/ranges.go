package demo

import (
	"slices"

	"github.com/kabu1204/go-views/ordering"
	"github.com/kabu1204/go-views/span"
	"github.com/kabu1204/go-views/stream"
	"github.com/kabu1204/go-views/types"
)

// IsPrime is trial division by every j with j*j <= i. Values below 4,
// including 0 and 1, pass trivially.
func IsPrime(i int) bool {
	for j := 2; j*j <= i; j++ {
		if i%j == 0 {
			return false
		}
	}
	return true
}

func isEven(i int) bool { return i%2 == 0 }

// EvensInWindow skips two elements, takes the next three and keeps the even
// ones.
func EvensInWindow(v []int) []int {
	return stream.FromSlice(v).Skip(2).Limit(3).Filter(isEven).ToSlice()
}

// PrimesFrom returns the first n primes not below start.
func PrimesFrom(start, n int) []int {
	return stream.Iota(start).Filter(IsPrime).Limit(int64(n)).ToSlice()
}

func (r Runner) Ranges() int {
	v1 := []int{21, 8, 3, 4, 6, 5, 1, 2}
	printElem := func(e int) { r.printf(" %d", e) }
	endLine := func() { r.printf(" \n") }

	r.printf("\nPrint vector elements.\n")
	for _, e := range v1 {
		printElem(e)
	}
	endLine()
	stream.FromSlice(v1).ForEach(printElem)

	r.printf("\nSkip the first 2 elements and print only even numbers in the next 3.\n")
	for i := 2; i < len(v1) && i < 2+3; i++ {
		if isEven(v1[i]) {
			printElem(v1[i])
		}
	}
	endLine()
	stream.FromSlice(v1).Skip(2).Limit(3).Filter(isEven).ForEach(printElem)
	must(slices.Equal(EvensInWindow(v1), []int{4, 6}), "skip(2) take(3) filter(even) = [4 6]")

	r.printf("\nSkip the first two elements and sort the rest.\n")
	natural := ordering.Natural[int]()
	v2 := []int{21, 8, 3, 4, 6, 5, 1, 2}
	types.SortFrom(v2, 2, natural.Int())
	for _, e := range v2 {
		printElem(e)
	}
	endLine()

	v3 := []int{21, 8, 3, 4, 6, 5, 1, 2}
	span.Of(v3).Drop(2).Sort(natural)
	for _, e := range v3 {
		printElem(e)
	}
	endLine()
	must(slices.Equal(v2, v3) && slices.Equal(v3, []int{21, 8, 1, 2, 3, 4, 5, 6}), "sorted suffix")

	r.printf("\nInfinite iota generator: Print 10 prime numbers larger than 1m.\n")
	stream.Iota(1000000).Filter(IsPrime).Limit(10).ForEach(printElem)
	primes := PrimesFrom(1000000, 10)
	must(len(primes) == 10 && slices.IsSorted(primes) && primes[0] == 1000003, "ten primes above 1m")

	return 0
}
